package validator

import "agentlint/internal/document"

func (r *run) checkDataCollection() {
	fields, ok := r.optionalArray(r.doc.Get("data_collection"), "data_collection",
		"data_collection is empty - agent will not collect metrics")
	if !ok {
		return
	}
	r.passf("data_collection: %d field(s) configured", len(fields))
	for _, field := range fields {
		id := document.Dig(field, "id")
		if !present(id) {
			continue
		}
		desc := truncate(text(document.Dig(field, "description")), fieldDescriptionMax)
		r.notef("%s (%s): %s...", text(id), text(document.Dig(field, "type")), desc)
	}
}

func (r *run) checkEvaluation() {
	evaluation, state := r.section("evaluation")
	if state == sectionInvalid {
		r.errorf("evaluation must be an object")
		return
	}
	criteria, ok := r.optionalArray(document.Dig(evaluation, "criteria"), "evaluation.criteria",
		"evaluation.criteria is empty - conversation quality cannot be evaluated")
	if !ok {
		return
	}
	noun := "criteria"
	if len(criteria) == 1 {
		noun = "criterion"
	}
	r.passf("evaluation.criteria: %d %s configured", len(criteria), noun)
	for _, criterion := range criteria {
		name := document.Dig(criterion, "name")
		if !present(name) {
			continue
		}
		r.notef("%s (%s)", text(name), text(document.Dig(criterion, "type")))
	}
}
