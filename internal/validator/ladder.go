package validator

// requireArray applies the ladder for arrays the agent cannot work without:
// absent, wrong type and empty are all errors. It returns the items and true
// only for a non-empty array.
func (r *run) requireArray(v any, path, missingMsg, emptyMsg string) ([]any, bool) {
	if v == nil {
		r.errorf("%s", missingMsg)
		return nil, false
	}
	items, ok := asArray(v)
	if !ok {
		r.errorf("%s must be an array", path)
		return nil, false
	}
	if len(items) == 0 {
		r.errorf("%s", emptyMsg)
		return nil, false
	}
	return items, true
}

// optionalArray applies the ladder for arrays that only enrich the agent:
// absent is a warning, a wrong type is an error, empty is a warning. It
// returns the items and true only for a non-empty array.
func (r *run) optionalArray(v any, path, emptyMsg string) ([]any, bool) {
	if v == nil {
		r.warnf("%s is missing", path)
		return nil, false
	}
	items, ok := asArray(v)
	if !ok {
		r.errorf("%s must be an array", path)
		return nil, false
	}
	if len(items) == 0 {
		r.warnf("%s", emptyMsg)
		return nil, false
	}
	return items, true
}

type sectionState int

const (
	sectionAbsent sectionState = iota
	sectionInvalid
	sectionObject
)

// section resolves a top-level object. Falsy scalars count as absent, the
// same way present treats leaf fields. Any other value that is not a mapping
// is sectionInvalid; the owning check reports "<key> must be an object" once.
func (r *run) section(key string) (map[string]any, sectionState) {
	v := r.doc.Get(key)
	if !present(v) {
		return nil, sectionAbsent
	}
	m, ok := asMapping(v)
	if !ok {
		return nil, sectionInvalid
	}
	return m, sectionObject
}
