package validator

import "agentlint/internal/document"

func (r *run) checkTools() {
	agent, state := r.section("agent")
	if state == sectionInvalid {
		// reported by checkPrompt
		return
	}
	tools, ok := r.requireArray(document.Dig(agent, "tools"), "agent.tools",
		"agent.tools is missing",
		"agent.tools is empty - agent cannot perform any actions")
	if !ok {
		return
	}
	r.passf("agent.tools: %d tool(s) configured", len(tools))

	configured := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if name, ok := document.Dig(tool, "name").(string); ok {
			configured[name] = true
		}
	}
	for _, name := range recommendedTools {
		if !configured[name] {
			r.warnf("Recommended tool '%s' is not configured", name)
		}
	}

	for _, tool := range tools {
		name := document.Dig(tool, "name")
		if !present(name) {
			continue
		}
		desc := truncate(text(document.Dig(tool, "description")), toolDescriptionMax)
		r.notef("%s: %s...", text(name), desc)
	}
}

func (r *run) checkKnowledgeBase() {
	agent, state := r.section("agent")
	if state == sectionInvalid {
		return
	}
	docs, ok := r.optionalArray(document.Dig(agent, "knowledge_base"), "agent.knowledge_base",
		"agent.knowledge_base is empty - agent lacks contextual information")
	if !ok {
		return
	}
	r.passf("agent.knowledge_base: %d document(s) configured", len(docs))
	for _, doc := range docs {
		name := document.Dig(doc, "name")
		if !present(name) {
			continue
		}
		mode := "auto"
		if m := document.Dig(doc, "usage_mode"); present(m) {
			mode = text(m)
		}
		r.notef("%s (%s)", text(name), mode)
	}
}

func (r *run) checkPrompt() {
	agent, state := r.section("agent")
	switch state {
	case sectionAbsent:
		r.errorf("agent configuration is missing")
		return
	case sectionInvalid:
		r.errorf("agent must be an object")
		return
	}

	if !present(document.Dig(agent, "first_message")) {
		r.errorf("agent.first_message is missing - agent cannot start conversations")
	} else {
		r.passf("agent.first_message is configured")
	}

	if !present(document.Dig(agent, "prompt", "prompt")) {
		r.errorf("agent.prompt.prompt is missing - agent has no instructions")
	} else {
		r.passf("agent.prompt.prompt is configured")
	}

	if llm := document.Dig(agent, "prompt", "llm"); !present(llm) {
		r.errorf("agent.prompt.llm is missing - no language model specified")
	} else {
		r.passf("agent.prompt.llm: %s", text(llm))
	}
}
