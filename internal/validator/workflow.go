package validator

import "agentlint/internal/document"

func (r *run) checkWorkflow() {
	workflow, state := r.section("workflow")
	switch state {
	case sectionAbsent:
		r.warnf("workflow configuration is missing")
		return
	case sectionInvalid:
		r.errorf("workflow must be an object")
		return
	}

	raw := document.Dig(workflow, "nodes")
	if raw == nil {
		r.errorf("workflow.nodes is missing")
		return
	}
	nodes, ok := asMapping(raw)
	if !ok {
		r.errorf("workflow.nodes must be an object")
		return
	}
	if len(nodes) == 0 {
		r.errorf("workflow.nodes is empty - no conversation flow defined")
		return
	}
	r.passf("workflow.nodes: %d node(s) configured", len(nodes))

	empty := 0
	for _, node := range nodes {
		if edges, ok := asArray(document.Dig(node, "edge_order")); ok && len(edges) == 0 {
			empty++
		}
	}
	if empty > 0 {
		r.warnf("%d node(s) have empty edge_order arrays - may affect conversation flow", empty)
	}
}
