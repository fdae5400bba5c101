package validator

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"   // agent cannot speak, act or converse
	SeverityWarning Severity = "warning" // agent works but is degraded
	SeverityPass    Severity = "pass"
)

// Section names the region of the configuration document a check inspects.
type Section string

const (
	SectionTTS            Section = "tts"
	SectionLanguages      Section = "languages"
	SectionTools          Section = "tools"
	SectionKnowledgeBase  Section = "knowledge_base"
	SectionDataCollection Section = "data_collection"
	SectionEvaluation     Section = "evaluation"
	SectionWorkflow       Section = "workflow"
	SectionPrompt         Section = "prompt"
)

// Sections lists every section in the order checks run.
var Sections = []Section{
	SectionTTS,
	SectionLanguages,
	SectionTools,
	SectionKnowledgeBase,
	SectionDataCollection,
	SectionEvaluation,
	SectionWorkflow,
	SectionPrompt,
}

var sectionTitles = map[Section]string{
	SectionTTS:            "TTS Configuration",
	SectionLanguages:      "Language Configuration",
	SectionTools:          "Agent Tools",
	SectionKnowledgeBase:  "Knowledge Base",
	SectionDataCollection: "Data Collection",
	SectionEvaluation:     "Evaluation Criteria",
	SectionWorkflow:       "Workflow Configuration",
	SectionPrompt:         "Agent Prompt Configuration",
}

// Title returns the human-readable heading for the section.
func (s Section) Title() string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}

// Finding is one reported observation.
type Finding struct {
	Section  Section  `json:"section"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Note is an informational line about the document, such as a configured
// tool and its description. Notes never affect the verdict.
type Note struct {
	Section Section `json:"section"`
	Message string  `json:"message"`
}

// Verdict is the overall outcome of a validation run.
type Verdict string

const (
	VerdictValid             Verdict = "valid"
	VerdictValidWithWarnings Verdict = "valid-with-warnings"
	VerdictInvalid           Verdict = "invalid"
)

// Result holds the findings of one validation run. Each sequence is in the
// order checks were performed. A Result is built by a single Validate call
// and must not be shared between concurrent validations.
type Result struct {
	Errors   []Finding
	Warnings []Finding
	Passed   []Finding
	Notes    []Note
}

// Valid reports whether the run produced no errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Verdict derives the overall outcome from the accumulated findings.
func (r Result) Verdict() Verdict {
	switch {
	case len(r.Errors) > 0:
		return VerdictInvalid
	case len(r.Warnings) > 0:
		return VerdictValidWithWarnings
	default:
		return VerdictValid
	}
}

// ErrorMessages returns the error messages in order.
func (r Result) ErrorMessages() []string { return messages(r.Errors) }

// WarningMessages returns the warning messages in order.
func (r Result) WarningMessages() []string { return messages(r.Warnings) }

// PassedMessages returns the pass notes in order.
func (r Result) PassedMessages() []string { return messages(r.Passed) }

// NotesFor returns the informational notes recorded for one section.
func (r Result) NotesFor(section Section) []Note {
	var notes []Note
	for _, n := range r.Notes {
		if n.Section == section {
			notes = append(notes, n)
		}
	}
	return notes
}

func messages(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}
