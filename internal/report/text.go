// Package report renders validation results for people and for CI systems.
package report

import (
	"fmt"
	"strings"

	"agentlint/internal/validator"
)

// FormatCLI renders the full text report: one block per section with its
// informational notes, then the passed checks, warnings and errors, then
// the final result.
func FormatCLI(result validator.Result, st Styles) string {
	var sb strings.Builder

	sb.WriteString(apply(st.Heading, "🔍 Validating agent configuration"))
	sb.WriteString("\n")
	for _, section := range validator.Sections {
		sb.WriteString("\n")
		sb.WriteString(apply(st.Heading, section.Title()))
		sb.WriteString("\n")
		for _, note := range result.NotesFor(section) {
			sb.WriteString(apply(st.Info, fmt.Sprintf("ℹ️    - %s", note.Message)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(apply(st.Heading, "📋 Validation Report"))
	sb.WriteString("\n\n")

	if len(result.Passed) > 0 {
		sb.WriteString(apply(st.Pass, fmt.Sprintf("Passed Checks (%d):", len(result.Passed))))
		sb.WriteString("\n")
		for _, f := range result.Passed {
			sb.WriteString(apply(st.Pass, "✅ "+validator.FormatFinding(f)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		sb.WriteString(apply(st.Warning, fmt.Sprintf("Warnings (%d):", len(result.Warnings))))
		sb.WriteString("\n")
		for _, f := range result.Warnings {
			sb.WriteString(apply(st.Warning, "⚠️  "+validator.FormatFinding(f)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(result.Errors) > 0 {
		sb.WriteString(apply(st.Error, fmt.Sprintf("Errors (%d):", len(result.Errors))))
		sb.WriteString("\n")
		for _, f := range result.Errors {
			sb.WriteString(apply(st.Error, "❌ "+validator.FormatFinding(f)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(apply(st.Heading, "Final Result"))
	sb.WriteString("\n")
	sb.WriteString(Summary(result, st))
	sb.WriteString("\n")
	return sb.String()
}

// Summary renders the one-line final verdict.
func Summary(result validator.Result, st Styles) string {
	switch result.Verdict() {
	case validator.VerdictInvalid:
		return apply(st.Error, fmt.Sprintf("❌ Configuration is invalid! Found %d error(s)", len(result.Errors)))
	case validator.VerdictValidWithWarnings:
		return apply(st.Warning, fmt.Sprintf("⚠️  Configuration is valid but has %d warning(s)", len(result.Warnings)))
	default:
		return apply(st.Pass, "✅ Configuration is valid! ✨")
	}
}
