package report

import (
	"fmt"
	"strings"

	"agentlint/internal/validator"
)

// FormatCI renders warnings and errors as GitHub Actions annotations against
// file, followed by the summary line. Passed checks are omitted.
func FormatCI(result validator.Result, file string) string {
	var sb strings.Builder
	for _, f := range result.Warnings {
		sb.WriteString(Annotation("warning", file, f.Message))
	}
	for _, f := range result.Errors {
		sb.WriteString(Annotation("error", file, f.Message))
	}
	sb.WriteString("\n")
	sb.WriteString(Summary(result, PlainStyles()))
	sb.WriteString("\n")
	return sb.String()
}

// Annotation returns one workflow-command line, e.g.
// "::error file=agent.json::agent.tools is missing\n".
func Annotation(level, file, msg string) string {
	return fmt.Sprintf("::%s file=%s::%s\n", level, file, escapeAnnotation(msg))
}

// escapeAnnotation applies the workflow-command escaping rules so a message
// always stays on one annotation line.
func escapeAnnotation(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
