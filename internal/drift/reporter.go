package drift

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"agentlint/internal/report"
)

// FormatCLI formats drift report for terminal output.
func FormatCLI(r DriftReport) string {
	if !r.HasDrift {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⚠️  Findings drift detected since baseline '%s':\n", r.BaselineName))

	for _, change := range r.Changes {
		switch change.Type {
		case DriftAppeared:
			sb.WriteString(fmt.Sprintf("  + [%s] %s\n", change.Severity, change.Message))
		case DriftResolved:
			sb.WriteString(fmt.Sprintf("  - [%s] %s\n", change.Severity, change.Message))
		}
	}

	return sb.String()
}

// FormatCI formats drift report as GitHub Actions warning annotations.
func FormatCI(r DriftReport, file string) string {
	if !r.HasDrift {
		return ""
	}

	var sb strings.Builder
	for _, change := range r.Changes {
		msg := fmt.Sprintf("Findings drift: %s %s: %s", change.Severity, change.Type, change.Message)
		sb.WriteString(report.Annotation("warning", file, msg))
	}

	sb.WriteString(fmt.Sprintf("\n⚠️  Findings drift detected: %d change(s) since baseline '%s'\n", len(r.Changes), r.BaselineName))
	return sb.String()
}

// FormatJSON formats drift report as JSON.
func FormatJSON(r DriftReport) (string, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
