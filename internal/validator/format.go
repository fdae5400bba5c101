package validator

import "fmt"

// FormatFinding renders a finding as a single human-readable line.
// Errors and warnings carry their severity as a prefix; pass notes do not.
func FormatFinding(f Finding) string {
	switch f.Severity {
	case SeverityError:
		return fmt.Sprintf("ERROR: %s", f.Message)
	case SeverityWarning:
		return fmt.Sprintf("WARNING: %s", f.Message)
	default:
		return f.Message
	}
}
