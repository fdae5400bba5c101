package validator

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFormatFinding(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{"error", Finding{Severity: SeverityError, Message: "agent.tools is missing"}, "ERROR: agent.tools is missing"},
		{"warning", Finding{Severity: SeverityWarning, Message: "data_collection is missing"}, "WARNING: data_collection is missing"},
		{"pass", Finding{Severity: SeverityPass, Message: "languages: en"}, "languages: en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFinding(tt.finding))
		})
	}
}

// Feature: agentlint, Property 5: Formatted Findings Keep Their Message
// For any finding, the formatted line SHALL end with the finding message.
func TestFormatFinding_KeepsMessage_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("formatted line ends with the message", prop.ForAll(
		func(msg string, sev Severity) bool {
			return strings.HasSuffix(FormatFinding(Finding{Severity: sev, Message: msg}), msg)
		},
		gen.AlphaString(),
		gen.OneConstOf(SeverityError, SeverityWarning, SeverityPass),
	))

	properties.TestingRun(t)
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "TTS Configuration", SectionTTS.Title())
	assert.Equal(t, "custom", Section("custom").Title())
	assert.Len(t, Sections, 8)
}
