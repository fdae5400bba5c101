package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"agentlint/internal/validator"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() validator.Result {
	return validator.Result{
		Errors: []validator.Finding{
			{Section: validator.SectionTools, Severity: validator.SeverityError, Message: "agent.tools is missing"},
		},
		Warnings: []validator.Finding{
			{Section: validator.SectionWorkflow, Severity: validator.SeverityWarning, Message: "workflow configuration is missing"},
		},
		Passed: []validator.Finding{
			{Section: validator.SectionTTS, Severity: validator.SeverityPass, Message: "tts.voice_id: voice-en"},
		},
		Notes: []validator.Note{
			{Section: validator.SectionKnowledgeBase, Message: "FAQ (auto)"},
		},
	}
}

func TestFormatCLI_Groups(t *testing.T) {
	out := FormatCLI(sampleResult(), PlainStyles())

	assert.Contains(t, out, "Passed Checks (1):\n✅ tts.voice_id: voice-en\n")
	assert.Contains(t, out, "Warnings (1):\n⚠️  WARNING: workflow configuration is missing\n")
	assert.Contains(t, out, "Errors (1):\n❌ ERROR: agent.tools is missing\n")
	assert.Contains(t, out, "Knowledge Base\nℹ️    - FAQ (auto)\n")
	assert.True(t, strings.HasSuffix(out, "❌ Configuration is invalid! Found 1 error(s)\n"))

	// Groups appear as passed, warnings, errors.
	passed := strings.Index(out, "Passed Checks")
	warnings := strings.Index(out, "Warnings (")
	errors := strings.Index(out, "Errors (")
	assert.True(t, passed < warnings && warnings < errors)
}

func TestFormatCLI_OmitsEmptyGroups(t *testing.T) {
	result := validator.Result{
		Passed: []validator.Finding{{Severity: validator.SeverityPass, Message: "languages: en"}},
	}

	out := FormatCLI(result, PlainStyles())

	assert.NotContains(t, out, "Warnings (")
	assert.NotContains(t, out, "Errors (")
	assert.Contains(t, out, "✅ Configuration is valid! ✨")
}

func TestFormatCLI_TermStyles(t *testing.T) {
	var buf bytes.Buffer

	out := FormatCLI(sampleResult(), TermStyles(&buf))

	assert.Contains(t, out, "agent.tools is missing")
	assert.Contains(t, out, "workflow configuration is missing")
	assert.Contains(t, out, "Configuration is invalid! Found 1 error(s)")
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		result validator.Result
		want   string
	}{
		{"valid", validator.Result{}, "✅ Configuration is valid! ✨"},
		{
			"valid with warnings",
			validator.Result{Warnings: []validator.Finding{{Message: "w1"}, {Message: "w2"}}},
			"⚠️  Configuration is valid but has 2 warning(s)",
		},
		{
			"invalid",
			validator.Result{Errors: []validator.Finding{{Message: "e"}}, Warnings: []validator.Finding{{Message: "w"}}},
			"❌ Configuration is invalid! Found 1 error(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.result, PlainStyles()))
		})
	}
}

func TestFormatCI(t *testing.T) {
	out := FormatCI(sampleResult(), "agent.json")

	assert.Equal(t, "::warning file=agent.json::workflow configuration is missing\n"+
		"::error file=agent.json::agent.tools is missing\n"+
		"\n❌ Configuration is invalid! Found 1 error(s)\n", out)
}

// Feature: agentlint, Property 6: CI Annotations Stay On One Line
// For any finding message, the CI annotation SHALL occupy exactly one line.
func TestFormatCI_SingleLineAnnotations_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("each finding becomes one annotation line", prop.ForAll(
		func(parts []string) bool {
			msg := strings.Join(parts, "\n")
			result := validator.Result{
				Errors: []validator.Finding{{Severity: validator.SeverityError, Message: msg}},
			}
			lines := strings.Split(FormatCI(result, "agent.json"), "\n")
			return strings.HasPrefix(lines[0], "::error file=agent.json::") && lines[1] == ""
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(sampleResult(), Meta{Source: "agent.json", Fingerprint: "sha256:abc"})
	require.NoError(t, err)

	var decoded JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "agent.json", decoded.Source)
	assert.Equal(t, "sha256:abc", decoded.Fingerprint)
	assert.False(t, decoded.Valid)
	assert.Equal(t, validator.VerdictInvalid, decoded.Verdict)
	assert.Equal(t, 1, decoded.ErrorCount)
	assert.Equal(t, 1, decoded.WarningCount)
	assert.Equal(t, sampleResult().Errors, decoded.Errors)
	assert.Equal(t, sampleResult().Notes, decoded.Notes)
}

func TestFormatJSON_EmptySequences(t *testing.T) {
	out, err := FormatJSON(validator.Result{}, Meta{})
	require.NoError(t, err)

	assert.Contains(t, out, `"errors": []`)
	assert.Contains(t, out, `"notes": []`)
	assert.Contains(t, out, `"verdict": "valid"`)
	assert.NotContains(t, out, "fingerprint")
}
