package drift

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentlint/internal/baseline"
	"agentlint/internal/validator"
)

func resultOf(errs, warns, passed []string) validator.Result {
	var r validator.Result
	for _, m := range errs {
		r.Errors = append(r.Errors, validator.Finding{Severity: validator.SeverityError, Message: m})
	}
	for _, m := range warns {
		r.Warnings = append(r.Warnings, validator.Finding{Severity: validator.SeverityWarning, Message: m})
	}
	for _, m := range passed {
		r.Passed = append(r.Passed, validator.Finding{Severity: validator.SeverityPass, Message: m})
	}
	return r
}

// Feature: agentlint, Property 14: No Drift When Fingerprints Match
// For any findings, an unchanged document fingerprint SHALL report no drift.
func TestNoDriftWhenFingerprintsMatch(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("no drift when document fingerprints match", prop.ForAll(
		func(before, after []string) bool {
			b := baseline.Baseline{
				Name:        "main",
				Fingerprint: "sha256:same",
				Errors:      before,
				Timestamp:   time.Now().UTC(),
			}

			report := Detect(b, resultOf(after, nil, nil), "sha256:same")
			return !report.HasDrift && len(report.Changes) == 0
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Feature: agentlint, Property 15: Identical Findings Never Drift
// For any findings, comparing them with themselves SHALL report no drift even
// when the document fingerprint changed.
func TestNoDriftForIdenticalFindings(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("identical findings never drift", prop.ForAll(
		func(errs, warns, passed []string) bool {
			b := baseline.Baseline{
				Name:        "main",
				Fingerprint: "sha256:old",
				Errors:      errs,
				Warnings:    warns,
				Passed:      passed,
			}

			report := Detect(b, resultOf(errs, warns, passed), "sha256:new")
			return !report.HasDrift && len(report.Changes) == 0
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestDetect_AppearedAndResolved(t *testing.T) {
	b := baseline.Baseline{
		Name:        "release",
		Fingerprint: "sha256:old",
		Errors:      []string{"agent.tools is missing"},
		Warnings:    []string{"workflow configuration is missing"},
		Passed:      []string{"tts.voice_id: abc"},
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	current := resultOf(
		nil,
		[]string{"workflow configuration is missing", "Recommended tool 'end_call' is not configured"},
		[]string{"agent.tools: 1 tool(s) configured", "tts.voice_id: xyz"},
	)

	report := Detect(b, current, "sha256:new")

	require.True(t, report.HasDrift)
	assert.Equal(t, "release", report.BaselineName)
	assert.Equal(t, "sha256:old", report.BaselineFingerprint)
	assert.Equal(t, "sha256:new", report.CurrentFingerprint)
	assert.Equal(t, b.Timestamp, report.BaselineTime)
	assert.Equal(t, []FindingDrift{
		{Severity: validator.SeverityError, Type: DriftResolved, Message: "agent.tools is missing"},
		{Severity: validator.SeverityWarning, Type: DriftAppeared, Message: "Recommended tool 'end_call' is not configured"},
		{Severity: validator.SeverityPass, Type: DriftAppeared, Message: "agent.tools: 1 tool(s) configured"},
		{Severity: validator.SeverityPass, Type: DriftResolved, Message: "tts.voice_id: abc"},
		{Severity: validator.SeverityPass, Type: DriftAppeared, Message: "tts.voice_id: xyz"},
	}, report.Changes)
}

func TestDetect_EmptyFingerprintStillCompares(t *testing.T) {
	b := baseline.Baseline{Name: "legacy", Errors: []string{"agent configuration is missing"}}

	report := Detect(b, validator.Result{}, "")

	assert.True(t, report.HasDrift)
	assert.Len(t, report.Changes, 1)
}

func TestDetect_NoChangesIsEmptySlice(t *testing.T) {
	report := Detect(baseline.Baseline{Name: "main"}, validator.Result{}, "sha256:x")

	assert.False(t, report.HasDrift)
	assert.NotNil(t, report.Changes)
	assert.Empty(t, report.Changes)
}
