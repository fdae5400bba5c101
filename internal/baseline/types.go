package baseline

import (
	"time"

	"github.com/google/uuid"

	"agentlint/internal/validator"
)

// Baseline is a saved validation run used for drift comparison.
type Baseline struct {
	Name        string    `json:"name"`        // Baseline identifier
	RunID       string    `json:"runId"`       // Random id of the run that produced it
	Source      string    `json:"source"`      // Path of the validated document
	Fingerprint string    `json:"fingerprint"` // Document fingerprint (sha256:...)
	Errors      []string  `json:"errors"`
	Warnings    []string  `json:"warnings"`
	Passed      []string  `json:"passed"`
	Timestamp   time.Time `json:"timestamp"` // When baseline was created
}

// BaselineSummary is a lightweight view for listing baselines.
type BaselineSummary struct {
	Name         string    `json:"name"`
	Fingerprint  string    `json:"fingerprint"`
	Source       string    `json:"source"`
	ErrorCount   int       `json:"errorCount"`
	WarningCount int       `json:"warningCount"`
	Timestamp    time.Time `json:"timestamp"`
}

// FromResult captures result as a baseline named name.
func FromResult(name, source, fingerprint string, result validator.Result, now time.Time) Baseline {
	return Baseline{
		Name:        name,
		RunID:       uuid.NewString(),
		Source:      source,
		Fingerprint: fingerprint,
		Errors:      orEmpty(result.ErrorMessages()),
		Warnings:    orEmpty(result.WarningMessages()),
		Passed:      orEmpty(result.PassedMessages()),
		Timestamp:   now.UTC(),
	}
}

// Summary returns the listing view of b.
func (b Baseline) Summary() BaselineSummary {
	return BaselineSummary{
		Name:         b.Name,
		Fingerprint:  b.Fingerprint,
		Source:       b.Source,
		ErrorCount:   len(b.Errors),
		WarningCount: len(b.Warnings),
		Timestamp:    b.Timestamp,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
