package report

import (
	"encoding/json"
	"fmt"

	"agentlint/internal/validator"
)

// Meta describes the validated document in the JSON report.
type Meta struct {
	Source      string
	Fingerprint string
}

// JSONReport is the machine-readable form of a validation run.
type JSONReport struct {
	Source       string              `json:"source,omitempty"`
	Fingerprint  string              `json:"fingerprint,omitempty"`
	Valid        bool                `json:"valid"`
	Verdict      validator.Verdict   `json:"verdict"`
	ErrorCount   int                 `json:"errorCount"`
	WarningCount int                 `json:"warningCount"`
	Errors       []validator.Finding `json:"errors"`
	Warnings     []validator.Finding `json:"warnings"`
	Passed       []validator.Finding `json:"passed"`
	Notes        []validator.Note    `json:"notes"`
}

// NewJSONReport builds the JSON view of result. Sequences are never nil so
// they encode as empty arrays.
func NewJSONReport(result validator.Result, meta Meta) JSONReport {
	return JSONReport{
		Source:       meta.Source,
		Fingerprint:  meta.Fingerprint,
		Valid:        result.Valid(),
		Verdict:      result.Verdict(),
		ErrorCount:   len(result.Errors),
		WarningCount: len(result.Warnings),
		Errors:       orEmpty(result.Errors),
		Warnings:     orEmpty(result.Warnings),
		Passed:       orEmpty(result.Passed),
		Notes:        notesOrEmpty(result.Notes),
	}
}

// FormatJSON renders result as indented JSON.
func FormatJSON(result validator.Result, meta Meta) (string, error) {
	data, err := json.MarshalIndent(NewJSONReport(result, meta), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal validation report: %w", err)
	}
	return string(data), nil
}

func orEmpty(findings []validator.Finding) []validator.Finding {
	if findings == nil {
		return []validator.Finding{}
	}
	return findings
}

func notesOrEmpty(notes []validator.Note) []validator.Note {
	if notes == nil {
		return []validator.Note{}
	}
	return notes
}
