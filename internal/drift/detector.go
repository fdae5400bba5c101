package drift

import (
	"sort"
	"time"

	"agentlint/internal/baseline"
	"agentlint/internal/validator"
)

// DriftType represents how a finding changed since the baseline.
type DriftType string

const (
	DriftAppeared DriftType = "appeared" // Finding in current run but not baseline
	DriftResolved DriftType = "resolved" // Finding in baseline but not current run
)

// FindingDrift represents a single finding's drift.
type FindingDrift struct {
	Severity validator.Severity `json:"severity"`
	Type     DriftType          `json:"type"`
	Message  string             `json:"message"`
}

// DriftReport contains the full drift analysis.
type DriftReport struct {
	HasDrift            bool           `json:"hasDrift"`
	BaselineName        string         `json:"baselineName"`
	BaselineFingerprint string         `json:"baselineFingerprint"`
	CurrentFingerprint  string         `json:"currentFingerprint"`
	BaselineTime        time.Time      `json:"baselineTime"`
	Changes             []FindingDrift `json:"changes"`
}

// Detect compares the current findings against a baseline. Changes are
// grouped by severity (errors, warnings, passed) and sorted by message
// within each group.
func Detect(b baseline.Baseline, result validator.Result, currentFingerprint string) DriftReport {
	report := DriftReport{
		BaselineName:        b.Name,
		BaselineFingerprint: b.Fingerprint,
		CurrentFingerprint:  currentFingerprint,
		BaselineTime:        b.Timestamp,
		Changes:             []FindingDrift{},
	}

	// Same document, same findings.
	if b.Fingerprint != "" && b.Fingerprint == currentFingerprint {
		return report
	}

	groups := []struct {
		severity validator.Severity
		before   []string
		after    []string
	}{
		{validator.SeverityError, b.Errors, result.ErrorMessages()},
		{validator.SeverityWarning, b.Warnings, result.WarningMessages()},
		{validator.SeverityPass, b.Passed, result.PassedMessages()},
	}

	for _, g := range groups {
		report.Changes = append(report.Changes, compare(g.severity, g.before, g.after)...)
	}

	report.HasDrift = len(report.Changes) > 0
	return report
}

func compare(sev validator.Severity, before, after []string) []FindingDrift {
	inBefore := set(before)
	inAfter := set(after)

	var changes []FindingDrift
	for msg := range inAfter {
		if !inBefore[msg] {
			changes = append(changes, FindingDrift{Severity: sev, Type: DriftAppeared, Message: msg})
		}
	}
	for msg := range inBefore {
		if !inAfter[msg] {
			changes = append(changes, FindingDrift{Severity: sev, Type: DriftResolved, Message: msg})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Message != changes[j].Message {
			return changes[i].Message < changes[j].Message
		}
		return changes[i].Type < changes[j].Type
	})
	return changes
}

func set(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}
