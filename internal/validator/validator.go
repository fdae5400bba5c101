// Package validator checks a voice agent configuration document against a
// fixed catalogue of section checks and classifies every observation as an
// error, a warning or a pass.
package validator

import (
	"fmt"

	"agentlint/internal/document"

	"go.uber.org/zap"
)

const (
	toolDescriptionMax  = 60
	fieldDescriptionMax = 50
)

// recommendedTools are reported as warnings when not configured.
var recommendedTools = []string{"end_call", "language_detection"}

// Validator runs the section checks. The zero value is not usable; build one
// with New.
type Validator struct {
	log *zap.SugaredLogger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger routes per-section debug output to log.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// New returns a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks doc with a default Validator.
func Validate(doc document.Document) Result {
	return New().Validate(doc)
}

// Validate runs every section check against doc, in order, and returns the
// accumulated findings. Checks never gate each other: each one runs even when
// an earlier one found the document badly malformed.
func (v *Validator) Validate(doc document.Document) Result {
	r := &run{doc: doc}
	checks := []struct {
		section Section
		fn      func()
	}{
		{SectionTTS, r.checkTTS},
		{SectionLanguages, r.checkLanguages},
		{SectionTools, r.checkTools},
		{SectionKnowledgeBase, r.checkKnowledgeBase},
		{SectionDataCollection, r.checkDataCollection},
		{SectionEvaluation, r.checkEvaluation},
		{SectionWorkflow, r.checkWorkflow},
		{SectionPrompt, r.checkPrompt},
	}
	for _, c := range checks {
		errs, warns := len(r.result.Errors), len(r.result.Warnings)
		r.curSection = c.section
		c.fn()
		v.log.Debugw("section checked",
			"section", c.section,
			"errors", len(r.result.Errors)-errs,
			"warnings", len(r.result.Warnings)-warns,
		)
	}
	v.log.Debugw("validation finished",
		"verdict", r.result.Verdict(),
		"errors", len(r.result.Errors),
		"warnings", len(r.result.Warnings),
		"passed", len(r.result.Passed),
	)
	return r.result
}

// run is the state of one Validate call. It owns the accumulators.
type run struct {
	doc        document.Document
	curSection Section
	result     Result
}

func (r *run) errorf(format string, args ...any) {
	r.result.Errors = append(r.result.Errors, r.finding(SeverityError, format, args...))
}

func (r *run) warnf(format string, args ...any) {
	r.result.Warnings = append(r.result.Warnings, r.finding(SeverityWarning, format, args...))
}

func (r *run) passf(format string, args ...any) {
	r.result.Passed = append(r.result.Passed, r.finding(SeverityPass, format, args...))
}

func (r *run) notef(format string, args ...any) {
	r.result.Notes = append(r.result.Notes, Note{Section: r.curSection, Message: fmt.Sprintf(format, args...)})
}

func (r *run) finding(sev Severity, format string, args ...any) Finding {
	return Finding{Section: r.curSection, Severity: sev, Message: fmt.Sprintf(format, args...)}
}
