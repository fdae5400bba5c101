package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"agentlint/internal/baseline"
	"agentlint/internal/cli"
	"agentlint/internal/config"
	"agentlint/internal/document"
	"agentlint/internal/drift"
	"agentlint/internal/fingerprint"
	"agentlint/internal/logger"
	"agentlint/internal/report"
	"agentlint/internal/validator"
	"agentlint/internal/watch"
)

// Exit codes.
const (
	exitValid            = 0
	exitInvalid          = 1
	exitUsage            = 2
	exitDocument         = 3
	exitBaselineNotFound = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run orchestrates the full execution flow and returns the exit code.
// This function is separated from main() to enable testing.
func run(args []string, stdout, stderr io.Writer) int {
	cmd, err := cli.ParseArgs(args, stdout)
	if errors.Is(err, cli.ErrHelp) {
		return exitValid
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}

	settings, err := config.Load(cmd.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	settings = applyFlags(settings, cmd)

	log, err := logger.New(logger.Options{
		Debug:   settings.Debug,
		LogFile: settings.LogFile,
		Console: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot open log file: %v\n", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	switch cmd.Subcommand {
	case cli.SubcommandBaseline:
		return runBaseline(cmd, settings, stdout, stderr)
	case cli.SubcommandSchema:
		return runSchema(stdout, stderr)
	}

	if cmd.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd, settings, log, stdout, stderr)
	}
	return runCheck(cmd, settings, log, stdout, stderr)
}

// applyFlags layers command-line flags over the loaded settings.
func applyFlags(s config.Settings, cmd cli.Command) config.Settings {
	if cmd.Format != "" {
		s.Format = cmd.Format
	}
	if cmd.CIMode {
		s.CI = true
	}
	if cmd.Strict {
		s.Strict = true
	}
	if cmd.NoColor {
		s.NoColor = true
	}
	if cmd.Debug {
		s.Debug = true
	}
	if cmd.LogFile != "" {
		s.LogFile = cmd.LogFile
	}
	return s
}

// outputFormat resolves the report format. CI mode only changes the
// default text output; an explicit json format wins.
func outputFormat(s config.Settings) string {
	if s.CI && s.Format == config.FormatText {
		return config.FormatCI
	}
	return s.Format
}

// runWatch validates the document on every change until ctx is cancelled and
// returns the exit code of the last run.
func runWatch(ctx context.Context, cmd cli.Command, settings config.Settings, log *zap.SugaredLogger, stdout, stderr io.Writer) int {
	code := exitValid
	err := watch.Watch(ctx, cmd.File, watch.Options{Logger: log}, func() {
		code = runCheck(cmd, settings, log, stdout, stderr)
		fmt.Fprintf(stderr, "\n👀 Watching %s for changes (Ctrl+C to stop)\n", cmd.File)
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDocument
	}
	return code
}

func runCheck(cmd cli.Command, settings config.Settings, log *zap.SugaredLogger, stdout, stderr io.Writer) int {
	doc, err := document.Load(cmd.File)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			fmt.Fprintf(stderr, "Error: configuration file not found: %s\n", cmd.File)
			return exitDocument
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDocument
	}

	fp, err := fingerprint.Compute(doc)
	if err != nil {
		log.Warnw("cannot fingerprint document", "file", cmd.File, "error", err)
	}
	log.Debugw("document loaded", "file", cmd.File, "fingerprint", fp)

	result := validator.New(validator.WithLogger(log)).Validate(doc)

	format := outputFormat(settings)
	switch format {
	case config.FormatJSON:
		out, err := report.FormatJSON(result, report.Meta{Source: cmd.File, Fingerprint: fp})
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot format report: %v\n", err)
			return exitInvalid
		}
		fmt.Fprintln(stdout, out)
	case config.FormatCI:
		fmt.Fprint(stdout, report.FormatCI(result, cmd.File))
	default:
		styles := report.PlainStyles()
		if !settings.NoColor {
			styles = report.TermStyles(stdout)
		}
		fmt.Fprint(stdout, report.FormatCLI(result, styles))
	}

	if cmd.ReportFile != "" {
		if err := report.WriteJSONFile(cmd.ReportFile, result, report.Meta{Source: cmd.File, Fingerprint: fp}); err != nil {
			fmt.Fprintf(stderr, "Error: cannot write report: %s: %v\n", cmd.ReportFile, err)
			return exitInvalid
		}
	}

	store := baseline.NewStore(settings.BaselineDir)

	// Drift is compared before saving so --baseline and --detect-drift can
	// name the same baseline.
	if cmd.DetectDrift != "" {
		reportDrift(store, cmd, format, result, fp, log, stderr)
	}

	if cmd.Baseline != "" {
		b, replaced, err := store.Record(cmd.Baseline, cmd.File, fp, result, time.Now())
		if err != nil {
			return baselineError(err, cmd.Baseline, "save", stderr)
		}
		log.Debugw("baseline saved", "name", b.Name, "runId", b.RunID, "replaced", replaced)
	}

	if !result.Valid() {
		return exitInvalid
	}
	if settings.Strict && len(result.Warnings) > 0 {
		return exitInvalid
	}
	return exitValid
}

// reportDrift writes the drift report to stderr. It never affects the exit
// code and a missing baseline is skipped silently.
func reportDrift(store *baseline.Store, cmd cli.Command, format string, result validator.Result, fp string, log *zap.SugaredLogger, stderr io.Writer) {
	b, err := store.Load(cmd.DetectDrift)
	if err != nil {
		if !errors.Is(err, baseline.ErrBaselineNotFound) {
			log.Warnw("cannot load baseline", "name", cmd.DetectDrift, "error", err)
		}
		return
	}

	r := drift.Detect(b, result, fp)
	if !r.HasDrift {
		return
	}

	switch {
	case cmd.DriftJSON:
		out, err := drift.FormatJSON(r)
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot format drift report: %v\n", err)
			return
		}
		fmt.Fprintln(stderr, out)
	case format == config.FormatCI:
		fmt.Fprint(stderr, drift.FormatCI(r, cmd.File))
	default:
		fmt.Fprint(stderr, drift.FormatCLI(r))
	}
}

// runSchema prints the JSON Schema of the --json report.
func runSchema(stdout, stderr io.Writer) int {
	data, err := report.JSONSchema()
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot build report schema: %v\n", err)
		return exitInvalid
	}
	fmt.Fprintln(stdout, string(data))
	return exitValid
}

// runBaseline handles the baseline subcommand.
func runBaseline(cmd cli.Command, settings config.Settings, stdout, stderr io.Writer) int {
	store := baseline.NewStore(settings.BaselineDir)

	switch cmd.BaselineAction {
	case cli.BaselineList:
		summaries, err := store.List()
		if err != nil {
			fmt.Fprintf(stderr, "Error: cannot list baselines: %v\n", err)
			return exitInvalid
		}

		if cmd.JSONOutput {
			return printJSON(summaries, "baselines", stdout, stderr)
		}
		if len(summaries) == 0 {
			fmt.Fprintln(stdout, "No baselines found")
			return exitValid
		}
		for _, b := range summaries {
			fmt.Fprintf(stdout, "%s  %s  %s  %d error(s)  %d warning(s)  %s\n",
				b.Name, shortFingerprint(b.Fingerprint), b.Source, b.ErrorCount, b.WarningCount,
				b.Timestamp.Format(time.RFC3339))
		}
		return exitValid

	case cli.BaselineShow:
		b, err := store.Load(cmd.BaselineName)
		if err != nil {
			return baselineError(err, cmd.BaselineName, "load", stderr)
		}

		if cmd.JSONOutput {
			return printJSON(b, "baseline", stdout, stderr)
		}
		fmt.Fprintf(stdout, "Name:        %s\n", b.Name)
		fmt.Fprintf(stdout, "Source:      %s\n", b.Source)
		fmt.Fprintf(stdout, "Fingerprint: %s\n", b.Fingerprint)
		fmt.Fprintf(stdout, "RunID:       %s\n", b.RunID)
		fmt.Fprintf(stdout, "Timestamp:   %s\n", b.Timestamp.Format(time.RFC3339))
		printMessages(stdout, "Errors", b.Errors)
		printMessages(stdout, "Warnings", b.Warnings)
		printMessages(stdout, "Passed", b.Passed)
		return exitValid

	case cli.BaselineDelete:
		if err := store.Delete(cmd.BaselineName); err != nil {
			return baselineError(err, cmd.BaselineName, "delete", stderr)
		}
		fmt.Fprintf(stdout, "Deleted baseline: %s\n", cmd.BaselineName)
		return exitValid
	}

	return exitUsage
}

func baselineError(err error, name, verb string, stderr io.Writer) int {
	if errors.Is(err, baseline.ErrBaselineNotFound) {
		fmt.Fprintf(stderr, "Error: baseline not found: %s\n", name)
		return exitBaselineNotFound
	}
	if errors.Is(err, baseline.ErrInvalidName) {
		fmt.Fprintf(stderr, "Error: invalid baseline name: %q\n", name)
		return exitUsage
	}
	fmt.Fprintf(stderr, "Error: cannot %s baseline: %v\n", verb, err)
	return exitInvalid
}

func printJSON(v any, what string, stdout, stderr io.Writer) int {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, "Error: cannot serialize %s: %v\n", what, err)
		return exitInvalid
	}
	fmt.Fprintln(stdout, string(data))
	return exitValid
}

func printMessages(w io.Writer, label string, msgs []string) {
	fmt.Fprintf(w, "%s (%d):\n", label, len(msgs))
	for _, m := range msgs {
		fmt.Fprintf(w, "  - %s\n", m)
	}
}

// shortFingerprint trims a fingerprint for listings.
func shortFingerprint(fp string) string {
	if len(fp) <= 20 {
		return fp
	}
	return fp[:20] + "..."
}
