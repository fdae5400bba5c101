package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ErrNoSubcommand is returned when no subcommand is provided.
var ErrNoSubcommand = errors.New("missing subcommand: usage: agentlint <check|baseline|schema> [flags] [args...]")

// ErrHelp is returned after help text has been written.
var ErrHelp = errors.New("help requested")

// Subcommand represents the CLI subcommand
type Subcommand string

const (
	SubcommandCheck    Subcommand = "check"
	SubcommandBaseline Subcommand = "baseline"
	SubcommandSchema   Subcommand = "schema"
)

// Baseline actions.
const (
	BaselineList   = "list"
	BaselineShow   = "show"
	BaselineDelete = "delete"
)

// Command represents the parsed CLI input
type Command struct {
	Subcommand Subcommand
	File       string // configuration document to validate (check only)

	// Output flags
	Format     string // --format <text|ci|json>; empty when not given
	CIMode     bool   // --ci
	JSONOutput bool   // --json
	NoColor    bool   // --no-color
	Strict     bool   // --strict
	ReportFile string // --report-file <path>
	Watch      bool   // --watch

	// Settings flags
	ConfigPath string // --config <path>
	Debug      bool   // --debug
	LogFile    string // --log-file <path>

	// Baseline and drift flags
	Baseline    string // --baseline <name>
	DetectDrift string // --detect-drift <name>
	DriftJSON   bool   // --drift-json

	// baseline subcommand
	BaselineAction string // list, show or delete
	BaselineName   string
}

// ParseArgs parses CLI arguments into a Command.
// It expects args to be os.Args[1:] (excluding the program name).
// Help and usage text go to out.
func ParseArgs(args []string, out io.Writer) (Command, error) {
	var cmd Command
	helped := false

	root := &cobra.Command{
		Use:           "agentlint",
		Short:         "Validate voice agent configuration documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return ErrNoSubcommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(c *cobra.Command, a []string) {
		helped = true
		defaultHelp(c, a)
	})

	root.AddCommand(newCheckCommand(&cmd), newBaselineCommand(&cmd), newSchemaCommand(&cmd))

	if err := root.Execute(); err != nil {
		return Command{}, err
	}
	if helped {
		return Command{}, ErrHelp
	}
	return cmd, nil
}

func newCheckCommand(cmd *Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "check [flags] <config-file>",
		Short: "Validate an agent configuration file (.json, .json5, .yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			switch cmd.Format {
			case "", "text", "ci", "json":
			default:
				return fmt.Errorf("invalid --format %q: want text, ci or json", cmd.Format)
			}
			if cmd.JSONOutput {
				cmd.Format = "json"
			}
			cmd.Subcommand = SubcommandCheck
			cmd.File = args[0]
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&cmd.Format, "format", "", "output format: text, ci or json")
	f.BoolVar(&cmd.JSONOutput, "json", false, "shorthand for --format json")
	f.BoolVar(&cmd.CIMode, "ci", false, "emit GitHub Actions annotations")
	f.BoolVar(&cmd.Strict, "strict", false, "fail when warnings are reported")
	f.BoolVar(&cmd.NoColor, "no-color", false, "disable terminal styling")
	f.StringVar(&cmd.ReportFile, "report-file", "", "also write the JSON report to this file")
	f.BoolVar(&cmd.Watch, "watch", false, "validate again whenever the file changes")
	f.StringVar(&cmd.ConfigPath, "config", "", "settings file (default .agentlint.yaml)")
	f.BoolVar(&cmd.Debug, "debug", false, "log each section check")
	f.StringVar(&cmd.LogFile, "log-file", "", "also write JSON logs to this file")
	f.StringVar(&cmd.Baseline, "baseline", "", "save the findings as a named baseline")
	f.StringVar(&cmd.DetectDrift, "detect-drift", "", "compare the findings with a named baseline")
	f.BoolVar(&cmd.DriftJSON, "drift-json", false, "print the drift report as JSON")
	c.MarkFlagsMutuallyExclusive("format", "json")

	return c
}

func newBaselineCommand(cmd *Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "baseline",
		Short: "Manage saved findings baselines",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("missing baseline action: usage: agentlint baseline <list|show|delete> [name]")
		},
	}
	c.PersistentFlags().BoolVar(&cmd.JSONOutput, "json", false, "print as JSON")
	c.PersistentFlags().StringVar(&cmd.ConfigPath, "config", "", "settings file (default .agentlint.yaml)")

	action := func(name string) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			cmd.Subcommand = SubcommandBaseline
			cmd.BaselineAction = name
			if len(args) > 0 {
				cmd.BaselineName = args[0]
			}
			return nil
		}
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved baselines",
			Args:  cobra.NoArgs,
			RunE:  action(BaselineList),
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show a saved baseline",
			Args:  cobra.ExactArgs(1),
			RunE:  action(BaselineShow),
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a saved baseline",
			Args:  cobra.ExactArgs(1),
			RunE:  action(BaselineDelete),
		},
	)
	return c
}

func newSchemaCommand(cmd *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the --json report",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cmd.Subcommand = SubcommandSchema
			return nil
		},
	}
}
