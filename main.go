// Package main provides the entry point for the urlseg CLI tool.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sgaunet/urlseg/internal/cli"
	"github.com/sgaunet/urlseg/internal/logger"
	"github.com/sgaunet/urlseg/internal/ui"
	"github.com/sgaunet/urlseg/pkg/config"
	"github.com/sgaunet/urlseg/pkg/render"
	"github.com/sgaunet/urlseg/pkg/urlparser"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	mode       string
	format     string
	redact     bool
)

var rootCmd = &cobra.Command{
	Use:   "urlseg",
	Short: "Split URLs and URL fragments into segments",
	Long: `urlseg splits URL-like strings into segments (scheme, username, password,
ipv4 or domain, port, path and specific) using pattern matching. Complete URLs
are parsed strictly; fragments such as "user:pass@" or "host:8080" are parsed
leniently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, cfg, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return parseInputs(cmd, runner, cfg.ParsingMode(), args)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [url...]",
	Short: "Parse complete URLs (reads stdin when no argument is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, _, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return parseInputs(cmd, runner, urlparser.ModeStrict, args)
	},
}

var partialCmd = &cobra.Command{
	Use:   "partial [fragment...]",
	Short: "Parse URL fragments (reads stdin when no argument is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, _, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return parseInputs(cmd, runner, urlparser.ModePartial, args)
	},
}

var remotesCmd = &cobra.Command{
	Use:   "remotes [path]",
	Short: "Segment the remote URLs of a git repository",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, _, err := newRunner(cmd)
		if err != nil {
			return err
		}
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return runner.Remotes(path)
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Segment URL fragments as they are typed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runner, _, err := newRunner(cmd)
		if err != nil {
			return err
		}
		return runner.Interactive(ui.NewPrompter())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&logLevel, "log-level", "l", config.DefaultLogLevel,
		"Set log level ("+strings.Join(logger.Levels(), ", ")+")")
	flags.StringVarP(&configPath, "config", "c", "",
		"Configuration file (default ~/.config/urlseg/config.yml)")
	flags.StringVarP(&mode, "mode", "m", config.DefaultMode,
		"Parsing mode used by the root command (strict, partial)")
	flags.StringVarP(&format, "format", "f", config.DefaultFormat,
		"Output format ("+strings.Join(render.Formats(), ", ")+")")
	flags.BoolVar(&redact, "redact", true, "Mask passwords in the output")

	rootCmd.AddCommand(parseCmd, partialCmd, remotesCmd, interactiveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRunner loads the configuration, applies the flags that were set on the command line
// and builds the runner.
func newRunner(cmd *cobra.Command) (*cli.Runner, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("redact") {
		cfg.Redact = &redact
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	log.Debug(fmt.Sprintf("Configuration: mode=%s format=%s redact=%t", cfg.Mode, cfg.Format, cfg.RedactEnabled()))

	runner := cli.NewRunner(cmd.OutOrStdout(), log, cfg.OutputFormat(), cfg.RedactEnabled())
	runner.SetMode(cfg.ParsingMode())
	return runner, cfg, nil
}

func parseInputs(cmd *cobra.Command, runner *cli.Runner, mode urlparser.Mode, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		var err error
		inputs, err = cli.ReadInputs(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	return runner.Parse(mode, inputs)
}
