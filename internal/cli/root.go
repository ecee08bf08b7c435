// Package cli implements the dsviz command line: the text presentation layer
// over the deque and sorting engines.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags and the state they resolve to for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Resolved in PersistentPreRunE.
	Config Config
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// env carries the side-effecting dependencies commands use, so tests can pin them.
type env struct {
	now      func() time.Time
	sleep    func(time.Duration)
	newRunID func() string
}

func defaultEnv() env {
	return env{
		now:   time.Now,
		sleep: time.Sleep,
		newRunID: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
}

// NewRootCommand creates the root command for the dsviz CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnv())
}

func newRootCommand(e env) *cobra.Command {
	opts := &RootOptions{Config: DefaultConfig()}

	cmd := &cobra.Command{
		Use:           "dsviz",
		Short:         "dsviz - data structure visualizer",
		Long:          "Step through a linked-list deque and instrumented bubble/selection sorts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")

	// Add subcommands
	cmd.AddCommand(NewDequeCommand(opts, e))
	cmd.AddCommand(NewSortCommand(opts, e))
	cmd.AddCommand(NewGenerateCommand(opts, e))

	return cmd
}

// resolve loads the config file, applies it beneath explicit flags, and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := LoadConfig(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "config error", err)
		}
		o.Config = cfg
		if !cmd.Flags().Changed("format") {
			o.Format = cfg.Format
		}
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// formatter returns an OutputFormatter bound to cmd's stdout.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
