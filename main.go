// Package main provides the entry point for the dateutil CLI tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/dateutil/internal/clock"
	"github.com/sgaunet/dateutil/internal/logger"
	"github.com/sgaunet/dateutil/internal/ui"
	"github.com/sgaunet/dateutil/pkg/config"
	"github.com/sgaunet/dateutil/pkg/dateutil"
	"github.com/sgaunet/dateutil/pkg/locale"
	"github.com/sgaunet/dateutil/pkg/pattern"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	errNotTerminal     = errors.New("interactive mode requires a terminal")
	errInvalidLogLevel = errors.New("invalid log level")
)

// styleSelector picks a style name among previewed options.
type styleSelector interface {
	Select(options []ui.Option, def string) (string, error)
}

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	logLevel     string
	configPath   string
	localeTag    string
	inputPattern string
}

// app carries the dependencies and global flags shared by all commands.
type app struct {
	clock      clock.Clock
	selector   styleSelector
	isTerminal func() bool
	stderr     io.Writer

	flags globalFlags

	log *bullets.Logger
	cfg *config.Config
	loc *locale.Locale
}

func newApp() *app {
	return &app{
		clock:      clock.System{},
		selector:   ui.NewStyleSelector(),
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		stderr:     os.Stderr,
		log:        logger.NoLogger(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dateutil",
		Short: "Format, parse and compare local date-times",
		Long: `dateutil formats, parses, compares and splits zone-less date-times
using Java style patterns such as "yyyy-MM-dd HH:mm:ss" or locale aware
styles (short, medium, long, full).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.flags.logLevel, "log-level", "l", "info",
		fmt.Sprintf("Set log level (%s)", strings.Join(logger.Levels(), ", ")))
	rootCmd.PersistentFlags().StringVarP(&a.flags.configPath, "config", "c", "",
		"Configuration file (default ~/.config/dateutil/config.yml)")
	rootCmd.PersistentFlags().StringVar(&a.flags.localeTag, "locale", "",
		"Locale as a BCP 47 tag, overrides the configuration")
	rootCmd.PersistentFlags().StringVar(&a.flags.inputPattern, "input-pattern", dateutil.DefaultPattern,
		"Pattern used to read DATETIME arguments")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newParseCmd(a),
		newDiffCmd(a),
		newSplitCmd(a),
		newJoinCmd(a),
		newNowCmd(a),
		newGuessCmd(a),
		newShellCmd(a),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup builds the logger and loads the configuration before any command runs.
func (a *app) setup() error {
	if !slices.Contains(logger.Levels(), strings.ToLower(a.flags.logLevel)) {
		return fmt.Errorf("%w: %q, expected one of %s", errInvalidLogLevel,
			a.flags.logLevel, strings.Join(logger.Levels(), ", "))
	}
	a.log = logger.NewLogger(a.stderr, a.flags.logLevel)

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	var err error
	if a.flags.configPath != "" {
		a.cfg, err = config.LoadFile(a.flags.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.log.Debug("Configuration loaded successfully")

	tag := a.cfg.Locale
	if a.flags.localeTag != "" {
		tag = a.flags.localeTag
	}
	a.loc, err = locale.Parse(tag)
	if err != nil {
		return fmt.Errorf("failed to resolve locale: %w", err)
	}
	a.log.Debug(fmt.Sprintf("Using locale %s", a.loc))
	return nil
}

// inputFormatter returns the formatter for DATETIME and TEXT arguments:
// p when set, --input-pattern otherwise, with the active locale's text.
func (a *app) inputFormatter(p string) (*pattern.Formatter, error) {
	if p == "" {
		p = a.flags.inputPattern
	}
	if strings.TrimSpace(p) == "" {
		return nil, fmt.Errorf("%w: input pattern cannot be empty", dateutil.ErrInvalidArgument)
	}
	f, err := pattern.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dateutil.ErrInvalidArgument, err)
	}
	return f.WithSymbols(a.loc.Symbols()), nil
}

// readDateTime parses a DATETIME argument with --input-pattern.
func (a *app) readDateTime(text string) (civil.DateTime, error) {
	f, err := a.inputFormatter("")
	if err != nil {
		return civil.DateTime{}, err
	}
	dt, err := dateutil.ParseWith(text, f)
	if err != nil {
		return civil.DateTime{}, fmt.Errorf("failed to read date-time %q: %w", text, err)
	}
	return dt, nil
}

// outputFormatter returns the formatter for printed values: p when set,
// the configured pattern otherwise, with the active locale's text.
func (a *app) outputFormatter(p string) (*pattern.Formatter, error) {
	if p == "" {
		f, err := a.cfg.Formatter()
		if err != nil {
			return nil, err
		}
		return f.WithSymbols(a.loc.Symbols()), nil
	}
	f, err := pattern.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dateutil.ErrInvalidArgument, err)
	}
	return f.WithSymbols(a.loc.Symbols()), nil
}

// printDateTime writes dt to the command output using outputFormatter(p).
func (a *app) printDateTime(cmd *cobra.Command, dt civil.DateTime, p string) error {
	f, err := a.outputFormatter(p)
	if err != nil {
		return err
	}
	if !dt.IsValid() {
		return fmt.Errorf("%w: date-time is not valid", dateutil.ErrInvalidArgument)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), f.Format(dt))
	return err
}
