package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/c2nes/shorthand"
	"github.com/c2nes/shorthand/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// clock is read once per command so every expression in a run shares the
// same "now".
var clock shorthand.Clock = shorthand.SystemClock

type globalFlags struct {
	configPath string
	tz         string
	format     string
	json       bool
	noColor    bool
	debug      bool
}

// Execute runs the shorthand command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	var until bool

	cmd := &cobra.Command{
		Use:   "shorthand [expression...]",
		Short: "Resolve shorthand datetime expressions such as now-6d/d",
		Long: `Resolve a shorthand datetime expression to an absolute time.

An expression is "now", an optional offset (+1d, -6h, -2W, +1M, -1Y), an
optional rounding directive (/d, /W, /M, /Y) and an optional quoted timezone:

  shorthand now-6d/d
  shorthand -- -1M/M "'Europe/Paris'"

Put "--" before expressions that start with "-". With no expression the
current time is printed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, &flags)
			if err != nil {
				return err
			}
			now := clock.Now()

			s := strings.Join(args, " ")
			if s == "" {
				s = "now"
			}
			input, err := env.resolve(now, s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if until {
				fmt.Fprintln(out, input.Sub(now))
				return nil
			}
			result := newResult(s, input, env.format)
			if env.json {
				return writeJSON(out, result)
			}
			writeText(out, result)
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $SHORTHAND_HOME/config.yaml)")
	pf.StringVar(&flags.tz, "tz", "", "timezone for \"now\"; overrides a quoted zone in the expression")
	pf.StringVar(&flags.format, "format", "", "output layout (default "+config.DefaultFormat+")")
	pf.BoolVar(&flags.json, "json", false, "output in JSON")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")
	pf.BoolVar(&flags.debug, "debug", false, "log tokenized expressions")
	cmd.Flags().BoolVar(&until, "until", false, "print time until (or since) the resolved time")

	cmd.AddCommand(newScanCmd(&flags))
	cmd.AddCommand(newConfigCmd(&flags))
	return cmd
}

// env is the merged result of the config file and command line flags.
type env struct {
	tz     string
	format string
	json   bool
	loc    *time.Location
	logger *slog.Logger
}

func setup(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	e := &env{tz: flags.tz, format: cfg.Format, json: cfg.JSON || flags.json}
	if flags.format != "" {
		e.format = flags.format
	}
	if flags.noColor || cfg.NoColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if flags.debug {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if cfg.Timezone != "" {
		e.loc, err = shorthand.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("config timezone: %w", err)
		}
	}
	return e, nil
}

// parser returns a parser pinned to now.
func (e *env) parser(now time.Time) *shorthand.Parser {
	opts := []shorthand.Option{
		shorthand.WithClock(shorthand.FixedClock(now)),
		shorthand.WithLogger(e.logger),
	}
	if e.loc != nil {
		opts = append(opts, shorthand.WithLocation(e.loc))
	}
	return shorthand.New(opts...)
}

func (e *env) resolve(now time.Time, s string) (time.Time, error) {
	t, ok, err := e.parser(now).ParseIn(s, e.tz)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, fmt.Errorf("not a shorthand expression: %q", s)
	}
	return t, nil
}
