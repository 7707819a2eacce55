package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aaroncarlucci/amount"
	"github.com/aaroncarlucci/amount/display"
	"github.com/aaroncarlucci/amount/internal/config"
	"github.com/aaroncarlucci/amount/internal/log"
)

type options struct {
	configPath  string
	unit        string
	sat         bool
	unconfirmed bool
	size        string
	plain       bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "amountfmt [amount...]",
		Short: "Format bitcoin amounts with grouped digits",
		Long: `Format bitcoin amounts for display.

The integer and fractional digits of each amount are separated into groups
of three, and the fractional part is padded to the precision of the unit:

  amountfmt 1000.1            1 000.10 000 000 BTC
  amountfmt --sat 150000      0.00 150 000 BTC
  amountfmt -u mBTC 1.5       1.50 000 mBTC

Defaults are read from $XDG_CONFIG_HOME/amountfmt/config.yaml when present.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file")
	flags.StringVarP(&opts.unit, "unit", "u", "", "unit of inputs and output: BTC, mBTC, bits or sat")
	flags.BoolVar(&opts.sat, "sat", false, "read inputs as satoshis")
	flags.BoolVar(&opts.unconfirmed, "unconfirmed", false, "do not emphasize the integer part")
	flags.StringVar(&opts.size, "size", "", "text size: p2, p1, h4, h3, h2 or h1")
	flags.BoolVar(&opts.plain, "plain", false, "disable colors and emphasis")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to standard error")

	return cmd
}

// apply overrides the configuration with the flags set on the command line.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("unit") {
		u, err := amount.ParseUnit(o.unit)
		if err != nil {
			return fmt.Errorf("--unit: %w", err)
		}
		cfg.Unit = u
	}
	if flags.Changed("size") {
		s, err := display.ParseSize(o.size)
		if err != nil {
			return fmt.Errorf("--size: %w", err)
		}
		cfg.Size = config.Size(s)
	}
	if flags.Changed("unconfirmed") {
		cfg.Unconfirmed = o.unconfirmed
	}
	if flags.Changed("plain") {
		cfg.Plain = o.plain
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.debug && !log.IsEnabled() {
		log.Enable(cmd.ErrOrStderr())
		log.SetLevel(slog.LevelDebug)
		defer log.Disable()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, &cfg); err != nil {
		return err
	}
	ctx := cmd.Context()
	log.DebugContext(ctx, "configuration loaded",
		"unit", cfg.Unit,
		"size", cfg.Size.Size(),
		"unconfirmed", cfg.Unconfirmed,
		"plain", cfg.Plain,
	)

	inputUnit := cfg.Unit
	if opts.sat {
		inputUnit = amount.SAT
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readInputs(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read standard input: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	r := display.NewRenderer(out)
	if cfg.Plain || !isTerminal(out) {
		r.SetColorProfile(termenv.Ascii)
	}

	var errs []error
	for _, s := range inputs {
		l := log.With("input", s)
		a, err := amount.ParseAmountIn(s, inputUnit)
		if err != nil {
			l.Warn("skipping input", "error", err)
			errs = append(errs, err)
			continue
		}
		row := display.AmountIn(a, cfg.Unit, cfg.Size.Size(), !cfg.Unconfirmed)
		l.Debug("formatted", "sat", a.Sat())
		if _, err := fmt.Fprintln(out, r.Render(row)); err != nil {
			return err
		}
	}
	log.Info("done", "formatted", len(inputs)-len(errs), "failed", len(errs))
	if len(errs) > 0 {
		err := errors.Join(errs...)
		log.ErrorContext(ctx, "some inputs were not formatted", "error", err)
		return err
	}
	return nil
}

// readInputs returns the non-blank lines of r, trimmed.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}
