package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"nmeafield/internal/config"
)

const defaultConfigPath = "./nmeafield.yaml"

type rootOptions struct {
	configPath string
	source     string
	format     string
	color      string
	verbose    bool
}

// newRootCmd builds the command tree. stdout receives decoded records,
// stderr receives logs.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "nmeafield",
		Short:         "Decode NMEA-0183 sentence fields into typed records",
		Long:          "nmeafield decodes the data fields of one NMEA-0183 sentence body (everything after the\nsentence identifier, without checksum) and prints the resulting record.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", defaultConfigPath, "path to YAML config")
	pf.StringVar(&opts.source, "source", "", "navigation system stamped on records (gps|glonass|galileo|beidou|qzss|navic|gnss)")
	pf.StringVar(&opts.format, "format", "", "output format (pretty|json|yaml)")
	pf.StringVar(&opts.color, "color", "", "colorize pretty output (auto|on|off)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug detail to stderr")

	root.AddCommand(newTXTCmd(opts), newZDACmd(opts))
	return root
}

// load resolves the effective configuration: file first, then flags.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	optional := !cmd.Flags().Changed("config")
	cfg, err := config.Load(o.configPath, optional)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config load failed: %w", err)
	}
	if v := strings.ToLower(strings.TrimSpace(o.source)); v != "" {
		cfg.Source = v
	}
	if v := strings.ToLower(strings.TrimSpace(o.format)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.ToLower(strings.TrimSpace(o.color)); v != "" {
		cfg.Output.Color = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	logger.Debug("config resolved", "path", o.configPath, "source", cfg.Source, "format", cfg.Output.Format, "color", cfg.Output.Color)
	return cfg, logger, nil
}
