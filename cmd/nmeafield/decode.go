package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nmeafield/internal/nmea"
)

// fieldsFromArgs joins args with the field delimiter so that
// "txt 2,1,02,hi" and "txt 2 1 02 hi" decode the same way. No arguments
// means an exhausted cursor.
func fieldsFromArgs(args []string) nmea.Fields {
	if len(args) == 0 {
		return nmea.Fields{}
	}
	return nmea.NewFields(strings.Join(args, string(nmea.Delimiter)))
}

func newTXTCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "txt <fields>",
		Short:   "Decode a TXT (text transmission) sentence body",
		Example: "  nmeafield txt 01,01,02,u-blox AG - www.u-blox.com",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, "TXT", args, func(src nmea.Source, f *nmea.Fields) (any, error) {
				rec, err := nmea.ParseTXT(src, f)
				if rec == nil {
					return nil, err
				}
				return rec, err
			})
		},
	}
}

func newZDACmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "zda <fields>",
		Short:   "Decode a ZDA (time and date) sentence body",
		Example: "  nmeafield zda 123519,13,04,2024,-5,30",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, "ZDA", args, func(src nmea.Source, f *nmea.Fields) (any, error) {
				rec, err := nmea.ParseZDA(src, f)
				if rec == nil {
					return nil, err
				}
				return rec, err
			})
		},
	}
}

type decodeFunc func(src nmea.Source, f *nmea.Fields) (any, error)

func runDecode(cmd *cobra.Command, opts *rootOptions, kind string, args []string, decode decodeFunc) error {
	cfg, logger, err := opts.load(cmd)
	if err != nil {
		return err
	}

	body := strings.Join(args, string(nmea.Delimiter))
	fields := fieldsFromArgs(args)
	rec, err := decode(cfg.NavSource(), &fields)
	if err != nil {
		logger.Error("decode failed", "kind", kind, "body", body, "err", err)
		return fmt.Errorf("%s: %w", strings.ToLower(kind), err)
	}
	if rec == nil {
		logger.Info("incomplete sentence, nothing to record", "kind", kind, "body", body)
		return nil
	}
	logger.Debug("decoded", "kind", kind, "body", body)

	r := renderer{
		format: cfg.Output.Format,
		color:  colorEnabled(cfg.Output.Color, cmd.OutOrStdout()),
	}
	return r.render(cmd.OutOrStdout(), rec)
}
