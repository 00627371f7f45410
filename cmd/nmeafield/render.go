package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"nmeafield/internal/nmea"
)

type renderer struct {
	format string
	color  bool
}

func (r renderer) render(w io.Writer, rec any) error {
	switch r.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.pretty(w, rec)
	}
}

func (r renderer) pretty(w io.Writer, rec any) error {
	switch v := rec.(type) {
	case *nmea.TXT:
		sev := r.severityColor(v.Type)
		_, err := fmt.Fprintf(w, "TXT %s %d/%d %s: %s\n",
			v.Source, v.Number, v.Sentences, sev.Sprint(v.Type), v.Text)
		return err
	case *nmea.ZDA:
		line := fmt.Sprintf("ZDA %s %s", v.Source, v.DateTime.UTC().Format(time.RFC3339Nano))
		if _, ok := v.Offset(); ok {
			line += " local=" + v.Local().Format(time.RFC3339Nano)
		}
		_, err := fmt.Fprintln(w, line)
		return err
	default:
		return fmt.Errorf("no pretty renderer for %T", rec)
	}
}

func (r renderer) severityColor(t nmea.MessageType) *color.Color {
	var c *color.Color
	switch t {
	case nmea.MessageError:
		c = color.New(color.FgRed, color.Bold)
	case nmea.MessageWarning:
		c = color.New(color.FgYellow)
	case nmea.MessageNotice:
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgWhite)
	}
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// colorEnabled resolves the auto|on|off setting against w.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	fd, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isTerminal(fd.Fd())
}
