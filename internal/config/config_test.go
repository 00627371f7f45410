package config

import (
	"os"
	"path/filepath"
	"testing"

	"nmeafield/internal/nmea"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func requireErrEq(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("error=%q want %q", err.Error(), want)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "{}\n")
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Source != "gnss" {
		t.Fatalf("source=%q want gnss", cfg.Source)
	}
	if cfg.Output.Format != "pretty" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.NavSource() != nmea.SourceGNSS {
		t.Fatalf("nav source=%v want gnss", cfg.NavSource())
	}
}

func TestLoad_NormalizesCase(t *testing.T) {
	path := writeTempConfig(t, "source: ' GPS '\noutput:\n  format: JSON\n  color: Off\n")
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.NavSource() != nmea.SourceGPS {
		t.Fatalf("nav source=%v want gps", cfg.NavSource())
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" {
		t.Fatalf("unexpected output: %+v", cfg.Output)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{
			name:     "UnknownSource",
			contents: "source: loran\n",
			want:     `source "loran" is not a known navigation system`,
		},
		{
			name:     "UnknownFormat",
			contents: "output:\n  format: xml\n",
			want:     "output.format must be one of pretty|json|yaml",
		},
		{
			name:     "UnknownColor",
			contents: "output:\n  color: sometimes\n",
			want:     "output.color must be one of auto|on|off",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.contents)
			_, err := Load(path, false)
			requireErrEq(t, err, tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("optional Load() error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v want defaults", cfg)
	}

	if _, err := Load(path, false); err == nil {
		t.Fatalf("expected error for missing required config")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeTempConfig(t, "output: [\n")
	if _, err := Load(path, false); err == nil {
		t.Fatalf("expected yaml error")
	}
}
