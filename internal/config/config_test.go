package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/fakestore"
	"github.com/five82/storefront/internal/paths"
	"github.com/five82/storefront/internal/prefs"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != fakestore.DefaultBaseURL {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, fakestore.DefaultBaseURL)
	}

	wantStorage, err := paths.Expand(prefs.DefaultPath())
	if err != nil {
		t.Fatalf("paths.Expand(prefs.DefaultPath()) returned error: %v", err)
	}
	if cfg.StoragePath != wantStorage {
		t.Fatalf("StoragePath = %q, want %q", cfg.StoragePath, wantStorage)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout = %v, want 15s", cfg.RequestTimeout)
	}
	if cfg.Currency != catalog.CurrencyINR || !cfg.INRRate.Equal(catalog.DefaultINRRate) {
		t.Fatalf("currency = %s rate = %s, want INR at 83", cfg.Currency, cfg.INRRate)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "  http://localhost:3000  "
storage_path = "  ~/.storefront/state.toml  "
log_file = "~/logs/sf.log"
log_level = "debug"
request_timeout = "3s"
currency = "usd"
inr_rate = "82.5"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIURL != "http://localhost:3000" {
		t.Fatalf("APIURL = %q, want %q", cfg.APIURL, "http://localhost:3000")
	}
	if cfg.StoragePath != filepath.Join(home, ".storefront", "state.toml") {
		t.Fatalf("StoragePath = %q, want it under HOME %q", cfg.StoragePath, home)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "sf.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.Currency != catalog.CurrencyUSD {
		t.Fatalf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.INRRate.String() != "82.5" {
		t.Fatalf("INRRate = %s, want 82.5", cfg.INRRate)
	}
}

func TestLoad_NumericRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("inr_rate = 90\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.INRRate.String() != "90" {
		t.Fatalf("INRRate = %s, want 90", cfg.INRRate)
	}
}

func TestLoad_LogFileCanBeDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_file = "off"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_url = "   "
storage_path = ""
currency = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.APIURL != want.APIURL || cfg.StoragePath != want.StoragePath || cfg.Currency != want.Currency {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := map[string]struct {
		content string
		mention string
	}{
		"toml":     {`api_url = [`, "parse config"},
		"level":    {`log_level = "loud"`, "parse log_level"},
		"timeout":  {`request_timeout = "soon"`, "parse request_timeout"},
		"negative": {`request_timeout = "-1s"`, "request_timeout must be positive"},
		"currency": {`currency = "EUR"`, "parse currency"},
		"rate":     {`inr_rate = "abc"`, "parse inr_rate"},
		"zero":     {`inr_rate = 0`, "parse inr_rate"},
		"bool":     {`inr_rate = true`, "parse inr_rate"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.mention)
			}
		})
	}
}

func TestApply_OverridesFileValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Apply(Overrides{
		APIURL:      "http://mirror.local",
		StoragePath: "~/alt.toml",
		LogFile:     "-",
		Debug:       true,
	})
	if cfg.APIURL != "http://mirror.local" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.StoragePath != filepath.Join(home, "alt.toml") {
		t.Fatalf("StoragePath = %q", cfg.StoragePath)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want disabled", cfg.LogFile)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}

	before := cfg
	cfg.Apply(Overrides{})
	if cfg.APIURL != before.APIURL || cfg.StoragePath != before.StoragePath {
		t.Fatalf("empty overrides changed config")
	}
}

func TestPriceFormatter_UsesCurrency(t *testing.T) {
	cfg := Default()
	cfg.Currency = catalog.CurrencyUSD
	if got := cfg.PriceFormatter().Currency; got != catalog.CurrencyUSD {
		t.Fatalf("formatter currency = %q, want USD", got)
	}
}
