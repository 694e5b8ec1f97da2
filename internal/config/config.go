package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/fakestore"
	"github.com/five82/storefront/internal/paths"
	"github.com/five82/storefront/internal/prefs"
)

// Config holds the resolved storefront settings.
type Config struct {
	APIURL         string
	StoragePath    string
	LogFile        string // empty disables file logging
	LogLevel       zapcore.Level
	RequestTimeout time.Duration
	Currency       catalog.Currency
	INRRate        decimal.Decimal
}

const (
	defaultConfigPath = "~/.config/storefront/config.toml"
	defaultLogFile    = "~/.local/state/storefront/storefront.log"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		APIURL:         fakestore.DefaultBaseURL,
		StoragePath:    paths.MustExpand(prefs.DefaultPath()),
		LogFile:        paths.MustExpand(defaultLogFile),
		LogLevel:       zapcore.InfoLevel,
		RequestTimeout: fakestore.DefaultRequestTimeout,
		Currency:       catalog.CurrencyINR,
		INRRate:        catalog.DefaultINRRate,
	}
}

type rawConfig struct {
	APIURL         string `toml:"api_url"`
	StoragePath    string `toml:"storage_path"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	RequestTimeout string `toml:"request_timeout"`
	Currency       string `toml:"currency"`
	INRRate        any    `toml:"inr_rate"`
}

// Load parses the config file at path, falling back to defaults when missing.
// An empty path means DefaultPath.
func Load(path string) (Config, error) {
	resolved, err := paths.ExpandOr(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(err, "open config")
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.StoragePath); v != "" {
		cfg.StoragePath = paths.MustExpand(v)
	}
	switch v := strings.TrimSpace(raw.LogFile); v {
	case "":
	case "-", "off", "none":
		cfg.LogFile = ""
	default:
		cfg.LogFile = paths.MustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse log_level")
		}
		cfg.LogLevel = level
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse request_timeout")
		}
		if d <= 0 {
			return Config{}, errors.Errorf("request_timeout must be positive, got %s", v)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.Currency); v != "" {
		cur, err := parseCurrency(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Currency = cur
	}
	if raw.INRRate != nil {
		rate, err := parseRate(raw.INRRate)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse inr_rate")
		}
		cfg.INRRate = rate
	}

	return cfg, nil
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	APIURL      string
	StoragePath string
	LogFile     string
	Debug       bool
}

// Apply copies every non-empty override into c.
func (c *Config) Apply(o Overrides) {
	if v := strings.TrimSpace(o.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(o.StoragePath); v != "" {
		c.StoragePath = paths.MustExpand(v)
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		if v == "-" {
			c.LogFile = ""
		} else {
			c.LogFile = paths.MustExpand(v)
		}
	}
	if o.Debug {
		c.LogLevel = zapcore.DebugLevel
	}
}

// PriceFormatter returns the formatter for the configured currency.
func (c Config) PriceFormatter() catalog.PriceFormatter {
	return catalog.NewPriceFormatter(c.Currency, c.INRRate)
}

func parseCurrency(v string) (catalog.Currency, error) {
	switch cur := catalog.Currency(strings.ToUpper(v)); cur {
	case catalog.CurrencyINR, catalog.CurrencyUSD:
		return cur, nil
	default:
		return "", errors.Errorf("parse currency: unsupported %q (want INR or USD)", v)
	}
}

func parseRate(v any) (decimal.Decimal, error) {
	var rate decimal.Decimal
	switch n := v.(type) {
	case int64:
		rate = decimal.NewFromInt(n)
	case float64:
		rate = decimal.NewFromFloat(n)
	case string:
		var err error
		if rate, err = decimal.NewFromString(strings.TrimSpace(n)); err != nil {
			return decimal.Decimal{}, err
		}
	default:
		return decimal.Decimal{}, errors.Errorf("unsupported type %T", v)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, errors.Errorf("must be positive, got %s", rate)
	}
	return rate, nil
}
