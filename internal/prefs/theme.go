package prefs

import (
	"strings"

	"go.uber.org/zap"
)

// ThemeKey is the storage entry holding the theme token.
const ThemeKey = "theme"

// ThemeMode is the persisted light/dark flag.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode accepts "light" or "dark", case-insensitively.
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Theme is the persisted theme flag.
type Theme struct {
	storage Storage
	logger  *zap.Logger
	mode    ThemeMode
}

// LoadTheme resolves the starting theme: the saved token if valid, otherwise
// detect() (the host's preference), otherwise light.
func LoadTheme(storage Storage, detect func() bool, logger *zap.Logger) *Theme {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Theme{storage: storage, logger: logger, mode: ThemeLight}
	if storage != nil {
		if raw, ok := storage.Get(ThemeKey); ok {
			if mode, ok := ParseThemeMode(raw); ok {
				t.mode = mode
				return t
			}
			logger.Debug("Ignoring malformed theme", zap.String("raw", raw))
		}
	}
	if detect != nil && detect() {
		t.mode = ThemeDark
	}
	return t
}

// Mode returns the current theme.
func (t *Theme) Mode() ThemeMode { return t.mode }

// Dark reports whether the dark theme is active.
func (t *Theme) Dark() bool { return t.mode == ThemeDark }

// Toggle flips the theme and persists it.
func (t *Theme) Toggle() ThemeMode {
	if t.mode == ThemeDark {
		t.Set(ThemeLight)
	} else {
		t.Set(ThemeDark)
	}
	return t.mode
}

// Set selects mode and persists it. A failed write is logged.
func (t *Theme) Set(mode ThemeMode) {
	t.mode = mode
	if t.storage == nil {
		return
	}
	if err := t.storage.Set(ThemeKey, string(mode)); err != nil {
		t.logger.Warn("Failed to persist theme", zap.String("theme", string(mode)), zap.Error(err))
	}
}
