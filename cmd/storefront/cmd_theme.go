package main

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/five82/storefront/internal/prefs"
)

type ThemeCmd struct {
	Mode string `arg:"" optional:"" help:"light, dark or toggle"`
}

func (c *ThemeCmd) Run(g *Globals) error {
	theme := g.Session.Theme
	switch c.Mode {
	case "":
	case "toggle":
		theme.Toggle()
	default:
		mode, ok := prefs.ParseThemeMode(c.Mode)
		if !ok {
			return errors.Errorf("unknown theme %q", c.Mode)
		}
		theme.Set(mode)
	}
	_, err := fmt.Fprintf(g.Out, "Theme: %s\n", theme.Mode())
	return err
}
