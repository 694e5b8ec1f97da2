package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"github.com/five82/storefront/internal/logging"
)

type LogsCmd struct {
	Lines int  `short:"n" default:"50" help:"Number of lines to show (0 for all)"`
	Raw   bool `help:"Print the JSON lines unformatted"`
}

func (c *LogsCmd) Run(g *Globals) error {
	path := g.Session.Config.LogFile
	if path == "" {
		_, err := fmt.Fprintln(g.Out, "Logging is disabled")
		return err
	}
	lines, err := logging.Tail(path, c.Lines)
	if err != nil {
		return err
	}
	if !c.Raw {
		lines = logging.FormatLines(lines, logStyles(g.Out))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(g.Out, line); err != nil {
			return err
		}
	}
	return nil
}

// logStyles colours only when w is a terminal.
func logStyles(w io.Writer) logging.LineStyles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return logging.DefaultStyles()
	}
	return logging.PlainStyles()
}
