package logging

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Tail returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Tail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "open log")
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "read log")
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read log")
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// LineStyles colours the parts of a formatted log line.
type LineStyles struct {
	Time   lipgloss.Style
	Logger lipgloss.Style
	Field  lipgloss.Style
	Levels map[string]lipgloss.Style
}

// PlainStyles renders without colour.
func PlainStyles() LineStyles {
	return LineStyles{}
}

// DefaultStyles colours levels the usual way: info green, warn yellow, error
// red, debug cyan.
func DefaultStyles() LineStyles {
	return LineStyles{
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Logger: lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		Field:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Levels: map[string]lipgloss.Style{
			"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
			"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
			"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			"error": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
	}
}

// FormatLine turns one JSON log line into
// "2026-01-02T15:04:05.000Z INFO [fetcher] Catalog fetched products=20".
// Lines that are not JSON objects are returned unchanged.
func FormatLine(line string, styles LineStyles) string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return line
	}

	var (
		ts, level, name, msg string
		fields               []string
	)
	err := jx.DecodeStr(trimmed).ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "ts":
			return readString(d, &ts)
		case "level":
			return readString(d, &level)
		case "logger":
			return readString(d, &name)
		case "msg":
			return readString(d, &msg)
		case "caller", "stacktrace":
			return d.Skip()
		default:
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			fields = append(fields, string(key)+"="+raw.String())
			return nil
		}
	})
	if err != nil {
		return line
	}

	parts := make([]string, 0, 4+len(fields))
	if ts != "" {
		parts = append(parts, styles.Time.Render(ts))
	}
	if level != "" {
		style, ok := styles.Levels[strings.ToLower(level)]
		if !ok {
			style = lipgloss.NewStyle()
		}
		parts = append(parts, style.Render(strings.ToUpper(level)))
	}
	if name != "" {
		parts = append(parts, styles.Logger.Render("["+name+"]"))
	}
	parts = append(parts, msg)
	for _, f := range fields {
		parts = append(parts, styles.Field.Render(f))
	}
	return strings.Join(parts, " ")
}

// FormatLines applies FormatLine to every line.
func FormatLines(lines []string, styles LineStyles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line, styles)
	}
	return out
}

func readString(d *jx.Decoder, dst *string) error {
	if d.Next() != jx.String {
		return d.Skip()
	}
	s, err := d.Str()
	if err != nil {
		return err
	}
	*dst = s
	return nil
}
