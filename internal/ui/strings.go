package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return strings.TrimRight(string(runes[:limit-3]), " ") + "..."
}

// wrapLines splits value into at most maxLines lines of at most width runes,
// breaking on spaces. The last line is truncated when text remains.
func wrapLines(value string, width, maxLines int) []string {
	words := strings.Fields(value)
	if len(words) == 0 || width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var current []rune
	for i, w := range words {
		wr := []rune(w)
		switch {
		case len(current) == 0:
			current = wr
		case len(current)+1+len(wr) <= width:
			current = append(append(current, ' '), wr...)
		default:
			if len(lines) == maxLines-1 {
				rest := string(current) + " " + strings.Join(words[i:], " ")
				return append(lines, truncate(rest, width))
			}
			lines = append(lines, truncate(string(current), width))
			current = wr
		}
	}
	return append(lines, truncate(string(current), width))
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
