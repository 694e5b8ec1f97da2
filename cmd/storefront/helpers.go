package main

import (
	"strings"

	"github.com/five82/storefront/internal/catalog"
)

func ratingText(r *catalog.Rating) string {
	if r == nil {
		return "-"
	}
	return r.String()
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n-3]), " ") + "..."
}
