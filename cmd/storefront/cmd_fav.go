package main

import (
	"fmt"
	"strconv"
	"strings"
)

type FavCmd struct {
	ID int64 `arg:"" optional:"" help:"Product id to toggle"`
}

func (c *FavCmd) Run(g *Globals) error {
	favs := g.Session.Favorites
	if c.ID == 0 {
		if favs.Len() == 0 {
			_, err := fmt.Fprintln(g.Out, "No favorites")
			return err
		}
		ids := make([]string, 0, favs.Len())
		for _, id := range favs.Set() {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		_, err := fmt.Fprintln(g.Out, strings.Join(ids, "\n"))
		return err
	}

	id := c.ID
	if favs.Toggle(id).IsFavorite(id) {
		_, err := fmt.Fprintf(g.Out, "Added %d to favorites\n", id)
		return err
	}
	_, err := fmt.Fprintf(g.Out, "Removed %d from favorites\n", id)
	return err
}
