package main

type BrowseCmd struct{}

func (c *BrowseCmd) Run(g *Globals) error {
	return g.Session.Browse(g.Ctx)
}
