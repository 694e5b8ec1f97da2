package main

import (
	"context"
	"io"

	"github.com/five82/storefront/internal/app"
)

// Globals are bound into every command's Run.
type Globals struct {
	Ctx     context.Context
	Session *app.Session
	Out     io.Writer
}
