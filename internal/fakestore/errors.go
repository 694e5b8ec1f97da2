package fakestore

import (
	"fmt"

	"github.com/go-faster/errors"
)

const (
	msgFetchProducts  = "Failed to fetch products"
	msgDecodeProducts = "Failed to decode products"
	msgFetchProduct   = "Failed to fetch product"
)

// ErrNotFound marks a product id the source does not know.
var ErrNotFound = errors.New("product not found")

// FetchError is the only failure surfaced to users. Message is shown verbatim.
type FetchError struct {
	Message    string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

// Detail describes the underlying cause for logs.
func (e *FetchError) Detail() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

func newFetchError(msg string, cause error) *FetchError {
	fe := &FetchError{Message: msg, Err: cause}
	if se, ok := errors.Into[*StatusError](cause); ok {
		fe.StatusCode = se.StatusCode
		if se.StatusCode == 404 {
			fe.Err = errors.Wrap(ErrNotFound, se.Error())
		}
	}
	return fe
}
