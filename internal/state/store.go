package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/five82/storefront/internal/catalog"
)

// Status is the view status of a browsing session.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Status              Status
	Catalog             catalog.Catalog
	LastError           error
	LastUpdated         time.Time
	Attempts            int  // fetch attempts started this session
	InFlight            bool // a fetch has begun and not yet settled
	ConsecutiveFailures int
}

// ErrorMessage returns the failure message verbatim, or "" outside StatusError.
func (s Snapshot) ErrorMessage() string {
	if s.Status != StatusError || s.LastError == nil {
		return ""
	}
	return s.LastError.Error()
}

// Store coordinates the loading → success | error transitions. The zero value
// is ready to use and starts in StatusLoading.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin enters StatusLoading for a new fetch attempt. It reports false, and
// changes nothing, while another attempt is still in flight.
func (s *Store) Begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.InFlight {
		return false
	}
	s.snapshot.Status = StatusLoading
	s.snapshot.LastError = nil
	s.snapshot.InFlight = true
	s.snapshot.Attempts++
	return true
}

// Resolve records a successful fetch. An empty catalog is still a success.
func (s *Store) Resolve(c catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = StatusSuccess
	s.snapshot.Catalog = cloneCatalog(c)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.InFlight = false
	s.snapshot.ConsecutiveFailures = 0
}

// Fail records a failed fetch. The state stays StatusError until the next
// Begin.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		err = errors.New("unknown error")
	}
	s.snapshot.Status = StatusError
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.InFlight = false
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = cloneCatalog(s.snapshot.Catalog)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneCatalog(c catalog.Catalog) catalog.Catalog {
	if c == nil {
		return nil
	}
	return slices.Clone(c)
}
