// Package search turns a stream of keystrokes into a controlled stream of
// backend queries. A quiet-period timer coalesces rapid input and a monotonic
// sequence number guarantees only the latest request can touch the visible
// result set, however late earlier responses arrive.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/logger"
)

// DefaultQuietPeriod is the pause-in-typing duration before a query fires.
const DefaultQuietPeriod = 350 * time.Millisecond

// State of the debouncer as observed through Snapshot.
type State int

const (
	// StateIdle means the query is empty and nothing is displayed.
	StateIdle State = iota
	// StatePending means input arrived and the quiet-period timer is running.
	StatePending
	// StateLoading means a request is in flight.
	StateLoading
	// StateSettled means the latest request completed (with results or error).
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateLoading:
		return "loading"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Searcher executes one search query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.TalentProfile, error)
}

// SearchFunc adapts a plain function to the Searcher interface.
type SearchFunc func(ctx context.Context, query string) ([]domain.TalentProfile, error)

func (f SearchFunc) Search(ctx context.Context, query string) ([]domain.TalentProfile, error) {
	return f(ctx, query)
}

// Snapshot is a point-in-time copy of the observable state. Results stay
// populated through a Settled error so the previous result set remains on
// screen with an error flag next to it.
type Snapshot struct {
	State   State
	Query   string
	Results []domain.TalentProfile
	Err     error
}

// Debouncer serializes keystrokes into at most one query per quiet period.
// Safe for concurrent use.
type Debouncer struct {
	searcher Searcher
	quiet    time.Duration
	notify   func(Snapshot)

	mu      sync.Mutex
	seq     uint64
	timer   *time.Timer
	state   State
	query   string
	results []domain.TalentProfile
	err     error
	closed  bool
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithQuietPeriod overrides the default debounce window.
func WithQuietPeriod(d time.Duration) Option {
	return func(db *Debouncer) { db.quiet = d }
}

// WithNotify registers a callback invoked (without the lock held) after every
// observable state change.
func WithNotify(fn func(Snapshot)) Option {
	return func(db *Debouncer) { db.notify = fn }
}

func NewDebouncer(searcher Searcher, opts ...Option) *Debouncer {
	d := &Debouncer{
		searcher: searcher,
		quiet:    DefaultQuietPeriod,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetQuery feeds one input change. Empty (after trimming) input cancels any
// pending timer, invalidates in-flight requests and resets to Idle.
func (d *Debouncer) SetQuery(query string) {
	query = strings.TrimSpace(query)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	// Every input change supersedes whatever was pending or in flight.
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if query == "" {
		d.state = StateIdle
		d.query = ""
		d.results = nil
		d.err = nil
		snap := d.snapshotLocked()
		d.mu.Unlock()
		d.emit(snap)
		return
	}

	d.state = StatePending
	d.query = query
	seq := d.seq
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(seq, query) })
	snap := d.snapshotLocked()
	d.mu.Unlock()
	d.emit(snap)
}

// fire runs when the quiet-period timer elapses without being superseded.
func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	if d.closed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.state = StateLoading
	snap := d.snapshotLocked()
	d.mu.Unlock()
	d.emit(snap)

	results, err := d.searcher.Search(context.Background(), query)

	d.mu.Lock()
	// A newer keystroke may have arrived while the request was in flight;
	// its sequence number wins and this response is discarded silently.
	if d.closed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.state = StateSettled
	if err != nil {
		logger.Log.Warn("search request failed", "query", query, "error", err)
		d.err = err
	} else {
		d.results = results
		d.err = nil
	}
	snap = d.snapshotLocked()
	d.mu.Unlock()
	d.emit(snap)
}

// Snapshot returns a copy of the current observable state.
func (d *Debouncer) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

func (d *Debouncer) snapshotLocked() Snapshot {
	results := make([]domain.TalentProfile, len(d.results))
	copy(results, d.results)
	return Snapshot{
		State:   d.state,
		Query:   d.query,
		Results: results,
		Err:     d.err,
	}
}

// Close stops the timer and invalidates any in-flight request.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) emit(snap Snapshot) {
	if d.notify != nil {
		d.notify(snap)
	}
}
