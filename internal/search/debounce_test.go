package search_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-talent-directory/internal/domain"
	"go-talent-directory/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quiet = 20 * time.Millisecond

func profilesNamed(names ...string) []domain.TalentProfile {
	out := make([]domain.TalentProfile, 0, len(names))
	for _, n := range names {
		out = append(out, domain.TalentProfile{UserFullName: n})
	}
	return out
}

// recordingSearcher counts calls and returns canned results per query.
type recordingSearcher struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]domain.TalentProfile
}

func (s *recordingSearcher) Search(ctx context.Context, query string) ([]domain.TalentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, query)
	return s.results[query], nil
}

func (s *recordingSearcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func waitSettled(t *testing.T, d *search.Debouncer) search.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap := d.Snapshot()
		if snap.State == search.StateSettled {
			return snap
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("debouncer never settled, state=%s", d.Snapshot().State)
	return search.Snapshot{}
}

func TestDebouncerCoalescesKeystrokes(t *testing.T) {
	searcher := &recordingSearcher{results: map[string][]domain.TalentProfile{
		"golang": profilesNamed("Ana Pertiwi"),
	}}
	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	for _, q := range []string{"g", "go", "gol", "gola", "golan", "golang"} {
		d.SetQuery(q)
		time.Sleep(quiet / 4) // faster than the quiet period
	}

	snap := waitSettled(t, d)
	assert.Equal(t, 1, searcher.callCount(), "only the final settled value may hit the network")
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "Ana Pertiwi", snap.Results[0].UserFullName)
	assert.Equal(t, "golang", snap.Query)
}

func TestDebouncerIgnoresStaleResponses(t *testing.T) {
	release := map[string]chan struct{}{
		"first":  make(chan struct{}),
		"second": make(chan struct{}),
	}
	searcher := search.SearchFunc(func(ctx context.Context, query string) ([]domain.TalentProfile, error) {
		<-release[query]
		return profilesNamed(query), nil
	})

	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	d.SetQuery("first")
	time.Sleep(2 * quiet) // let the first request go in flight

	d.SetQuery("second")
	time.Sleep(2 * quiet)

	// Deliver the responses out of order: second settles, then the stale
	// first response arrives and must be dropped.
	close(release["second"])
	snap := waitSettled(t, d)
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "second", snap.Results[0].UserFullName)

	close(release["first"])
	time.Sleep(2 * quiet)

	snap = d.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "second", snap.Results[0].UserFullName, "late first response must not clobber the newer result")
}

func TestDebouncerEmptyInputResetsToIdle(t *testing.T) {
	searcher := &recordingSearcher{results: map[string][]domain.TalentProfile{
		"ana": profilesNamed("Ana Pertiwi"),
	}}
	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	d.SetQuery("ana")
	waitSettled(t, d)

	d.SetQuery("   ")
	snap := d.Snapshot()
	assert.Equal(t, search.StateIdle, snap.State)
	assert.Empty(t, snap.Results)
	assert.NoError(t, snap.Err)
}

func TestDebouncerEmptyInputCancelsPendingTimer(t *testing.T) {
	searcher := &recordingSearcher{results: map[string][]domain.TalentProfile{}}
	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	d.SetQuery("abc")
	d.SetQuery("") // before the timer fires

	time.Sleep(3 * quiet)
	assert.Equal(t, 0, searcher.callCount())
	assert.Equal(t, search.StateIdle, d.Snapshot().State)
}

func TestDebouncerEmptyResultsAreSettledNotIdle(t *testing.T) {
	searcher := search.SearchFunc(func(ctx context.Context, query string) ([]domain.TalentProfile, error) {
		return []domain.TalentProfile{}, nil
	})
	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	d.SetQuery("nobody")
	snap := waitSettled(t, d)
	assert.Equal(t, search.StateSettled, snap.State)
	assert.Empty(t, snap.Results)
	assert.NoError(t, snap.Err)
}

func TestDebouncerErrorKeepsPreviousResults(t *testing.T) {
	boom := errors.New("backend down")
	searcher := search.SearchFunc(func(ctx context.Context, query string) ([]domain.TalentProfile, error) {
		if query == "bad" {
			return nil, boom
		}
		return profilesNamed("Ana Pertiwi"), nil
	})
	d := search.NewDebouncer(searcher, search.WithQuietPeriod(quiet))
	defer d.Close()

	d.SetQuery("good")
	waitSettled(t, d)

	d.SetQuery("bad")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := d.Snapshot(); snap.State == search.StateSettled && snap.Err != nil {
			require.Len(t, snap.Results, 1)
			assert.Equal(t, "Ana Pertiwi", snap.Results[0].UserFullName)
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("error state never observed")
}

func TestDebouncerNotifyObservesTransitions(t *testing.T) {
	var mu sync.Mutex
	var states []search.State

	searcher := search.SearchFunc(func(ctx context.Context, query string) ([]domain.TalentProfile, error) {
		return nil, nil
	})
	d := search.NewDebouncer(searcher,
		search.WithQuietPeriod(quiet),
		search.WithNotify(func(snap search.Snapshot) {
			mu.Lock()
			states = append(states, snap.State)
			mu.Unlock()
		}))
	defer d.Close()

	d.SetQuery("x")
	waitSettled(t, d)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []search.State{search.StatePending, search.StateLoading, search.StateSettled}, states)
}
