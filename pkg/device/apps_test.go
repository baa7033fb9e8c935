package device

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister returns its responses in order, repeating the last one.
type fakeLister struct {
	mu        sync.Mutex
	responses [][]App
	errs      []error
	calls     int
}

func (f *fakeLister) Apps(ctx context.Context) ([]App, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if len(f.responses) == 0 {
		return nil, nil
	}
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i], nil
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func seeded(t *testing.T, lister *fakeLister, apps []App) *AppResolver {
	t.Helper()
	r := NewAppResolver(lister)
	snapshot := apps
	r.apps.Store(&snapshot)
	return r
}

func TestResolve_NoMatchFetchesTwice(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{{ID: "1", Name: "Hulu"}}}}
	r := NewAppResolver(lister)

	app, ok, err := r.Resolve(context.Background(), "Netflix")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, App{}, app)
	assert.Equal(t, 2, lister.callCount())
}

func TestResolve_EmptyDeviceFetchesTwice(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{}}}
	r := NewAppResolver(lister)

	_, ok, err := r.Resolve(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, lister.callCount())
}

func TestResolve_CachedHitDoesNotFetch(t *testing.T) {
	lister := &fakeLister{}
	r := seeded(t, lister, []App{
		{ID: "12", Name: "Netflix"},
		{ID: "13", Name: "YouTube"},
	})

	app, ok, err := r.Resolve(context.Background(), "youtube")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, App{ID: "13", Name: "YouTube"}, app)
	assert.Zero(t, lister.callCount())
}

func TestResolve_FirstFetchByNumericID(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{{ID: "1", Name: "Hulu"}}}}
	r := NewAppResolver(lister)

	app, ok, err := r.Resolve(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, App{ID: "1", Name: "Hulu"}, app)
	assert.Equal(t, 1, lister.callCount())
}

func TestResolve_MissThenRefreshFindsNewApp(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{
		{ID: "12", Name: "Netflix"},
		{ID: "99", Name: "Plex"},
	}}}
	r := seeded(t, lister, []App{{ID: "12", Name: "Netflix"}})

	app, ok, err := r.Resolve(context.Background(), "plex")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "99", app.ID)
	assert.Equal(t, 1, lister.callCount())

	cached, populated := r.Cached()
	assert.True(t, populated)
	assert.Len(t, cached, 2)
}

func TestResolve_CaseInsensitiveName(t *testing.T) {
	r := seeded(t, &fakeLister{}, []App{{ID: "12", Name: "NETFLIX"}})

	app, ok, err := r.Resolve(context.Background(), "Netflix")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12", app.ID)
}

func TestResolve_AmbiguousNames(t *testing.T) {
	r := seeded(t, &fakeLister{}, []App{
		{ID: "1", Name: "Prime Video"},
		{ID: "2", Name: "prime video"},
		{ID: "3", Name: "PRIME VIDEO"},
	})

	_, ok, err := r.Resolve(context.Background(), "Prime Video")
	assert.False(t, ok)

	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "Prime Video", ambiguous.Token)
	assert.Equal(t, 3, ambiguous.Count)
}

func TestResolve_IDAndNameCollisionIsAmbiguous(t *testing.T) {
	r := seeded(t, &fakeLister{}, []App{
		{ID: "2213", Name: "Roku Media Player"},
		{ID: "77", Name: "2213"},
	})

	_, ok, err := r.Resolve(context.Background(), "2213")
	assert.False(t, ok)

	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, 2, ambiguous.Count)
}

func TestResolve_AmbiguousAfterRefresh(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{
		{ID: "5", Name: "Pluto TV"},
		{ID: "6", Name: "pluto tv"},
	}}}
	r := seeded(t, lister, []App{{ID: "12", Name: "Netflix"}})

	_, _, err := r.Resolve(context.Background(), "Pluto TV")

	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, 2, ambiguous.Count)
	assert.Equal(t, 1, lister.callCount())
}

func TestResolve_RefreshFailureKeepsStaleCache(t *testing.T) {
	transportErr := errors.New("dial tcp 192.168.1.12:8060: connect: no route to host")
	lister := &fakeLister{errs: []error{transportErr}}
	stale := []App{{ID: "12", Name: "Netflix"}}
	r := seeded(t, lister, stale)

	_, ok, err := r.Resolve(context.Background(), "Plex")
	assert.False(t, ok)
	assert.Same(t, transportErr, err)
	assert.Equal(t, 1, lister.callCount())

	cached, populated := r.Cached()
	require.True(t, populated)
	assert.Equal(t, stale, cached)

	// The stale cache still serves hits without another fetch.
	app, ok, err := r.Resolve(context.Background(), "netflix")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "12", app.ID)
	assert.Equal(t, 1, lister.callCount())
}

func TestResolve_InitialFetchFailureLeavesCacheEmpty(t *testing.T) {
	transportErr := errors.New("connection refused")
	lister := &fakeLister{errs: []error{transportErr}}
	r := NewAppResolver(lister)

	_, _, err := r.Resolve(context.Background(), "Hulu")
	assert.ErrorIs(t, err, transportErr)

	_, populated := r.Cached()
	assert.False(t, populated)
}

func TestRefresh_ReplacesWholeList(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{{ID: "1", Name: "Hulu"}}}}
	r := seeded(t, lister, []App{{ID: "12", Name: "Netflix"}, {ID: "13", Name: "YouTube"}})

	apps, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []App{{ID: "1", Name: "Hulu"}}, apps)

	cached, _ := r.Cached()
	assert.Equal(t, []App{{ID: "1", Name: "Hulu"}}, cached)
}

func TestRefresh_NotifiesObserver(t *testing.T) {
	boom := errors.New("boom")
	lister := &fakeLister{errs: []error{nil, boom}, responses: [][]App{{}}}
	r := NewAppResolver(lister)

	var results []error
	r.OnRefresh(func(err error) { results = append(results, err) })

	_, _ = r.Refresh(context.Background())
	_, _ = r.Refresh(context.Background())

	require.Len(t, results, 2)
	assert.NoError(t, results[0])
	assert.ErrorIs(t, results[1], boom)
}

// blockingLister blocks every fetch until release is closed.
type blockingLister struct {
	release chan struct{}
	calls   atomic.Int32
	apps    []App
}

func (b *blockingLister) Apps(ctx context.Context) ([]App, error) {
	b.calls.Add(1)
	<-b.release
	return b.apps, nil
}

func TestResolve_ConcurrentMissesShareOneFetch(t *testing.T) {
	lister := &blockingLister{
		release: make(chan struct{}),
		apps:    []App{{ID: "12", Name: "Netflix"}},
	}
	r := NewAppResolver(lister)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]App, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _, errs[i] = r.Resolve(context.Background(), "netflix")
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(lister.release)
	wg.Wait()

	assert.Equal(t, int32(1), lister.calls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "12", results[i].ID)
	}
}

// gatedLister blocks each fetch until release is closed or its context ends.
type gatedLister struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
	apps    []App
}

func (g *gatedLister) Apps(ctx context.Context) ([]App, error) {
	if g.calls.Add(1) == 1 {
		close(g.started)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-g.release:
		return g.apps, nil
	}
}

func TestResolve_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	lister := &gatedLister{
		started: make(chan struct{}),
		release: make(chan struct{}),
		apps:    []App{{ID: "12", Name: "Netflix"}},
	}
	r := NewAppResolver(lister)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, _, err := r.Resolve(ctxA, "netflix")
		errA <- err
	}()
	<-lister.started

	type result struct {
		app App
		ok  bool
		err error
	}
	resB := make(chan result, 1)
	go func() {
		app, ok, err := r.Resolve(context.Background(), "netflix")
		resB <- result{app, ok, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	select {
	case err := <-errA:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(lister.release)
	select {
	case res := <-resB:
		require.NoError(t, res.err)
		require.True(t, res.ok)
		assert.Equal(t, "12", res.app.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("waiting caller did not return")
	}
	assert.Equal(t, int32(1), lister.calls.Load())

	cached, populated := r.Cached()
	require.True(t, populated)
	assert.Len(t, cached, 1)
}

func TestRefresh_ReturnsCopies(t *testing.T) {
	lister := &fakeLister{responses: [][]App{{{ID: "1", Name: "Hulu"}}}}
	r := NewAppResolver(lister)

	apps, err := r.Refresh(context.Background())
	require.NoError(t, err)
	apps[0].Name = "Changed"

	cached, _ := r.Cached()
	cached[0].ID = "99"

	app, ok, err := r.Resolve(context.Background(), "hulu")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, App{ID: "1", Name: "Hulu"}, app)
	assert.Equal(t, 1, lister.callCount())
}
