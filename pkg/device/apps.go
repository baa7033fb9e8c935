package device

import (
	"context"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// AppLister fetches the full list of apps installed on a device.
type AppLister interface {
	Apps(ctx context.Context) ([]App, error)
}

// maxRefreshDuration bounds a shared fetch, which outlives the caller that
// started it.
const maxRefreshDuration = 30 * time.Second

// RefreshObserver is notified after every app list fetch.
type RefreshObserver func(err error)

// AppResolver resolves a loosely typed app identifier (app ID or display
// name) to a single installed app. It caches the device's app list and
// refetches it at most once per lookup when the cache misses.
//
// The cached list is an immutable snapshot replaced as a whole on each
// successful fetch. Concurrent refreshes share a single fetch.
type AppResolver struct {
	lister   AppLister
	observer RefreshObserver

	apps  atomic.Pointer[[]App]
	group singleflight.Group
}

// NewAppResolver creates a resolver with an empty cache.
func NewAppResolver(lister AppLister) *AppResolver {
	return &AppResolver{lister: lister}
}

// OnRefresh registers a callback invoked with the result of every fetch.
// It must be set before the resolver is shared.
func (r *AppResolver) OnRefresh(fn RefreshObserver) {
	r.observer = fn
}

// Resolve finds the app whose ID equals token or whose name equals token
// case-insensitively. It returns ok == false when nothing matches even after
// a refresh. More than one match fails with *AmbiguousMatchError. Fetch
// errors are returned unchanged and leave the cache as it was.
func (r *AppResolver) Resolve(ctx context.Context, token string) (App, bool, error) {
	apps, populated := r.Cached()
	if !populated {
		var err error
		if apps, err = r.Refresh(ctx); err != nil {
			return App{}, false, err
		}
	}

	matches := matchApps(apps, token)
	if len(matches) == 0 {
		refreshed, err := r.Refresh(ctx)
		if err != nil {
			return App{}, false, err
		}
		matches = matchApps(refreshed, token)
	}

	switch len(matches) {
	case 0:
		return App{}, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return App{}, false, &AmbiguousMatchError{Token: token, Count: len(matches)}
	}
}

// Refresh refetches the app list and replaces the cache on success.
// Concurrent callers share one fetch. The fetch is not tied to any single
// caller's context, so a caller giving up only stops its own wait.
func (r *AppResolver) Refresh(ctx context.Context) ([]App, error) {
	ch := r.group.DoChan("apps", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), maxRefreshDuration)
		defer cancel()

		apps, err := r.lister.Apps(fetchCtx)
		if r.observer != nil {
			r.observer(err)
		}
		if err != nil {
			return nil, err
		}
		snapshot := slices.Clone(apps)
		r.apps.Store(&snapshot)
		return snapshot, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]App)), nil
	}
}

// Cached returns a copy of the current snapshot and whether the cache was
// ever populated.
func (r *AppResolver) Cached() ([]App, bool) {
	p := r.apps.Load()
	if p == nil {
		return nil, false
	}
	return slices.Clone(*p), true
}

func matchApps(apps []App, token string) []App {
	var matches []App
	for _, a := range apps {
		if a.ID == token || strings.EqualFold(a.Name, token) {
			matches = append(matches, a)
		}
	}
	return matches
}
