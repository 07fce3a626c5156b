// Package observability provides hooks for metrics, tracing, and logging.
//
// The layout engine itself is pure and dependency-free; instrumentation
// happens around it. Consumers register hooks at startup to receive
// events about layout builds and cache operations without the library
// taking a dependency on any observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnBuildStart(ctx, mode, eventCount)
//	// ... build layout ...
//	observability.Layout().OnBuildComplete(ctx, mode, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout pipeline.
type LayoutHooks interface {
	// OnBuildStart records the start of a grid or day-layout build.
	OnBuildStart(ctx context.Context, mode string, eventCount int)

	// OnBuildComplete records the completion of a build.
	OnBuildComplete(ctx context.Context, mode string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Defaults
// =============================================================================

type noopLayoutHooks struct{}

func (noopLayoutHooks) OnBuildStart(context.Context, string, int)                     {}
func (noopLayoutHooks) OnBuildComplete(context.Context, string, time.Duration, error) {}

type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)      {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Registry
// =============================================================================

var (
	mu          sync.RWMutex
	layoutHooks LayoutHooks = noopLayoutHooks{}
	cacheHooks  CacheHooks  = noopCacheHooks{}
)

// SetLayoutHooks registers layout hooks. Passing nil restores the no-op
// default. Intended to be called once at startup, before the pipeline runs.
func SetLayoutHooks(h LayoutHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		layoutHooks = noopLayoutHooks{}
		return
	}
	layoutHooks = h
}

// SetCacheHooks registers cache hooks. Passing nil restores the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = noopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	mu.RLock()
	defer mu.RUnlock()
	return layoutHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
