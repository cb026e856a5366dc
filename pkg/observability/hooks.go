// Package observability lets hosts receive timing events from the chart
// pipeline without this module depending on a metrics backend.
//
// Hooks default to no-ops. A host registers its own implementations once at
// startup:
//
//	observability.SetPipelineHooks(&myHooks{})
//
// and the pipeline reports each stage:
//
//	observability.Pipeline().OnLayoutStart(ctx, slots)
//	// ... lay out axes ...
//	observability.Pipeline().OnLayoutComplete(ctx, slots, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from chart rendering.
type PipelineHooks interface {
	// OnLayoutStart fires before the axes measure and inset the content
	// rectangle. slots is the number of configured axes.
	OnLayoutStart(ctx context.Context, slots int)
	OnLayoutComplete(ctx context.Context, slots int, duration time.Duration)

	// OnRenderStart fires before one output format is drawn.
	OnRenderStart(ctx context.Context, format string)
	// OnRenderComplete reports the drawn format, the artifact size and any
	// error.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from artifact cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, format string)
	OnCacheMiss(ctx context.Context, format string)
	OnCacheSet(ctx context.Context, format string, size int)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                   {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks. Tests use it.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
