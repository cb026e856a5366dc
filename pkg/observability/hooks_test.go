package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooks(t *testing.T) {
	ctx := context.Background()

	var p NoopPipelineHooks
	p.OnLayoutStart(ctx, 2)
	p.OnLayoutComplete(ctx, 2, time.Millisecond)
	p.OnRenderStart(ctx, "svg")
	p.OnRenderComplete(ctx, "svg", 512, time.Millisecond, nil)

	var c NoopCacheHooks
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "png")
	c.OnCacheSet(ctx, "png", 1024)
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	if Pipeline() != p {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	c := &testCacheHooks{}
	SetCacheHooks(c)
	if Cache() != c {
		t.Error("SetCacheHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	if Pipeline() != p || Cache() != c {
		t.Error("registering nil should be ignored")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
