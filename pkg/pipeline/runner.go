package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxes/pkg/cache"
	"github.com/matzehuels/chartaxes/pkg/config"
	"github.com/matzehuels/chartaxes/pkg/errors"
	"github.com/matzehuels/chartaxes/pkg/fonts"
	"github.com/matzehuels/chartaxes/pkg/observability"
)

// Runner executes the pipeline with caching. It keeps no per-run state and
// may be shared by goroutines.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	fontsOnce sync.Once
	fonts     *fonts.Measurer
	fontsErr  error
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

func (r *Runner) measurer() (*fonts.Measurer, error) {
	r.fontsOnce.Do(func() {
		r.fonts, r.fontsErr = fonts.NewMeasurer()
	})
	return r.fonts, r.fontsErr
}

// Execute renders chart in every requested format, serving artifacts from
// the cache when possible.
func (r *Runner) Execute(ctx context.Context, chart *config.Chart, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	encoded, err := chart.Encode()
	if err != nil {
		return nil, err
	}
	result := &Result{
		ChartHash: cache.Hash(encoded),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	var missing []string
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := cache.ArtifactKey(result.ChartHash, format, opts.scaleFor(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, format)
				result.Artifacts[format] = data
				result.Stats.CacheHits++
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, format)
		result.Stats.CacheMisses++
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		r.Logger.Debug("all artifacts cached", "hash", result.ChartHash[:12])
		return result, nil
	}

	m, err := r.measurer()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}

	frames := make(map[float64]*frame)
	for _, format := range missing {
		scale := opts.scaleFor(format)
		f, ok := frames[scale]
		if !ok {
			start := time.Now()
			if f, err = r.layout(ctx, chart, m, scale); err != nil {
				return nil, err
			}
			result.Stats.LayoutTime += time.Since(start)
			frames[scale] = f
		}

		start := time.Now()
		data, err := r.render(ctx, f, format)
		result.Stats.RenderTime += time.Since(start)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data

		key := cache.ArtifactKey(result.ChartHash, format, scale)
		if err := r.Cache.Set(ctx, key, data, DefaultCacheTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}

	r.Logger.Info("rendered chart",
		"formats", missing,
		"cached", result.Stats.CacheHits,
		"layout", result.Stats.LayoutTime,
		"render", result.Stats.RenderTime)
	return result, nil
}

// Layout builds and lays out the chart at scale without drawing it. It is
// exposed for hosts that draw frames themselves.
func (r *Runner) Layout(ctx context.Context, chart *config.Chart, scale float64) (*Frame, error) {
	m, err := r.measurer()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	f, err := r.layout(ctx, chart, m, scale)
	if err != nil {
		return nil, err
	}
	return &Frame{frame: f}, nil
}
