// Package pipeline wires the sticker stages together and runs hooks around
// each of them.
package pipeline

import (
	"context"
	"time"

	"github.com/anysticker/anysticker/core"
	apperrors "github.com/anysticker/anysticker/errors"
)

// Pipeline executes a sequence of Steps.  Each stage owns the raster it
// receives and hands a new one forward; a failure at any stage stops the run.
type Pipeline struct {
	steps []core.Step
	hooks []core.Hook
}

// New returns an empty Pipeline.
func New() *Pipeline { return &Pipeline{} }

// Use appends steps to the pipeline.  Returns the same Pipeline for chaining.
func (p *Pipeline) Use(s ...core.Step) *Pipeline {
	p.steps = append(p.steps, s...)
	return p
}

// AddHook registers an observer.
func (p *Pipeline) AddHook(h core.Hook) *Pipeline {
	p.hooks = append(p.hooks, h)
	return p
}

// Run executes the pipeline starting from r (nil for source steps that
// produce the initial raster).  It returns the final raster and per-step
// timing observations.
func (p *Pipeline) Run(ctx context.Context, r *core.Raster) (*core.Raster, map[string]time.Duration, error) {
	timings := make(map[string]time.Duration, len(p.steps))
	current := r

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, timings, apperrors.Wrap(apperrors.CategoryPipeline, step.Name(), err)
		}

		p.callHooksBefore(ctx, step.Name(), current)
		start := time.Now()
		result, err := step.Execute(ctx, current)
		elapsed := time.Since(start)
		timings[step.Name()] = elapsed
		p.callHooksAfter(ctx, step.Name(), result, elapsed, err)

		if err != nil {
			return nil, timings, err
		}
		current = result
	}
	return current, timings, nil
}

func (p *Pipeline) callHooksBefore(ctx context.Context, name string, r *core.Raster) {
	for _, h := range p.hooks {
		h.BeforeStep(ctx, name, r)
	}
}

func (p *Pipeline) callHooksAfter(ctx context.Context, name string, r *core.Raster, d time.Duration, err error) {
	for _, h := range p.hooks {
		h.AfterStep(ctx, name, r, d, err)
	}
}
