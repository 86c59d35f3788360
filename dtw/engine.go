package dtw

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// computeFunc is the computation strategy an Engine commits results from.
type computeFunc func(sample, template *Sequence, dist DistanceFunc) (Result, error)

// Engine owns a sample, a template and a distance function, and maintains the
// warping path and warping distance for them.
//
// Lifecycle:
//   - New runs a full computation immediately.
//   - SetSample / SetTemplate / SetDistance replace one input; with
//     recompute=true the engine recomputes and commits path and distance
//     together. With recompute=false the committed result is left as it was
//     and Stale() reports true until the next successful recompute.
//   - A failed recompute never touches the committed result.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Replace → compute → commit runs
//	under one write lock, so readers never observe a torn path/distance pair.
type Engine struct {
	mu       sync.RWMutex
	sample   *Sequence
	template *Sequence
	dist     DistanceFunc
	result   Result
	stale    bool
	log      zerolog.Logger
	compute  computeFunc
}

// New constructs an exact Engine and computes the initial alignment.
//
// Errors: ErrNoResult wrapping the cause (ErrNilSequence, ErrEmptySequence,
// ErrDimensionMismatch, ErrInvalidCost). The failure is also logged at warn
// level through the configured logger.
func New(sample, template *Sequence, opts ...Option) (*Engine, error) {
	return newEngine(sample, template, Compute, opts...)
}

// newEngine wires state and strategy, then runs the initial computation.
func newEngine(sample, template *Sequence, compute computeFunc, opts ...Option) (*Engine, error) {
	cfg := gatherOptions(opts...)
	e := &Engine{
		sample:   sample,
		template: template,
		dist:     cfg.dist,
		log:      cfg.log,
		compute:  compute,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.recomputeLocked(); err != nil {
		return nil, err
	}

	return e, nil
}

// recomputeLocked computes from the current inputs and commits on success.
// Caller must hold e.mu for writing.
func (e *Engine) recomputeLocked() error {
	res, err := e.compute(e.sample, e.template, e.dist)
	if err != nil {
		e.stale = true
		e.log.Warn().Err(err).
			Int("n", e.sample.Len()).
			Int("m", e.template.Len()).
			Msg("dtw: no result, check input data")

		return fmt.Errorf("%w: %w", ErrNoResult, err)
	}
	e.result = res
	e.stale = false
	e.log.Debug().
		Int("n", e.sample.Len()).
		Int("m", e.template.Len()).
		Int("k", res.Path.Len()).
		Float64("distance", res.Distance).
		Msg("dtw: alignment committed")

	return nil
}

// afterReplaceLocked finishes a setter: recompute or mark stale.
func (e *Engine) afterReplaceLocked(recompute bool) error {
	if !recompute {
		e.stale = true
		return nil
	}

	return e.recomputeLocked()
}

// SetSample replaces the sample. With recompute=true the alignment is
// recomputed and committed atomically; on failure the previous result stays
// in place, Stale() reports true and the error wraps ErrNoResult.
func (e *Engine) SetSample(sample *Sequence, recompute bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sample = sample

	return e.afterReplaceLocked(recompute)
}

// SetTemplate replaces the template; see SetSample for the recompute contract.
func (e *Engine) SetTemplate(template *Sequence, recompute bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.template = template

	return e.afterReplaceLocked(recompute)
}

// SetDistance swaps the pointwise distance (nil restores DistanceBetween);
// see SetSample for the recompute contract.
func (e *Engine) SetDistance(dist DistanceFunc, recompute bool) error {
	if dist == nil {
		dist = DistanceBetween
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dist = dist

	return e.afterReplaceLocked(recompute)
}

// Recompute recomputes from the current inputs and commits the result.
func (e *Engine) Recompute() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.recomputeLocked()
}

// Compute returns the alignment of the current inputs without committing it.
func (e *Engine) Compute() (Result, error) {
	return e.ComputeWith(nil)
}

// ComputeWith is Compute with a per-call distance override (nil = current).
func (e *Engine) ComputeWith(dist DistanceFunc) (Result, error) {
	e.mu.RLock()
	sample, template := e.sample, e.template
	if dist == nil {
		dist = e.dist
	}
	e.mu.RUnlock()

	// Sequences are immutable, so computing outside the lock is safe.
	return e.compute(sample, template, dist)
}

// Sample returns the current sample.
func (e *Engine) Sample() *Sequence {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sample
}

// Template returns the current template.
func (e *Engine) Template() *Sequence {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.template
}

// WarpingPath returns a copy of the committed warping path.
func (e *Engine) WarpingPath() Path {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.result.Path.Clone()
}

// WarpingDistance returns the committed warping distance.
func (e *Engine) WarpingDistance() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.result.Distance
}

// Result returns a copy of the committed result (path, cost, distance).
func (e *Engine) Result() Result {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.result.clone()
}

// Stale reports whether the committed result lags behind the current inputs,
// either because a setter skipped the recompute or because it failed.
func (e *Engine) Stale() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.stale
}

// String renders the committed result:
//
//	Warping Distance: <d>
//	Warping Path: (0,0) (1,1) ...
func (e *Engine) String() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return fmt.Sprintf("Warping Distance: %v\nWarping Path: %s", e.result.Distance, e.result.Path)
}
