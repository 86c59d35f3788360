package dtw

import "fmt"

// FastDTW: approximate DTW in linear time and space
//
// Description:
//
//	Recursively halve both sequences, align the coarsest pair exactly, then
//	refine level by level inside a window around the projected coarse path.
//	The radius widens that window; larger radii trade speed for accuracy.
//
// Algorithm Outline:
//  1. minSize = radius + 2. If n ≤ minSize or m ≤ minSize → exact Compute.
//  2. Coarsen sample and template (average adjacent pairs) and recurse.
//  3. ExpandWindow(coarsePath, n, m, radius).
//  4. WindowedCompute on the full-resolution inputs.
//
// References:
//
//	S. Salvador, P. Chan. "Toward Accurate Dynamic Time Warping in Linear
//	Time and Space". Intelligent Data Analysis 11(5), 2007.

// FastCompute returns an approximate alignment of sample and template.
// Path invariants are the same as for Compute; Cost is never below the
// exact optimum.
//
// Errors: ErrBadRadius, plus everything Compute returns.
func FastCompute(sample, template *Sequence, radius int, dist DistanceFunc) (Result, error) {
	if radius < 0 {
		return Result{}, fmt.Errorf("FastCompute: radius %d: %w", radius, ErrBadRadius)
	}
	if err := validatePair(sample, template); err != nil {
		return Result{}, fmt.Errorf("FastCompute: %w", err)
	}

	return fastCompute(sample, template, radius, dist)
}

func fastCompute(sample, template *Sequence, radius int, dist DistanceFunc) (Result, error) {
	minSize := radius + 2
	if sample.Len() <= minSize || template.Len() <= minSize {
		return Compute(sample, template, dist)
	}

	coarse, err := fastCompute(sample.Coarsen(), template.Coarsen(), radius, dist)
	if err != nil {
		return Result{}, err
	}
	w := ExpandWindow(coarse.Path, sample.Len(), template.Len(), radius)

	return WindowedCompute(sample, template, w, dist)
}

// FastEngine is the accelerated Engine. It composes an Engine whose
// computation strategy is FastCompute with the engine's radius, and keeps the
// exact computation reachable through ExactCompute.
//
// All Engine methods (setters, readers, Compute) are available and follow
// the same atomic replace → compute → commit contract.
type FastEngine struct {
	*Engine
	radius int // guarded by Engine.mu
}

// NewFast constructs a FastEngine and computes the initial alignment.
//
// Errors: ErrBadRadius for radius < 0; otherwise as New.
func NewFast(sample, template *Sequence, radius int, opts ...Option) (*FastEngine, error) {
	if radius < 0 {
		return nil, fmt.Errorf("NewFast: radius %d: %w", radius, ErrBadRadius)
	}
	fe := &FastEngine{radius: radius}
	eng, err := newEngine(sample, template, fe.computeLocked, opts...)
	if err != nil {
		return nil, err
	}
	fe.Engine = eng

	return fe, nil
}

// computeLocked is the Engine strategy. It reads radius, so it must run under
// Engine.mu; FastEngine shadows Compute and ComputeWith to snapshot the
// radius instead of calling it unlocked.
func (fe *FastEngine) computeLocked(sample, template *Sequence, dist DistanceFunc) (Result, error) {
	return FastCompute(sample, template, fe.radius, dist)
}

// Radius returns the current radius.
func (fe *FastEngine) Radius() int {
	fe.mu.RLock()
	defer fe.mu.RUnlock()

	return fe.radius
}

// SetRadius replaces the radius; see Engine.SetSample for the recompute
// contract. A negative radius is rejected before any state changes.
func (fe *FastEngine) SetRadius(radius int, recompute bool) error {
	if radius < 0 {
		return fmt.Errorf("SetRadius: radius %d: %w", radius, ErrBadRadius)
	}
	fe.mu.Lock()
	defer fe.mu.Unlock()
	fe.radius = radius

	return fe.afterReplaceLocked(recompute)
}

// Compute returns the approximate alignment of the current inputs without
// committing it.
func (fe *FastEngine) Compute() (Result, error) {
	return fe.ComputeWith(nil)
}

// ComputeWith is Compute with a per-call distance override (nil = current).
func (fe *FastEngine) ComputeWith(dist DistanceFunc) (Result, error) {
	fe.mu.RLock()
	sample, template, radius := fe.sample, fe.template, fe.radius
	if dist == nil {
		dist = fe.dist
	}
	fe.mu.RUnlock()

	return FastCompute(sample, template, radius, dist)
}

// ExactCompute runs the exact algorithm on the current inputs without
// committing it. Useful to validate the approximation.
func (fe *FastEngine) ExactCompute() (Result, error) {
	fe.mu.RLock()
	sample, template, dist := fe.sample, fe.template, fe.dist
	fe.mu.RUnlock()

	return Compute(sample, template, dist)
}
