// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set rejects NaN/±Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as "unreachable" in
//     cost matrices (e.g. cells outside a search window). Under validation,
//     NaN and -Inf remain rejected even when allowInfDistances=true.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "unreachable"
	// in cost matrices. This is NOT a "dirty-data" mode.
	DefaultAllowInfDistances = false
)

// Option mutates the construction-time policy of a Dense.
type Option func(*policy)

// policy is the numeric policy carried by each Dense instance.
type policy struct {
	validateNaNInf    bool
	allowInfDistances bool
}

// defaultPolicy returns the documented defaults.
func defaultPolicy() policy {
	return policy{
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
}

// WithAllowInfDistances permits +Inf in Set while still rejecting NaN and -Inf.
// Use for cumulative-cost matrices where +Inf marks a cell as unreachable.
func WithAllowInfDistances() Option {
	return func(p *policy) { p.allowInfDistances = true }
}

// WithNoValidateNaNInf disables the finite-only guard entirely.
func WithNoValidateNaNInf() Option {
	return func(p *policy) { p.validateNaNInf = false }
}

// gatherPolicy applies opts over the defaults in order.
func gatherPolicy(opts ...Option) policy {
	p := defaultPolicy()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	return p
}

// rejects reports whether v violates the policy.
func (p policy) rejects(v float64) bool {
	if !p.validateNaNInf {
		return false
	}
	if math.IsNaN(v) {
		return true
	}
	if math.IsInf(v, 1) {
		return !p.allowInfDistances
	}

	return math.IsInf(v, -1)
}
