// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxBytes is the storage ceiling for a single Dense (16 GiB).
	// Requests above it fail with ErrAllocationFailure instead of handing the
	// runtime an allocation it would abort the process on.
	DefaultMaxBytes uint64 = 1 << 34
)

const panicMaxBytesInvalid = "matrix: WithMaxBytes: limit must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxBytes uint64 // > 0; DefaultMaxBytes
}

// WithMaxBytes sets the byte ceiling used when allocating element storage.
// Implementation:
//   - Stage 1: validate limit > 0.
//   - Stage 2: return a setter that writes the limit into Options.
//
// Behavior highlights:
//   - Panics with a stable message when limit is zero.
//   - The ceiling applies to the Dense being constructed; kernels allocate
//     their results with the defaults.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMaxBytes(limit uint64) Option {
	if limit == 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = limit }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Mostly useful in tests to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// MaxBytes reports the effective allocation ceiling.
func (o Options) MaxBytes() uint64 { return o.maxBytes }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		maxBytes: DefaultMaxBytes,
	}
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
