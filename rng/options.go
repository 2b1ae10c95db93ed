// SPDX-License-Identifier: MIT

// Package rng: functional configuration for generator construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior once a seed is fixed: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Permissive by contract where the API demands it: WithAlgorithmName
//     never fails, it falls back with a warning.

package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAlgorithm is the kernel used when no algorithm option is supplied
// and when an unrecognized algorithm name falls back.
const DefaultAlgorithm = SFC32

// panicAlgorithmInvalid flags an out-of-range Algorithm enum value passed to
// WithAlgorithm (programmer error; names go through WithAlgorithmName).
const panicAlgorithmInvalid = "rng: WithAlgorithm: unknown Algorithm value"

// options is the internal construction state gathered from Option values.
type options struct {
	seed      uint32
	seedSet   bool        // distinguishes an explicit seed 0 from "absent"
	algorithm Algorithm
	logger    *log.Logger // destination for the fallback diagnostic
	warnName    string // unrecognized name pending a warning
	warnPending bool   // true when warnName should be reported by New
}

// Option mutates internal construction options. Safe to apply repeatedly.
type Option func(*options)

// WithSeed fixes the generator seed. Any uint32 is valid, including 0.
// When absent, New draws a random seed (crypto/rand, falling back to the
// wall clock if the system source is unavailable).
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithAlgorithm selects the generator kernel by enum value.
// Panics on an out-of-range value — enum misuse is a programmer error;
// free-form names belong in WithAlgorithmName.
func WithAlgorithm(a Algorithm) Option {
	if !a.valid() {
		panic(panicAlgorithmInvalid)
	}
	return func(o *options) {
		o.algorithm = a
	}
}

// WithAlgorithmName selects the generator kernel by name, permissively:
// an unrecognized name substitutes the sfc32 default and New emits one
// warning on the generator's logger. Never an error — this is intentional
// API ergonomics for configuration strings, not a validation gap.
func WithAlgorithmName(name string) Option {
	return func(o *options) {
		a, ok := ParseAlgorithm(name)
		o.algorithm = a
		o.warnPending = !ok
		o.warnName = name
	}
}

// WithLogger sets the destination for diagnostics (the unrecognized-name
// warning). Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// gatherOptions applies opts over the documented defaults and resolves the
// absent-seed case.
func gatherOptions(opts []Option) options {
	o := options{algorithm: DefaultAlgorithm}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if !o.seedSet {
		o.seed = randomSeed()
	}

	return o
}

// randomSeed draws 4 bytes from the system entropy source. A read failure
// degrades to the wall clock; reproducibility only matters when the caller
// fixed a seed explicitly.
func randomSeed() uint32 {
	var buf [4]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}

	return binary.LittleEndian.Uint32(buf[:])
}
