// SPDX-License-Identifier: MIT

// Package rng: algorithm selection.
package rng

import "strings"

// Algorithm identifies one of the supported generator kernels.
type Algorithm int

const (
	// SFC32 is the "Small Fast Counter" generator: 4-word state with a
	// monotonically incrementing counter word mixed additively. The default.
	SFC32 Algorithm = iota

	// Mulberry32 is a single-word generator with two-round odd-constant
	// multiplicative mixing. Smallest state, easiest to reason about.
	Mulberry32

	// Xoshiro128StarStar is xoshiro128**: 4-word shift/rotate/XOR state
	// update with a starstar output scrambler.
	Xoshiro128StarStar
)

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Mulberry32:
		return "mulberry32"
	case Xoshiro128StarStar:
		return "xoshiro128**"
	default:
		return "sfc32"
	}
}

// valid reports whether a names a supported kernel.
func (a Algorithm) valid() bool {
	return a >= SFC32 && a <= Xoshiro128StarStar
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
//
// Recognized spellings: "sfc32"; "mulberry32"; "xoshiro128**",
// "xoshiro128starstar", "xoshiro128ss".
//
// Unrecognized names return (SFC32, false) — selection is permissive by
// contract and never fails; callers that care emit a diagnostic (New does).
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sfc32":
		return SFC32, true
	case "mulberry32":
		return Mulberry32, true
	case "xoshiro128**", "xoshiro128starstar", "xoshiro128ss":
		return Xoshiro128StarStar, true
	default:
		return SFC32, false // permissive fallback, not an error
	}
}
