// SPDX-License-Identifier: MIT

// Package numutil: the lazy Range generator and its functional options.
package numutil

import (
	"iter"
	"math"
)

// Default bounds of Range when no options are supplied.
const (
	DefaultRangeStart = 0.0
	DefaultRangeEnd   = 10.0
	DefaultRangeStep  = 1.0
)

// panicStepInvalid flags a zero or non-finite step passed to WithStep
// (programmer error; a zero step would never terminate).
const panicStepInvalid = "numutil: WithStep: step must be finite and non-zero"

// rangeOptions is the internal construction state gathered from RangeOption values.
type rangeOptions struct {
	start float64
	end   float64
	step  float64
}

// RangeOption mutates internal Range options. Safe to apply repeatedly.
type RangeOption func(*rangeOptions)

// WithStart sets the first value of the sequence. Default 0.
func WithStart(start float64) RangeOption {
	return func(o *rangeOptions) { o.start = start }
}

// WithEnd sets the exclusive bound of the sequence. Default 10.
func WithEnd(end float64) RangeOption {
	return func(o *rangeOptions) { o.end = end }
}

// WithStep sets the increment between values. Default 1.
// A negative step counts down while start > end.
// Panics on a zero or non-finite step.
func WithStep(step float64) RangeOption {
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		panic(panicStepInvalid)
	}
	return func(o *rangeOptions) { o.step = step }
}

// Range returns a lazy, restartable sequence of float64 values:
// start, start+step, start+2·step, … while the value has not crossed end
// (end is exclusive). A positive step yields values while v < end, a
// negative step while v > end; a sequence that starts past its bound is
// empty. Each range over the returned Seq restarts from the beginning.
func Range(opts ...RangeOption) iter.Seq[float64] {
	o := rangeOptions{start: DefaultRangeStart, end: DefaultRangeEnd, step: DefaultRangeStep}
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(float64) bool) {
		if o.step > 0 {
			for v := o.start; v < o.end; v += o.step {
				if !yield(v) {
					return
				}
			}
			return
		}
		for v := o.start; v > o.end; v += o.step {
			if !yield(v) {
				return
			}
		}
	}
}
