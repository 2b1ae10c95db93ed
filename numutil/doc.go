// SPDX-License-Identifier: MIT

// Package numutil provides small numeric glue used around the core types:
// a lazy float64 range generator, approximate comparison helpers, and a
// clock-injected Sleeper for pacing simulations.
//
// What & Why:
//
//	Range produces a restartable iter.Seq[float64], configured through
//	functional options with documented defaults:
//
//	    for v := range numutil.Range(numutil.WithEnd(5)) { ... } // 0,1,2,3,4
//
//	Sleeper wraps a quartz.Clock so that anything pacing itself on wall
//	time stays testable: inject quartz.NewMock(t) in tests and advance
//	time explicitly, use NewRealSleeper in production.
//
//	EqualApprox / EqualSlices compare floats within an absolute tolerance,
//	the comparison the rest of the module's tests are written against.
package numutil
