// Package numera is a small, deterministic numeric toolkit: arbitrary-size
// vectors and matrices, fixed-size graphics transform matrices, and a
// family of reproducible 32-bit pseudorandom generators.
//
// 🚀 What is numera?
//
//	A focused, dependency-light library that brings together:
//		• vector    — dynamic float64 vectors: Hadamard, dot, scale, normalize
//		• matrix    — dense row-major matrices: four construction protocols,
//		              identity, add/sub/scale/transpose, Mul, MulVec, lazy iteration
//		• transform — 2×2 / 3×3 / 4×4 matrices with closed-form constructors:
//		              rotation, scaling, translation, orthographic, perspective
//		• rng       — seeded PRNGs (sfc32, mulberry32, xoshiro128**) with
//		              bit-exact, reproducible state transitions
//		• numutil   — lazy numeric ranges, a testable sleep helper,
//		              tolerance-based slice comparison
//
// ✨ Why choose numera?
//
//   - Deterministic by design – fixed loop orders, no implicit randomness,
//     seeded generators reproduce byte-for-byte across runs
//   - Fail-fast validation – every kernel checks shapes up front and returns
//     sentinel errors matched via errors.Is; no panics on user input
//   - Hot paths stay cheap – flat backing slices, unrolled fixed-size
//     multiplies, allocation-free MulVec on transform matrices
//   - Pure computation – no I/O, no persistence, no networking; what you
//     pass in is all there is
//
// Quick taste:
//
//	model := transform.Rotation4(0, 0, math.Pi/2)
//	view := transform.Translation4(0, 0, -5)
//	proj := transform.Perspective(math.Pi/3, 16.0/9.0, 0.1, 100)
//	mvp := proj.Mul(view).Mul(model)
//	clip := mvp.MulVec([4]float64{1, 0, 0, 1})
//
// Dive into the examples/ directory for runnable demos of transform
// pipelines and reproducible simulations.
//
//	go get github.com/mkalens/numera
package numera
