// SPDX-License-Identifier: MIT

// Package rng: the Generator type and the three kernels.
// Every kernel is uint32 arithmetic with natural 32-bit wraparound, so the
// state transitions here are bit-exact across platforms.
package rng

import "math/bits"

// two32 is the scaling divisor mapping a raw uint32 onto [0, 1).
const two32 = 4294967296.0 // 2^32

// goldenGamma is the Weyl increment of the splitmix-style seed expander.
const goldenGamma = 0x9E3779B9

// mulberryIncrement is the mulberry32 per-draw state increment.
const mulberryIncrement = 0x6D2B79F5

// sfc32WarmupRounds / xoshiroWarmupRounds are discarded draws after seeding,
// standard practice for short-seeded small-state generators so that nearby
// seeds decorrelate before the first visible output.
const (
	sfc32WarmupRounds   = 12
	xoshiroWarmupRounds = 4
)

// Generator is a stateful seeded pseudorandom generator.
//
// A Generator assumes exclusive single-owner use: concurrent calls on the
// same instance are undefined. State advances on every draw; the seed and
// algorithm are fixed at construction.
type Generator struct {
	alg   Algorithm
	seed  uint32
	state [4]uint32 // mulberry32 uses word 0 only
}

// New constructs a Generator from functional options.
//
// Defaults: sfc32 kernel, random seed (crypto/rand). An unrecognized
// algorithm name supplied via WithAlgorithmName substitutes sfc32 and logs
// one warning — by contract that is a diagnostic, never a failure.
func New(opts ...Option) *Generator {
	o := gatherOptions(opts)
	if o.warnPending {
		o.logger.Warn("unrecognized rng algorithm, falling back",
			"algorithm", o.warnName, "fallback", DefaultAlgorithm.String())
	}

	g := &Generator{alg: o.algorithm, seed: o.seed}
	g.reseed()

	return g
}

// Seed returns the seed the generator was constructed with.
func (g *Generator) Seed() uint32 { return g.seed }

// Algorithm returns the kernel the generator draws from.
func (g *Generator) Algorithm() Algorithm { return g.alg }

// Reset rewinds the generator to its initial post-seed state, replaying
// the exact same sequence from the start.
func (g *Generator) Reset() { g.reseed() }

// reseed expands the 32-bit seed into the kernel's state words.
//
// mulberry32 takes the seed as its single state word directly (the output
// finalizer does all the mixing). The 4-word kernels expand the seed with
// a splitmix32-style mixer so that nearby seeds produce unrelated state,
// then discard a few warm-up draws.
func (g *Generator) reseed() {
	switch g.alg {
	case Mulberry32:
		g.state = [4]uint32{g.seed, 0, 0, 0}

	case Xoshiro128StarStar:
		s := g.seed
		for i := range g.state {
			s, g.state[i] = splitmix32(s)
		}
		// xoshiro128** has one forbidden state: all-zero. Unreachable
		// through the mixer in practice, but guarded for safety.
		if g.state == [4]uint32{} {
			g.state[0] = goldenGamma
		}
		for i := 0; i < xoshiroWarmupRounds; i++ {
			g.xoshiro128ss()
		}

	default: // SFC32
		s := g.seed
		for i := range g.state {
			s, g.state[i] = splitmix32(s)
		}
		for i := 0; i < sfc32WarmupRounds; i++ {
			g.sfc32()
		}
	}
}

// splitmix32 advances a Weyl sequence by the golden-ratio gamma and returns
// the new sequence state plus a well-mixed output word.
func splitmix32(s uint32) (uint32, uint32) {
	s += goldenGamma
	z := s
	z = (z ^ (z >> 16)) * 0x21F0AAAD
	z = (z ^ (z >> 15)) * 0x735A2D97
	z ^= z >> 15

	return s, z
}

// Uint32 advances the generator state and returns the next raw 32-bit word.
func (g *Generator) Uint32() uint32 {
	switch g.alg {
	case Mulberry32:
		return g.mulberry32()
	case Xoshiro128StarStar:
		return g.xoshiro128ss()
	default:
		return g.sfc32()
	}
}

// Next advances the generator state and returns a float64 in [0, 1):
// the raw word divided by 2³². The result has at most 32 significant bits.
func (g *Generator) Next() float64 {
	return float64(g.Uint32()) / two32
}

// sfc32 is the "Small Fast Counter" round: word 3 is a monotonically
// incrementing counter mixed additively into the output.
func (g *Generator) sfc32() uint32 {
	t := g.state[0] + g.state[1] + g.state[3]
	g.state[3]++
	g.state[0] = g.state[1] ^ (g.state[1] >> 9)
	g.state[1] = g.state[2] + (g.state[2] << 3)
	g.state[2] = bits.RotateLeft32(g.state[2], 21) + t

	return t
}

// mulberry32 is a single-word generator: a fixed odd increment followed by
// a two-round multiply-XOR-shift finalizer.
func (g *Generator) mulberry32() uint32 {
	g.state[0] += mulberryIncrement
	t := g.state[0]
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)

	return t ^ (t >> 14)
}

// xoshiro128ss is the xoshiro128** round: the output scrambler is
// rotl(a*5, 7)*9 over the pre-update state.
func (g *Generator) xoshiro128ss() uint32 {
	r := bits.RotateLeft32(g.state[0]*5, 7) * 9

	t := g.state[1] << 9
	g.state[2] ^= g.state[0]
	g.state[3] ^= g.state[1]
	g.state[1] ^= g.state[2]
	g.state[0] ^= g.state[3]
	g.state[2] ^= t
	g.state[3] = bits.RotateLeft32(g.state[3], 11)

	return r
}
