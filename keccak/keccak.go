// Package keccak implements the Keccak-f[1600] permutation and the SHA-3 sponge built on it.
package keccak

import (
	"github.com/p7r0x7/digests/pad"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Rates in bytes of the four SHA-3 variants; capacity is twice the digest size.
const (
	Rate224 = 144
	Rate256 = 136
	Rate384 = 104
	Rate512 = 72
)

// Rounds of Keccak-f[1600].
const Rounds = 24

// rc holds the ι constants of each round.
var rc = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rho holds the ρ rotation of lane x+5y.
var rho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// State is the 5×5 lane array, lane (x, y) at index x+5y.
type State [25]uint64

// F1600 applies all 24 rounds of the permutation to a in place.
func F1600(a *State) {
	var b State
	var c, d [5]uint64
	for round := 0; round < Rounds; round++ {
		/* θ */
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		/* ρ and π: lane (x, y) rotates into (y, 2x+3y). */
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rho[x+5*y])
			}
		}

		/* χ */
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = b[y+x] ^ ^b[y+(x+1)%5]&b[y+(x+2)%5]
			}
		}

		/* ι */
		a[0] ^= rc[round]
	}
}

// Sum absorbs the pad10*1-padded msg into a zero state rate bytes at a time and returns the final
// state, whose leading lanes are the little-endian digest.
func Sum(msg []byte, rate int) State {
	var a State
	lanes, width := pad.Keccak(msg, rate), rate>>3
	for blk := 0; blk < len(lanes); blk += width {
		for i, v := range lanes[blk : blk+width] {
			a[i] ^= v
		}
		F1600(&a)
	}
	return a
}
