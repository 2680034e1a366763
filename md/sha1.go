package md

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// sha1Round returns the selector function and constant of step t.
func sha1Round(t int, b, c, d uint32) (uint32, uint32) {
	switch {
	case t < 20:
		return b&c | ^b&d, 0x5a827999
	case t < 40:
		return b ^ c ^ d, 0x6ed9eba1
	case t < 60:
		return b&c | b&d | c&d, 0x8f1bbcdc
	default:
		return b ^ c ^ d, 0xca62c1d6
	}
}

// SHA0 returns the FIPS 180 (1993) chaining state after absorbing msg.
func SHA0(msg []byte) [5]uint32 { return sha1Blocks(bigEndianBlocks(msg), 0) }

// SHA1 returns the FIPS 180-4 chaining state after absorbing msg.
func SHA1(msg []byte) [5]uint32 { return sha1Blocks(bigEndianBlocks(msg), 1) }

// sha1Blocks is shared by SHA-0 and SHA-1, which differ only in the rotation applied while the
// message schedule is expanded.
func sha1Blocks(words []uint32, rot int) [5]uint32 {
	var w [80]uint32
	h := sha1IV
	for blk := 0; blk < len(words); blk += 16 {
		copy(w[:16], words[blk:blk+16])
		for t := 16; t < 80; t++ {
			w[t] = bits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], rot)
		}

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
		for t := 0; t < 80; t++ {
			f, k := sha1Round(t, b, c, d)
			a, b, c, d, e = bits.RotateLeft32(a, 5)+f+e+w[t]+k, a, bits.RotateLeft32(b, 30), c, d
		}
		h[0], h[1], h[2], h[3], h[4] = h[0]+a, h[1]+b, h[2]+c, h[3]+d, h[4]+e
	}
	return h
}
