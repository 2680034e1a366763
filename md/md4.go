package md

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// md4Index selects the message word consumed by each of the 48 steps.
var md4Index = [48]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15,
	0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15,
}

var md4Shift = [3][4]int{{3, 7, 11, 19}, {3, 5, 9, 13}, {3, 9, 11, 15}}

// md4Round returns the boolean function and additive constant of step i.
func md4Round(i int, b, c, d uint32) (uint32, uint32) {
	switch {
	case i < 16:
		return b&c | ^b&d, 0
	case i < 32:
		return b&c | b&d | c&d, 0x5a827999
	default:
		return b ^ c ^ d, 0x6ed9eba1
	}
}

// MD4 returns the RFC 1320 chaining state after absorbing msg; serialize it little-endian.
func MD4(msg []byte) [4]uint32 {
	words, h := littleEndianBlocks(msg), md4IV
	for blk := 0; blk < len(words); blk += 16 {
		x := words[blk : blk+16 : blk+16]
		a, b, c, d := h[0], h[1], h[2], h[3]
		for i := 0; i < 48; i++ {
			f, k := md4Round(i, b, c, d)
			a, b, c, d = d, bits.RotateLeft32(a+f+x[md4Index[i]]+k, md4Shift[i>>4][i&3]), b, c
		}
		h[0], h[1], h[2], h[3] = h[0]+a, h[1]+b, h[2]+c, h[3]+d
	}
	return h
}
