package md

import "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// md5T holds floor(abs(sin(i+1)) * 2^32) for each step i.
var md5T = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee, 0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be, 0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa, 0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed, 0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c, 0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05, 0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039, 0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1, 0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

var md5Shift = [4][4]int{{7, 12, 17, 22}, {5, 9, 14, 20}, {4, 11, 16, 23}, {6, 10, 15, 21}}

// md5Round returns F, G, H, or I of step i along with the message word it consumes.
func md5Round(i int, b, c, d uint32) (uint32, int) {
	switch {
	case i < 16:
		return b&c | ^b&d, i
	case i < 32:
		return b&d | c&^d, (5*i + 1) & 15
	case i < 48:
		return b ^ c ^ d, (3*i + 5) & 15
	default:
		return c ^ (b | ^d), (7 * i) & 15
	}
}

// MD5 returns the RFC 1321 chaining state after absorbing msg; serialize it little-endian.
func MD5(msg []byte) [4]uint32 {
	words, h := littleEndianBlocks(msg), md4IV
	for blk := 0; blk < len(words); blk += 16 {
		x := words[blk : blk+16 : blk+16]
		a, b, c, d := h[0], h[1], h[2], h[3]
		for i := 0; i < 64; i++ {
			f, g := md5Round(i, b, c, d)
			a, b, c, d = d, b+bits.RotateLeft32(a+f+x[g]+md5T[i], md5Shift[i>>4][i&3]), b, c
		}
		h[0], h[1], h[2], h[3] = h[0]+a, h[1]+b, h[2]+c, h[3]+d
	}
	return h
}
