package md6

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Dimensions of one compression, in 64-bit words.
const (
	n = 89 /* Compression input */
	c = 16 /* Chaining value and output */
	b = 64 /* Data block */
	k = 8  /* Key */
	q = 15 /* Fixed prefix */
)

// Feedback taps, as distances back from the word being computed.
const t0, t1, t2, t3, t4, t5 = 17, 18, 21, 31, 67, n

// MaxRounds bounds the round count of a single compression.
const MaxRounds = 255

var (
	/* Q is the first 960 bits of the fractional part of sqrt(6). */
	qWords = [q]uint64{
		0x7311c2812425cfa0, 0x6432286434aac8e7, 0xb60450e9ef68b7c1, 0xe8fb23908d9f06f1,
		0xdd2e76cba691e5bf, 0x0cd0d63b2c30bc41, 0x1f8ccf6823058f8a, 0x54e5ed5b88e3775d,
		0x4ad12aae0a6d6031, 0x3e7f16bb88222e0d, 0x8af8671d3fb50c2c, 0x995ad1178bd25c31,
		0xc878c1dd04c4b633, 0x3b72066c7a1552ac, 0x0d6f3522631effcb,
	}
	rightShifts = [c]uint{10, 5, 13, 10, 11, 12, 2, 7, 14, 15, 7, 13, 11, 7, 6, 12}
	leftShifts  = [c]uint{11, 24, 9, 16, 15, 9, 27, 15, 6, 2, 29, 8, 15, 5, 31, 9}

	/* S_0 seeds the per-round constants; each later S_j rotates and masks its predecessor. */
	roundConstants = func() (s [MaxRounds]uint64) {
		const s0, mask = 0x0123456789abcdef, 0x7311c2812425cfa0
		s[0] = s0
		for j := 1; j < MaxRounds; j++ {
			v := s[j-1]
			s[j] = v<<1 ^ v>>63 ^ v&mask
		}
		return
	}()
)

// arenaSize is the number of words one compression of r rounds writes.
func arenaSize(r int) int { return n + r*c }

// compress runs r rounds of the MD6 feedback shift register over in, using a as scratch space of
// at least arenaSize(r) words, and returns the final 16 words.
func compress(a []uint64, in *[n]uint64, r int) (out [c]uint64) {
	a = a[:arenaSize(r)]
	copy(a, in[:])
	for j, i := 0, n; j < r; j, i = j+1, i+c {
		s := roundConstants[j]
		for step := 0; step < c; step++ {
			at := i + step
			x := s ^ a[at-t5] ^ a[at-t0] ^ a[at-t1]&a[at-t2] ^ a[at-t3]&a[at-t4]
			x ^= x >> rightShifts[step]
			a[at] = x ^ x<<leftShifts[step]
		}
	}
	copy(out[:], a[len(a)-c:])
	return
}

// controlWord is V: rounds, mode, final flag, padding bits, key length, and digest size.
func controlWord(r, l, z, p, keyLen, d int) uint64 {
	return uint64(r)<<48 | uint64(l)<<40 | uint64(z)<<36 | uint64(p)<<20 | uint64(keyLen)<<12 | uint64(d)
}

// nodeID is U: the level number and the chunk index within that level.
func nodeID(level int, index int) uint64 { return uint64(level)<<56 | uint64(index)&(1<<56-1) }

// pack lays out one compression input: Q, the key, U, V, then a 64-word block.
func pack(in *[n]uint64, key *[k]uint64, u, v uint64, block []uint64) {
	copy(in[:q], qWords[:])
	copy(in[q:q+k], key[:])
	in[q+k], in[q+k+1] = u, v
	copy(in[q+k+2:], block[:b])
}
