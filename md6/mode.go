package md6

import (
	"encoding/binary"
	"github.com/p7r0x7/digests/pad"
	"golang.org/x/sync/errgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Sum returns the ceil(d/8)-byte digest of msg. When d is not a multiple of 8, the digest bits are
// left-aligned and the low bits of the last byte are zero.
func (r *Reducer) Sum(msg []byte) []byte {
	words, padBits := pad.MD6(msg, r.blockWords(1))

	var final [c]uint64
	for level := 1; ; level++ {
		if level == r.mode+1 {
			final = r.seq(words, padBits, level)
			break
		}
		words = r.par(words, padBits, level)
		if len(words) == c {
			copy(final[:], words)
			break
		}
		words, padBits = pad.ZeroWords(words, len(words)<<6, r.blockWords(level+1))
	}
	return trim(&final, r.size)
}

// blockWords is the data width of each compression at level: whole 64-word chunks in the tree,
// 48 words beside the chaining value once sequential chaining takes over.
func (r *Reducer) blockWords(level int) int {
	if level == r.mode+1 {
		return b - c
	}
	return b
}

// par compresses every 64-word chunk of in independently and returns their concatenated chaining
// values. Only the last chunk carries the level's padBits.
func (r *Reducer) par(in []uint64, padBits, level int) []uint64 {
	chunks := len(in) / b
	if r.trace != nil {
		r.trace(level, chunks)
	}
	z := 0
	if chunks == 1 {
		z = 1
	}

	/* Capacity leaves room for the next level's zero padding. */
	out := make([]uint64, chunks*c, (chunks*c+b-1)/b*b)
	run := func(arena []uint64, lo, hi int) {
		var input [n]uint64
		for i := lo; i < hi; i++ {
			p := 0
			if i == chunks-1 {
				p = padBits
			}
			pack(&input, &r.key.words, nodeID(level, i),
				controlWord(r.rounds, r.mode, z, p, r.key.size, r.size), in[i*b:(i+1)*b])
			cv := compress(arena, &input, r.rounds)
			copy(out[i*c:(i+1)*c], cv[:])
		}
	}

	if r.workers < 2 || chunks < 2 {
		run(make([]uint64, arenaSize(r.rounds)), 0, chunks)
		return out
	}
	var g errgroup.Group
	span := (chunks + r.workers - 1) / r.workers
	for lo := 0; lo < chunks; lo += span {
		lo, hi := lo, min(lo+span, chunks)
		g.Go(func() error {
			run(make([]uint64, arenaSize(r.rounds)), lo, hi)
			return nil
		})
	}
	_ = g.Wait() /* Compression cannot fail. */
	return out
}

// seq chains the 48-word blocks of in through one compression each, every block carrying the
// previous chaining value; the first starts from zero.
func (r *Reducer) seq(in []uint64, padBits, level int) [c]uint64 {
	const data = b - c
	blocks := len(in) / data
	if r.trace != nil {
		r.trace(level, blocks)
	}

	var cv [c]uint64
	var block [b]uint64
	var input [n]uint64
	arena := make([]uint64, arenaSize(r.rounds))
	for i := 0; i < blocks; i++ {
		z, p := 0, 0
		if i == blocks-1 {
			z, p = 1, padBits
		}
		copy(block[:c], cv[:])
		copy(block[c:], in[i*data:(i+1)*data])
		pack(&input, &r.key.words, nodeID(level, i),
			controlWord(r.rounds, r.mode, z, p, r.key.size, r.size), block[:])
		cv = compress(arena, &input, r.rounds)
	}
	return cv
}

// trim keeps the trailing d bits of the final chaining value.
func trim(cv *[c]uint64, d int) []byte {
	var full [c << 3]byte
	for i, v := range cv {
		binary.BigEndian.PutUint64(full[i<<3:], v)
	}
	size := (d + 7) >> 3
	out := make([]byte, size)
	copy(out, full[len(full)-size:])

	if rem := uint(d & 7); rem > 0 {
		for i := range out {
			out[i] <<= 8 - rem
			if i+1 < size {
				out[i] |= out[i+1] >> rem
			}
		}
	}
	return out
}
