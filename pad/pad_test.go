package pad

import (
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestStrengthen32Boundaries(t *testing.T) {
	t.Parallel()
	for n, blocks := range map[int]int{0: 1, 1: 1, 55: 1, 56: 2, 63: 2, 64: 2, 119: 2, 120: 3} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = 'a'
		}
		be, le := Strengthen32(msg, binary.BigEndian), Strengthen32(msg, binary.LittleEndian)
		require.Len(t, be, blocks*16, "length %d", n)
		require.Len(t, le, blocks*16, "length %d", n)

		assert.Equal(t, uint32(n<<3), be[len(be)-1], "big-endian length word for %d", n)
		assert.Zero(t, be[len(be)-2])
		assert.Equal(t, uint32(n<<3), le[len(le)-2], "little-endian length word for %d", n)
		assert.Zero(t, le[len(le)-1])

		marker := be[n>>2] >> (24 - 8*(n&3)) & 0xff
		assert.Equal(t, uint32(0x80), marker, "marker position for %d", n)
	}
}

func TestStrengthen64Boundaries(t *testing.T) {
	t.Parallel()
	for n, blocks := range map[int]int{0: 1, 111: 1, 112: 2, 127: 2, 128: 2, 239: 2, 240: 3} {
		words := Strengthen64(make([]byte, n), binary.BigEndian)
		require.Len(t, words, blocks*16, "length %d", n)
		assert.Equal(t, uint64(n<<3), words[len(words)-1])
		assert.Zero(t, words[len(words)-2])
		assert.Equal(t, uint64(0x80)<<(56-8*(n&7)), words[n>>3])
	}
}

func TestStrengthen64LittleEndian(t *testing.T) {
	t.Parallel()
	words := Strengthen64([]byte("abc"), binary.LittleEndian)
	require.Len(t, words, 16)
	assert.Equal(t, uint64(24), words[14])
	assert.Zero(t, words[15])
	assert.Equal(t, uint64(0x80636261), words[0])
}

func TestKeccak(t *testing.T) {
	t.Parallel()
	const rate = 136
	for _, n := range []int{0, 1, 134, rate - 1, rate, rate + 1, 2*rate - 1} {
		lanes := Keccak(make([]byte, n), rate)
		require.Zero(t, len(lanes)*8%rate, "length %d", n)
		require.GreaterOrEqual(t, len(lanes)*8, n+1)

		buf := make([]byte, len(lanes)*8)
		for i, v := range lanes {
			binary.LittleEndian.PutUint64(buf[i*8:], v)
		}
		if n%rate == rate-1 {
			assert.Equal(t, byte(0x86), buf[n], "length %d", n)
			assert.Len(t, buf, n+1)
			continue
		}
		assert.Equal(t, byte(0x06), buf[n], "length %d", n)
		assert.Equal(t, byte(0x80), buf[len(buf)-1], "length %d", n)
		for _, v := range buf[n+1 : len(buf)-1] {
			assert.Zero(t, v)
		}
	}
}

func TestMD6(t *testing.T) {
	t.Parallel()
	words, padBits := MD6(nil, 64)
	assert.Len(t, words, 64)
	assert.Equal(t, 4096, padBits)

	words, padBits = MD6([]byte("abc"), 64)
	assert.Len(t, words, 64)
	assert.Equal(t, 4096-24, padBits)
	assert.Equal(t, uint64(0x6162630000000000), words[0])

	words, padBits = MD6(make([]byte, 513), 64)
	assert.Len(t, words, 128)
	assert.Equal(t, 2*4096-513*8, padBits)

	words, padBits = MD6(make([]byte, 384), 48)
	assert.Len(t, words, 48)
	assert.Zero(t, padBits)
}

func TestZeroWords(t *testing.T) {
	t.Parallel()
	level := make([]uint64, 16, 64)
	for i := range level {
		level[i] = ^uint64(0)
	}
	dirty := level[:64]
	dirty[40] = 7 /* Stale capacity must not leak into the padded block. */

	words, padBits := ZeroWords(level, 16*64, 64)
	require.Len(t, words, 64)
	assert.Equal(t, 4096-1024, padBits)
	assert.Same(t, &level[0], &words[0])
	for _, v := range words[16:] {
		assert.Zero(t, v)
	}

	words, padBits = ZeroWords(make([]uint64, 80), 80*64, 64)
	assert.Len(t, words, 128)
	assert.Equal(t, 128*64-80*64, padBits)
}

func TestMD2(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16}, MD2(nil))

	buf := MD2([]byte("abc"))
	require.Len(t, buf, 16)
	assert.Equal(t, []byte("abc"), buf[:3])
	for _, v := range buf[3:] {
		assert.Equal(t, byte(13), v)
	}
	assert.Len(t, MD2(make([]byte, 16)), 32)
	assert.Equal(t, 48, cap(MD2(make([]byte, 16))))
}
