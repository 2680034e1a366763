package digests

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestMessage(t *testing.T) {
	t.Parallel()
	src := []byte("hello")
	m := MessageFromBytes(src)
	src[0] = 'j'
	assert.Equal(t, "hello", string(m.Bytes()), "constructor copies")
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, uint64(40), m.BitLen())

	out := m.Bytes()
	out[0] = 'y'
	assert.Equal(t, "hello", string(m.Bytes()), "accessor copies")

	assert.Equal(t, uint64(len("Grüße")*8), MessageFromString("Grüße").BitLen())
	assert.Zero(t, MessageFromString("").BitLen())
}

func TestHexRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "00", "DEADbeef", "0123456789abcdefABCDEF", "ff00ff00ff"} {
		m, err := MessageFromHex(s)
		require.NoError(t, err, s)
		assert.Equal(t, toLower(s), m.Hex())

		d, err := DigestFromHex(s)
		require.NoError(t, err, s)
		assert.Equal(t, toLower(s), d.Hex())
		assert.Equal(t, len(s)*4, d.Size())
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestMalformedHex(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"0", "abc", "zz", "0g", "12 4", "१२"} {
		_, err := MessageFromHex(s)
		assert.True(t, errors.Is(err, ErrMalformedHex), "%q: %v", s, err)
		_, err = DigestFromHex(s)
		assert.True(t, errors.Is(err, ErrMalformedHex), "%q: %v", s, err)
	}
}

func TestDigestFromWords(t *testing.T) {
	t.Parallel()
	words32 := []uint32{0x01020304, 0x05060708}
	assert.Equal(t, "0102030405060708", DigestFromWords32(words32, BigEndian).Hex())
	assert.Equal(t, "0403020108070605", DigestFromWords32(words32, LittleEndian).Hex())

	words64 := []uint64{0x0102030405060708}
	assert.Equal(t, "0102030405060708", DigestFromWords64(words64, BigEndian).Hex())
	assert.Equal(t, "0807060504030201", DigestFromWords64(words64, LittleEndian).Hex())

	d, err := DigestFromWords64Range(words64, BigEndian, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "030405", d.Hex())
	assert.Equal(t, 24, d.Size())

	d, err = DigestFromWords32Range(words32, LittleEndian, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, 64, d.Size())

	d, err = DigestFromWords32Range(words32, BigEndian, 3, 3)
	require.NoError(t, err)
	assert.Zero(t, d.Size())
}

func TestDigestRangeErrors(t *testing.T) {
	t.Parallel()
	words := []uint32{1, 2}
	for _, r := range [][2]int{{5, 4}, {0, 9}, {-1, 2}, {9, 12}} {
		_, err := DigestFromWords32Range(words, BigEndian, r[0], r[1])
		assert.True(t, errors.Is(err, ErrRange), "%v: %v", r, err)
		_, err = DigestFromWords64Range([]uint64{1}, LittleEndian, r[0], r[1])
		assert.True(t, errors.Is(err, ErrRange), "%v: %v", r, err)
	}
}

func TestDigestEqual(t *testing.T) {
	t.Parallel()
	a, b := DigestFromBytes([]byte{1, 2}), DigestFromBytes([]byte{1, 2})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(DigestFromBytes([]byte{1, 2, 0})))
	assert.False(t, a.Equal(Digest{[]byte{1, 2}, 12}))

	out := a.Bytes()
	out[0] = 9
	assert.True(t, a.Equal(b), "accessor copies")
}

func TestEndianness(t *testing.T) {
	t.Parallel()
	assert.Equal(t, binary.ByteOrder(binary.BigEndian), BigEndian.ByteOrder())
	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), LittleEndian.ByteOrder())
	assert.Equal(t, "little-endian", LittleEndian.String())
	assert.Equal(t, "big-endian", BigEndian.String())
}
