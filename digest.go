package digests

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"github.com/pkg/errors"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Endianness is the byte order an algorithm serializes its words in.
type Endianness uint8

const (
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// ByteOrder returns the encoding/binary order matching e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Digest is the output of one hash computation. Its size is counted in bits; MD6 digests whose
// size is not a whole number of bytes are left-aligned in their final byte.
type Digest struct {
	buf  []byte
	bits int
}

// DigestFromBytes copies b into a digest of len(b)*8 bits.
func DigestFromBytes(b []byte) Digest {
	return Digest{append([]byte(nil), b...), len(b) << 3}
}

// DigestFromHex decodes s, which must have an even number of hex digits in either case.
func DigestFromHex(s string) (Digest, error) {
	buf, err := decodeHex(s)
	if err != nil {
		return Digest{}, err
	}
	return Digest{buf, len(buf) << 3}, nil
}

// DigestFromWords32 serializes words in order e.
func DigestFromWords32(words []uint32, e Endianness) Digest {
	buf, order := make([]byte, len(words)<<2), e.ByteOrder()
	for i, v := range words {
		order.PutUint32(buf[i<<2:], v)
	}
	return Digest{buf, len(buf) << 3}
}

// DigestFromWords64 serializes words in order e.
func DigestFromWords64(words []uint64, e Endianness) Digest {
	buf, order := make([]byte, len(words)<<3), e.ByteOrder()
	for i, v := range words {
		order.PutUint64(buf[i<<3:], v)
	}
	return Digest{buf, len(buf) << 3}
}

// DigestFromWords32Range serializes words in order e and keeps bytes [start, end).
func DigestFromWords32Range(words []uint32, e Endianness, start, end int) (Digest, error) {
	return DigestFromWords32(words, e).slice(start, end)
}

// DigestFromWords64Range serializes words in order e and keeps bytes [start, end).
func DigestFromWords64Range(words []uint64, e Endianness, start, end int) (Digest, error) {
	return DigestFromWords64(words, e).slice(start, end)
}

func (d Digest) slice(start, end int) (Digest, error) {
	if start < 0 || start > end || end > len(d.buf) {
		return Digest{}, errors.Wrapf(ErrRange, "[%d, %d) of %d bytes", start, end, len(d.buf))
	}
	return Digest{d.buf[start:end:end], (end - start) << 3}, nil
}

// Bytes returns a copy of the digest.
func (d Digest) Bytes() []byte { return append([]byte(nil), d.buf...) }

// Size returns the digest size in bits.
func (d Digest) Size() int { return d.bits }

// Hex returns the digest as lowercase hex, two characters per byte.
func (d Digest) Hex() string { return hex.EncodeToString(d.buf) }

func (d Digest) String() string { return d.Hex() }

// Equal reports whether d and o hold the same bits.
func (d Digest) Equal(o Digest) bool { return d.bits == o.bits && bytes.Equal(d.buf, o.buf) }
