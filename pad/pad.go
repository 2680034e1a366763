// Package pad maps whole messages onto block-aligned word sequences for each digest family:
// Merkle–Damgård strengthening, Keccak pad10*1, MD6 zero extension, and MD2's byte padding.
package pad

import "encoding/binary"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Strengthen32 pads msg into 64-byte blocks: a single 1 bit, zeroes up to 56 bytes mod 64, then the
// message length in bits as a 64-bit integer in order. The result is decoded into words by order.
func Strengthen32(msg []byte, order binary.ByteOrder) []uint32 {
	buf := strengthen(msg, 64, 8)
	order.PutUint64(buf[len(buf)-8:], uint64(len(msg))<<3)

	words := make([]uint32, len(buf)>>2)
	for i := range words {
		words[i] = order.Uint32(buf[i<<2:])
	}
	return words
}

// Strengthen64 pads msg into 128-byte blocks the way Strengthen32 does, except that the message
// length is written as a 128-bit integer.
func Strengthen64(msg []byte, order binary.ByteOrder) []uint64 {
	buf := strengthen(msg, 128, 16)
	hi, lo := uint64(len(msg))>>61, uint64(len(msg))<<3
	if order == binary.LittleEndian {
		hi, lo = lo, hi
	}
	order.PutUint64(buf[len(buf)-16:], hi)
	order.PutUint64(buf[len(buf)-8:], lo)

	words := make([]uint64, len(buf)>>3)
	for i := range words {
		words[i] = order.Uint64(buf[i<<3:])
	}
	return words
}

// strengthen returns a zeroed copy of msg sized to whole blocks with room for the 0x80 marker and
// a trailing length field of lenSize bytes.
func strengthen(msg []byte, block, lenSize int) []byte {
	n := len(msg) + 1 + lenSize
	n += (block - n%block) % block
	buf := make([]byte, n)
	copy(buf, msg)
	buf[len(msg)] = 0x80
	return buf
}

// Keccak applies pad10*1 with the SHA-3 domain bits for a sponge of rate bytes, returning the
// padded message as little-endian lanes. rate must be a positive multiple of 8.
func Keccak(msg []byte, rate int) []uint64 {
	n := len(msg) + 1
	n += (rate - n%rate) % rate
	buf := make([]byte, n)
	copy(buf, msg)
	if len(msg)%rate == rate-1 {
		buf[len(msg)] = 0x86
	} else {
		buf[len(msg)] = 0x06
		buf[n-1] = 0x80
	}

	lanes := make([]uint64, n>>3)
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(buf[i<<3:])
	}
	return lanes
}

// MD6 zero-extends msg to a positive whole number of blocks of blockWords big-endian words and
// reports how many bits of the result are padding. An empty message still yields one block.
func MD6(msg []byte, blockWords int) ([]uint64, int) {
	blockBytes := blockWords << 3
	blocks := max(1, (len(msg)+blockBytes-1)/blockBytes)
	words := make([]uint64, blocks*blockWords)

	full := len(msg) >> 3
	for i := 0; i < full; i++ {
		words[i] = binary.BigEndian.Uint64(msg[i<<3:])
	}
	if rem := msg[full<<3:]; len(rem) > 0 {
		var last [8]byte
		copy(last[:], rem)
		words[full] = binary.BigEndian.Uint64(last[:])
	}
	return words, blocks*blockBytes*8 - len(msg)*8
}

// ZeroWords is the word-level form of MD6 for an intermediate level whose first bitLen bits are
// significant. words is re-sliced in place when its capacity allows.
func ZeroWords(words []uint64, bitLen, blockWords int) ([]uint64, int) {
	blockBits := blockWords << 6
	blocks := max(1, (bitLen+blockBits-1)/blockBits)
	total := blocks * blockWords

	if cap(words) < total {
		grown := make([]uint64, total)
		copy(grown, words)
		words = grown
	} else {
		used := min(len(words), (bitLen+63)>>6)
		words = words[:total]
		clear(words[used:])
	}
	return words, blocks*blockBits - bitLen
}

// MD2 appends between 1 and 16 bytes, each holding the count of bytes appended, so that the
// result is a whole number of 16-byte blocks. The checksum block is left to the caller.
func MD2(msg []byte) []byte {
	fill := 16 - len(msg)%16
	buf := make([]byte, len(msg)+fill, len(msg)+fill+16)
	copy(buf, msg)
	for i := len(msg); i < len(buf); i++ {
		buf[i] = byte(fill)
	}
	return buf
}
