// Package md implements the Merkle–Damgård compression cores: MD2, MD4, MD5, SHA-0, SHA-1, and the
// SHA-2 family. Each entry point pads a whole message, runs every block through the algorithm's
// rounds, and returns the final chaining state; serialization and truncation belong to the caller.
package md

import (
	"encoding/binary"
	"github.com/p7r0x7/digests/pad"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Chaining values shared by the 32-bit families.
var (
	md4IV  = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
	sha1IV = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
)

func littleEndianBlocks(msg []byte) []uint32 { return pad.Strengthen32(msg, binary.LittleEndian) }
func bigEndianBlocks(msg []byte) []uint32    { return pad.Strengthen32(msg, binary.BigEndian) }
