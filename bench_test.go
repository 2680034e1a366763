package digests

import (
	"github.com/p7r0x7/digests/md6"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func benchHasher(b *testing.B, h *Hasher, size int) {
	m := stream(size, 0)
	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash(m)
	}
}

func BenchmarkSHA256_64K(b *testing.B) {
	h, _ := New(SHA256)
	benchHasher(b, h, 64<<10)
}

func BenchmarkSHA3_256_64K(b *testing.B) {
	h, _ := New(SHA3_256)
	benchHasher(b, h, 64<<10)
}

func BenchmarkMD6_256_1M(b *testing.B) {
	h, _ := New(MD6_256)
	benchHasher(b, h, 1<<20)
}

func BenchmarkMD6_256_1M_Workers(b *testing.B) {
	h, _ := NewMD6(md6.Config{Size: 256, Workers: 8})
	benchHasher(b, h, 1<<20)
}

func BenchmarkBlake3_64K(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 64<<10)
	b.SetBytes(64 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
		h.Reset()
	}
}

func BenchmarkXXH3_64K(b *testing.B) {
	msg := make([]byte, 64<<10)
	b.SetBytes(64 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
