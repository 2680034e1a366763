package keccak

import (
	"encoding/binary"
	"encoding/hex"
	"github.com/aead/chacha20/chacha"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
	"hash"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func squeeze(a State, size int) []byte {
	out := make([]byte, 0, 64)
	for _, v := range a[:(size+7)>>3] {
		out = binary.LittleEndian.AppendUint64(out, v)
	}
	return out[:size]
}

func TestAgainstXCrypto(t *testing.T) {
	t.Parallel()
	variants := []struct {
		rate, size int
		new        func() hash.Hash
	}{
		{Rate224, 28, sha3.New224},
		{Rate256, 32, sha3.New256},
		{Rate384, 48, sha3.New384},
		{Rate512, 64, sha3.New512},
	}

	nonce, key := [8]byte{}, [32]byte{3}
	for n := 0; n <= 600; n++ {
		msg := make([]byte, n)
		chacha.XORKeyStream(msg, msg, nonce[:], key[:], 20)
		for _, v := range variants {
			h := v.new()
			h.Write(msg)
			require.Equal(t, h.Sum(nil), squeeze(Sum(msg, v.rate), v.size), "rate %d over %d bytes", v.rate, n)
		}
	}
}

func TestVectors(t *testing.T) {
	t.Parallel()
	abc := []byte("abc")
	assert.Equal(t, "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf",
		hex.EncodeToString(squeeze(Sum(abc, Rate224), 28)))
	assert.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		hex.EncodeToString(squeeze(Sum(abc, Rate256), 32)))
	assert.Equal(t, "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b2"+
		"98d88cea927ac7f539f1edf228376d25", hex.EncodeToString(squeeze(Sum(abc, Rate384), 48)))
	assert.Equal(t, "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e"+
		"10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
		hex.EncodeToString(squeeze(Sum(abc, Rate512), 64)))
}

func TestF1600ZeroState(t *testing.T) {
	t.Parallel()
	/* First lane of Keccak-f[1600] applied once and twice to the all-zero state. */
	var a State
	F1600(&a)
	assert.Equal(t, uint64(0xf1258f7940e1dde7), a[0])
	F1600(&a)
	assert.Equal(t, uint64(0x2d5c954df96ecb3c), a[0])
}

func BenchmarkF1600(b *testing.B) {
	var a State
	b.SetBytes(Rate256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		F1600(&a)
	}
}
