package main

import (
	"encoding/binary"
	. "fmt"
	"github.com/aead/chacha20/chacha"
	"github.com/p7r0x7/digests"
	"math/big"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = 1 << 12

// stream returns n bytes of ChaCha20 keystream, distinct per seed.
func stream(n int, seed byte) []byte {
	nonce, key, msg := [8]byte{}, [32]byte{seed, 0x5a}, make([]byte, n)
	chacha.XORKeyStream(msg, msg, nonce[:], key[:], 20)
	return msg
}

// meanBias returns how far, on average, each output bit strays from being set in half of hashes,
// as a percentage of that half.
func meanBias(hashes []*big.Int, bits int) float64 {
	tally := make([]int, bits)
	for _, h := range hashes {
		for i := bits - 1; i >= 0; i-- {
			if h.Bit(i) == 1 {
				tally[i]++
			}
		}
	}
	total := 0
	for i := range tally {
		total += max(tally[i]-len(hashes)>>1, len(hashes)>>1-tally[i])
	}
	return float64(total) / float64(bits) / float64(len(hashes)>>1) * 100
}

// monobit hashes counters and random messages under every algorithm and prints the bias of each.
func monobit() {
	Println("Monobit bias     integers    random")
	for _, a := range digests.Algorithms() {
		h, err := digests.New(a)
		if err != nil {
			panic(err)
		}
		integers, random := make([]*big.Int, ints), make([]*big.Int, ints)
		for i := 0; i < ints; i++ {
			counter := make([]byte, 4)
			binary.BigEndian.PutUint32(counter, uint32(i))
			integers[i] = big.NewInt(0).SetBytes(h.Hash(digests.MessageFromBytes(counter)).Bytes())
			msg := stream(64, byte(i))
			random[i] = big.NewInt(0).SetBytes(h.Hash(digests.MessageFromBytes(msg)).Bytes())
		}
		Printf("%-15s %8.3f%% %8.3f%%\n", a, meanBias(integers, a.Size()), meanBias(random, a.Size()))
	}
}
