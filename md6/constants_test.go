package md6

import (
	"github.com/stretchr/testify/assert"
	"math/big"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestQIsSqrt6(t *testing.T) {
	t.Parallel()
	const bits = q * 64
	root := new(big.Int).Sqrt(new(big.Int).Lsh(big.NewInt(6), 2*bits))
	root.Sub(root, new(big.Int).Lsh(big.NewInt(2), bits)) /* Drop the integer part. */

	var buf [q * 8]byte
	root.FillBytes(buf[:])
	for i, want := range qWords {
		got := new(big.Int).SetBytes(buf[i*8 : i*8+8]).Uint64()
		assert.Equal(t, want, got, "Q[%d]", i)
	}
}
