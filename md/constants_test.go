package md

import (
	"github.com/stretchr/testify/assert"
	"math/big"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The constant tables are re-derived here from their definitions, with exact integer roots.

func primes(n int) []int64 {
	out := make([]int64, 0, n)
	for i := int64(2); len(out) < n; i++ {
		prime := true
		for _, p := range out {
			if i%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			out = append(out, i)
		}
	}
	return out
}

// fracRoot returns the first bits bits of the fractional part of the root-th root of p, for root
// 2 or 3, as floor(root(p * 2^(bits*root))) mod 2^bits.
func fracRoot(p int64, root, bits uint) uint64 {
	n := new(big.Int).Lsh(big.NewInt(p), bits*root)
	var r *big.Int
	if root == 2 {
		r = new(big.Int).Sqrt(n)
	} else {
		r = new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()/3+1))
		for three := big.NewInt(3); ; {
			y := new(big.Int).Mul(r, r)
			y.Quo(n, y).Add(y, new(big.Int).Lsh(r, 1)).Quo(y, three)
			if y.Cmp(r) >= 0 {
				break
			}
			r = y
		}
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
	return r.And(r, mask).Uint64()
}

func TestSHA2RoundConstants(t *testing.T) {
	t.Parallel()
	p := primes(80)
	for i, k := range sha256K {
		assert.Equal(t, uint64(k), fracRoot(p[i], 3, 32), "sha256K[%d]", i)
	}
	for i, k := range sha512K {
		assert.Equal(t, k, fracRoot(p[i], 3, 64), "sha512K[%d]", i)
	}
}

func TestSHA2InitialValues(t *testing.T) {
	t.Parallel()
	p := primes(16)
	for i := 0; i < 8; i++ {
		assert.Equal(t, uint64(sha256IV[i]), fracRoot(p[i], 2, 32), "sha256IV[%d]", i)
		assert.Equal(t, sha512IV[i], fracRoot(p[i], 2, 64), "sha512IV[%d]", i)
		assert.Equal(t, sha384IV[i], fracRoot(p[i+8], 2, 64), "sha384IV[%d]", i)
		assert.Equal(t, uint64(sha224IV[i]), fracRoot(p[i+8], 2, 64)&0xffffffff, "sha224IV[%d]", i)
	}
}

// TestTruncatedIVs derives the SHA-512/t chaining values by hashing "SHA-512/t" under the SHA-512
// IV with every word XORed by 0xa5a5a5a5a5a5a5a5.
func TestTruncatedIVs(t *testing.T) {
	t.Parallel()
	iv := sha512IV
	for i := range iv {
		iv[i] ^= 0xa5a5a5a5a5a5a5a5
	}
	assert.Equal(t, sha512t224IV, sha512Blocks([]byte("SHA-512/224"), iv))
	assert.Equal(t, sha512t256IV, sha512Blocks([]byte("SHA-512/256"), iv))
}

func TestMD5SineTable(t *testing.T) {
	t.Parallel()
	const prec = 1024
	two32 := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), 32)
	for i, want := range md5T {
		x := new(big.Float).SetPrec(prec).SetInt64(int64(i + 1))
		x2 := new(big.Float).SetPrec(prec).Mul(x, x)

		/* Taylor series; x <= 64 converges well within 300 terms at this precision. */
		sum, term := new(big.Float).SetPrec(prec).Set(x), new(big.Float).SetPrec(prec).Set(x)
		for k := int64(1); k < 300; k++ {
			term.Mul(term, x2).Quo(term, big.NewFloat(float64(-(2*k)*(2*k+1))))
			sum.Add(sum, term)
		}
		got, _ := sum.Abs(sum).Mul(sum, two32).Uint64()
		assert.Equal(t, uint64(want), got, "md5T[%d]", i)
	}
}
