package digests

import (
	"github.com/p7r0x7/digests/keccak"
	"github.com/p7r0x7/digests/md"
	"github.com/p7r0x7/digests/md6"
	"github.com/pkg/errors"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Hasher is a validated pipeline. Hash is total and safe for concurrent use.
type Hasher struct {
	alg   Algorithm
	fixed bool
	tree  *md6.Reducer
}

// New returns a Hasher for a. MD6 tags use the default rounds, mode, and no key.
func New(a Algorithm) (*Hasher, error) {
	if !a.Available() {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "New: %v", a)
	}
	h := &Hasher{alg: a, fixed: true}
	if a.Family() == Tree {
		tree, err := md6.New(md6.Config{Size: a.Size()})
		if err != nil {
			return nil, err
		}
		h.tree = tree
	}
	return h, nil
}

// NewMD6 returns a Hasher for MD6 with explicit parameters, validated here once.
func NewMD6(cfg md6.Config) (*Hasher, error) {
	tree, err := md6.New(cfg)
	if err != nil {
		return nil, err
	}
	h := &Hasher{tree: tree, alg: MD6_256}
	for _, a := range [...]Algorithm{MD6_160, MD6_224, MD6_256, MD6_384, MD6_512} {
		if a.Size() == cfg.Size {
			h.alg = a
			h.fixed = cfg.Key.Len() == 0 && tree.Rounds() == md6.DefaultRounds(cfg.Size, false) &&
				tree.Mode() == md6.DefaultMode
		}
	}
	return h, nil
}

// Algorithm returns the tag h computes. ok is false for MD6 parameters that no fixed tag
// reproduces, such as a key or a nonstandard size.
func (h *Hasher) Algorithm() (a Algorithm, ok bool) { return h.alg, h.fixed }

// Size returns the digest size in bits.
func (h *Hasher) Size() int {
	if h.tree != nil {
		return h.tree.Size()
	}
	return h.alg.Size()
}

// Hash returns the digest of m.
func (h *Hasher) Hash(m Message) Digest {
	msg := m.buf
	switch h.alg {
	case MD2:
		sum := md.MD2(msg)
		return DigestFromBytes(sum[:])
	case MD4:
		sum := md.MD4(msg)
		return DigestFromWords32(sum[:], LittleEndian)
	case MD5:
		sum := md.MD5(msg)
		return DigestFromWords32(sum[:], LittleEndian)
	case SHA0:
		sum := md.SHA0(msg)
		return DigestFromWords32(sum[:], BigEndian)
	case SHA1:
		sum := md.SHA1(msg)
		return DigestFromWords32(sum[:], BigEndian)
	case SHA224:
		sum := md.SHA224(msg)
		return DigestFromWords32(sum[:7], BigEndian)
	case SHA256:
		sum := md.SHA256(msg)
		return DigestFromWords32(sum[:], BigEndian)
	case SHA384:
		sum := md.SHA384(msg)
		return DigestFromWords64(sum[:6], BigEndian)
	case SHA512:
		sum := md.SHA512(msg)
		return DigestFromWords64(sum[:], BigEndian)
	case SHA512_224:
		sum := md.SHA512_224(msg)
		return must(DigestFromWords64Range(sum[:4], BigEndian, 0, 28))
	case SHA512_256:
		sum := md.SHA512_256(msg)
		return DigestFromWords64(sum[:4], BigEndian)
	case SHA3_224:
		return squeeze(msg, keccak.Rate224, 28)
	case SHA3_256:
		return squeeze(msg, keccak.Rate256, 32)
	case SHA3_384:
		return squeeze(msg, keccak.Rate384, 48)
	case SHA3_512:
		return squeeze(msg, keccak.Rate512, 64)
	}
	return Digest{h.tree.Sum(msg), h.tree.Size()}
}

func squeeze(msg []byte, rate, size int) Digest {
	state := keccak.Sum(msg, rate)
	return must(DigestFromWords64Range(state[:(size+7)>>3], LittleEndian, 0, size))
}

// must unwraps ranges that are constant for their algorithm and so cannot be out of bounds.
func must(d Digest, err error) Digest {
	if err != nil {
		panic(err)
	}
	return d
}

// Sum hashes m under a. It fails only for an unavailable a.
func Sum(m Message, a Algorithm) (Digest, error) {
	h, err := New(a)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(m), nil
}

// SumMD6 hashes m under MD6 with explicit parameters.
func SumMD6(m Message, cfg md6.Config) (Digest, error) {
	h, err := NewMD6(cfg)
	if err != nil {
		return Digest{}, err
	}
	return h.Hash(m), nil
}

// Verify reports whether m hashes under a to the digest written in hex, in either case.
func Verify(m Message, a Algorithm, hexDigest string) (bool, error) {
	want, err := DigestFromHex(strings.TrimSpace(hexDigest))
	if err != nil {
		return false, err
	}
	got, err := Sum(m, a)
	if err != nil {
		return false, err
	}
	return got.Equal(want), nil
}
