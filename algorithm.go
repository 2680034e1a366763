package digests

import (
	"github.com/multiformats/go-multicodec"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Algorithm identifies one digest pipeline. The set is closed; Available reports membership.
type Algorithm uint8

const (
	MD2 Algorithm = iota
	MD4
	MD5
	SHA0
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	MD6_160
	MD6_224
	MD6_256
	MD6_384
	MD6_512
	numAlgorithms
)

// Family is the construction an Algorithm is built on.
type Family uint8

const (
	MerkleDamgard Family = iota
	Sponge
	Tree
)

func (f Family) String() string {
	switch f {
	case MerkleDamgard:
		return "merkle-damgard"
	case Sponge:
		return "sponge"
	case Tree:
		return "tree"
	}
	return "family(" + strconv.Itoa(int(f)) + ")"
}

var algorithms = [numAlgorithms]struct {
	name   string
	size   int /* Bits */
	block  int /* Bytes absorbed per compression */
	family Family
	code   multicodec.Code /* Identity means unassigned. */
}{
	MD2:        {"md2", 128, 16, MerkleDamgard, multicodec.Identity},
	MD4:        {"md4", 128, 64, MerkleDamgard, multicodec.Md4},
	MD5:        {"md5", 128, 64, MerkleDamgard, multicodec.Md5},
	SHA0:       {"sha0", 160, 64, MerkleDamgard, multicodec.Identity},
	SHA1:       {"sha1", 160, 64, MerkleDamgard, multicodec.Sha1},
	SHA224:     {"sha224", 224, 64, MerkleDamgard, multicodec.Sha2_224},
	SHA256:     {"sha256", 256, 64, MerkleDamgard, multicodec.Sha2_256},
	SHA384:     {"sha384", 384, 128, MerkleDamgard, multicodec.Sha2_384},
	SHA512:     {"sha512", 512, 128, MerkleDamgard, multicodec.Sha2_512},
	SHA512_224: {"sha512-224", 224, 128, MerkleDamgard, multicodec.Sha2_512_224},
	SHA512_256: {"sha512-256", 256, 128, MerkleDamgard, multicodec.Sha2_512_256},
	SHA3_224:   {"sha3-224", 224, 144, Sponge, multicodec.Sha3_224},
	SHA3_256:   {"sha3-256", 256, 136, Sponge, multicodec.Sha3_256},
	SHA3_384:   {"sha3-384", 384, 104, Sponge, multicodec.Sha3_384},
	SHA3_512:   {"sha3-512", 512, 72, Sponge, multicodec.Sha3_512},
	MD6_160:    {"md6-160", 160, 512, Tree, multicodec.Identity},
	MD6_224:    {"md6-224", 224, 512, Tree, multicodec.Identity},
	MD6_256:    {"md6-256", 256, 512, Tree, multicodec.Identity},
	MD6_384:    {"md6-384", 384, 512, Tree, multicodec.Identity},
	MD6_512:    {"md6-512", 512, 512, Tree, multicodec.Identity},
}

var byName = func() map[string]Algorithm {
	m := make(map[string]Algorithm, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		m[algorithms[a].name] = a
	}
	return m
}()

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// ParseAlgorithm maps a canonical name such as "sha512-256" back to its Algorithm. Case is ignored,
// and '_' or '/' may stand in for '-'.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("_", "-", "/", "-").Replace(strings.ToLower(name))
	if a, ok := byName[key]; ok {
		return a, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Available reports whether a names a supported algorithm.
func (a Algorithm) Available() bool { return a < numAlgorithms }

// String returns the canonical lowercase name of a.
func (a Algorithm) String() string {
	if !a.Available() {
		return "algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithms[a].name
}

// Size returns the digest size of a in bits, or 0 if a is unavailable.
func (a Algorithm) Size() int {
	if !a.Available() {
		return 0
	}
	return algorithms[a].size
}

// Family returns the construction a is built on.
func (a Algorithm) Family() Family {
	if !a.Available() {
		return Family(255)
	}
	return algorithms[a].family
}

// Multicodec returns the multihash code assigned to a, if there is one.
func (a Algorithm) Multicodec() (multicodec.Code, bool) {
	if !a.Available() || algorithms[a].code == multicodec.Identity {
		return multicodec.Identity, false
	}
	return algorithms[a].code, true
}

// BlockSize returns how many message bytes a absorbs per compression or permutation.
func (a Algorithm) BlockSize() int {
	if !a.Available() {
		return 0
	}
	return algorithms[a].block
}
