// Package register adds hashers from this module to the go-multihash registry for codes that
// go-multihash does not implement itself. It is meant to be imported for its side effect:
//
//	import _ "github.com/p7r0x7/digests/register"
package register

import (
	"github.com/multiformats/go-multihash/core"
	"github.com/p7r0x7/digests"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func init() {
	for _, a := range [...]digests.Algorithm{digests.MD4} {
		code, _ := a.Multicodec()
		multihash.Register(uint64(code), factory(a))
	}
}

func factory(a digests.Algorithm) func() hash.Hash {
	h, err := digests.New(a)
	if err != nil {
		panic(err)
	}
	return h.NewHash
}
