package register

import (
	"github.com/multiformats/go-multihash"
	"github.com/p7r0x7/digests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestMD4Registered(t *testing.T) {
	t.Parallel()
	code, ok := digests.MD4.Multicodec()
	require.True(t, ok)

	mh, err := multihash.Sum([]byte("abc"), uint64(code), -1)
	require.NoError(t, err)

	d, a, err := digests.DigestFromMultihash(mh)
	require.NoError(t, err)
	assert.Equal(t, digests.MD4, a)
	assert.Equal(t, "a448017aaf21d8525fc10ae87aa6729d", d.Hex())
}
