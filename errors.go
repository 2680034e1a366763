package digests

import "github.com/pkg/errors"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Validation failures. Every error returned by this package wraps one of these; test with errors.Is.
var (
	ErrMalformedHex     = errors.New("digests: malformed hex")
	ErrRange            = errors.New("digests: byte range out of bounds")
	ErrUnknownAlgorithm = errors.New("digests: unknown algorithm")
	ErrNoMulticodec     = errors.New("digests: algorithm has no multicodec")
	ErrMultihash        = errors.New("digests: invalid multihash")
	ErrEncoding         = errors.New("digests: unknown text encoding")
)
