package digests

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Multihash prefixes d with the varint multicodec code of a and its length in bytes.
func (d Digest) Multihash(a Algorithm) ([]byte, error) {
	code, ok := a.Multicodec()
	if !ok {
		return nil, errors.Wrapf(ErrNoMulticodec, "%v", a)
	}
	if d.bits != a.Size() {
		return nil, errors.Wrapf(ErrMultihash, "%d-bit digest for %v", d.bits, a)
	}
	mh, err := multihash.Encode(d.buf, uint64(code))
	if err != nil {
		return nil, errors.Wrap(ErrMultihash, err.Error())
	}
	return mh, nil
}

// DigestFromMultihash is the inverse of Multihash. The code must belong to an Algorithm and the
// length must match its size.
func DigestFromMultihash(b []byte) (Digest, Algorithm, error) {
	dec, err := multihash.Decode(b)
	if err != nil {
		return Digest{}, 0, errors.Wrap(ErrMultihash, err.Error())
	}
	for a := Algorithm(0); a < numAlgorithms; a++ {
		if code, ok := a.Multicodec(); !ok || uint64(code) != dec.Code {
			continue
		}
		if dec.Length<<3 != a.Size() {
			return Digest{}, 0, errors.Wrapf(ErrMultihash, "%d bytes for %v", dec.Length, a)
		}
		return DigestFromBytes(dec.Digest), a, nil
	}
	return Digest{}, 0, errors.Wrapf(ErrMultihash, "unsupported code %v", multicodec.Code(dec.Code))
}

// Encode renders d in the named multibase encoding, such as "base32" or "base58btc". The result
// carries the encoding's prefix character.
func (d Digest) Encode(base string) (string, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", errors.Wrapf(ErrEncoding, "%q", base)
	}
	return enc.Encode(d.buf), nil
}

// DigestFromMultibase decodes the output of Encode in any multibase encoding.
func DigestFromMultibase(s string) (Digest, error) {
	_, buf, err := multibase.Decode(s)
	if err != nil {
		return Digest{}, errors.Wrap(ErrEncoding, err.Error())
	}
	return Digest{buf, len(buf) << 3}, nil
}

// CID wraps the multihash of d in a version 1 content identifier for raw bytes.
func (d Digest) CID(a Algorithm) (cid.Cid, error) {
	mh, err := d.Multihash(a)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
