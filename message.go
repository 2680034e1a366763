// Package digests hashes whole messages under MD2, MD4, MD5, SHA-0, SHA-1, SHA-2, SHA-3, and MD6.
// A Message goes in, an Algorithm picks the pipeline, and a Digest comes out:
//
//	d, err := digests.Sum(digests.MessageFromString("abc"), digests.SHA3_256)
//
// Hashing never fails once its inputs are constructed; only constructors validate.
package digests

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Message is an immutable byte string to be hashed.
type Message struct{ buf []byte }

// MessageFromBytes copies b.
func MessageFromBytes(b []byte) Message { return Message{append([]byte(nil), b...)} }

// MessageFromString holds the UTF-8 bytes of s.
func MessageFromString(s string) Message { return Message{[]byte(s)} }

// MessageFromHex decodes s, which must have an even number of hex digits in either case.
func MessageFromHex(s string) (Message, error) {
	buf, err := decodeHex(s)
	if err != nil {
		return Message{}, err
	}
	return Message{buf}, nil
}

// Bytes returns a copy of the message.
func (m Message) Bytes() []byte { return append([]byte(nil), m.buf...) }

// Len returns the message length in bytes.
func (m Message) Len() int { return len(m.buf) }

// BitLen returns the message length in bits.
func (m Message) BitLen() uint64 { return uint64(len(m.buf)) << 3 }

// Hex returns the message as lowercase hex.
func (m Message) Hex() string { return hex.EncodeToString(m.buf) }

func decodeHex(s string) ([]byte, error) {
	if len(s)&1 == 1 {
		return nil, errors.Wrapf(ErrMalformedHex, "odd length %d", len(s))
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedHex, err.Error())
	}
	return buf, nil
}
