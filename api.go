package digests

import "hash"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file adapts a Hasher to the standard hash.Hash interface.

// NewHash returns a hash.Hash that accumulates every Write and hashes the whole message on each
// Sum. Memory grows with the message; nothing is compressed before Sum.
func (h *Hasher) NewHash() hash.Hash { return &buffered{h: h} }

type buffered struct {
	h   *Hasher
	buf []byte
}

func (d *buffered) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *buffered) WriteString(s string) (int, error) {
	d.buf = append(d.buf, s...)
	return len(s), nil
}

func (d *buffered) Sum(b []byte) []byte { return append(b, d.h.Hash(Message{d.buf}).buf...) }

func (d *buffered) Reset() {
	clear(d.buf) /* Callers may have hashed secrets. */
	d.buf = d.buf[:0]
}

func (d *buffered) Size() int { return (d.h.Size() + 7) >> 3 }

func (d *buffered) BlockSize() int { return d.h.alg.BlockSize() }
