// Package md6 implements the MD6 tree hash: keyed, round-count and mode parameterized, reducing a
// message level by level through 4096-bit compressions until one 1024-bit chaining value remains.
package md6

import (
	"encoding/binary"
	"github.com/pkg/errors"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	MaxSize     = 512 /* Largest digest, in bits */
	MaxKeySize  = 64  /* Largest key, in bytes */
	DefaultMode = 64  /* Tree height before falling back to sequential chaining */
	Sequential  = -1  /* Mode selecting L = 0, chaining every block from the first level */
)

var (
	ErrDigestSize = errors.New("md6: digest size must be between 1 and 512 bits")
	ErrRounds     = errors.New("md6: rounds must be between 1 and 255")
	ErrMode       = errors.New("md6: mode must be Sequential or between 1 and 64")
	ErrKeyLength  = errors.New("md6: key must be at most 64 bytes")
)

// Key is an MD6 key zero-padded to eight big-endian words; its unpadded length also enters every
// compression through the control word.
type Key struct {
	words [k]uint64
	size  int
}

// NewKey copies key, which may hold at most MaxKeySize bytes.
func NewKey(key []byte) (Key, error) {
	if len(key) > MaxKeySize {
		return Key{}, errors.Wrapf(ErrKeyLength, "%d bytes", len(key))
	}
	var buf [MaxKeySize]byte
	copy(buf[:], key)

	out := Key{size: len(key)}
	for i := range out.words {
		out.words[i] = binary.BigEndian.Uint64(buf[i<<3:])
	}
	return out, nil
}

// Len returns the key's length in bytes before padding.
func (key Key) Len() int { return key.size }

// Config selects the MD6 parameters. Only Size is required; zero values of the other fields pick
// the published defaults.
type Config struct {
	Size    int /* Digest length d in bits, 1..512 */
	Rounds  int /* 0 selects DefaultRounds */
	Mode    int /* 0 selects DefaultMode, Sequential selects L = 0 */
	Key     Key
	Workers int /* Values above 1 compress the chunks of a level concurrently */
}

// DefaultRounds returns 40+d/4, raised to at least 80 for keyed hashing.
func DefaultRounds(d int, keyed bool) int {
	r := 40 + d/4
	if keyed {
		r = max(r, 80)
	}
	return r
}

// Reducer is a validated Config. It is safe for concurrent use.
type Reducer struct {
	size, rounds, mode, workers int
	key                         Key

	trace func(level, chunks int) /* Observes the shape of each reduction; tests only. */
}

// New validates cfg once so that every later Sum is total.
func New(cfg Config) (*Reducer, error) {
	if cfg.Size < 1 || cfg.Size > MaxSize {
		return nil, errors.Wrapf(ErrDigestSize, "got %d", cfg.Size)
	}
	r := &Reducer{size: cfg.Size, key: cfg.Key, workers: cfg.Workers}

	switch {
	case cfg.Rounds == 0:
		r.rounds = DefaultRounds(cfg.Size, cfg.Key.size > 0)
	case cfg.Rounds < 1 || cfg.Rounds > MaxRounds:
		return nil, errors.Wrapf(ErrRounds, "got %d", cfg.Rounds)
	default:
		r.rounds = cfg.Rounds
	}

	switch {
	case cfg.Mode == 0:
		r.mode = DefaultMode
	case cfg.Mode == Sequential:
		r.mode = 0
	case cfg.Mode < 1 || cfg.Mode > DefaultMode:
		return nil, errors.Wrapf(ErrMode, "got %d", cfg.Mode)
	default:
		r.mode = cfg.Mode
	}
	return r, nil
}

// Size returns the digest length in bits.
func (r *Reducer) Size() int { return r.size }

// Rounds returns the resolved round count.
func (r *Reducer) Rounds() int { return r.rounds }

// Mode returns the resolved tree height L, 0 for sequential.
func (r *Reducer) Mode() int { return r.mode }

// Sum hashes msg with the parameters of cfg.
func Sum(msg []byte, cfg Config) ([]byte, error) {
	r, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return r.Sum(msg), nil
}
