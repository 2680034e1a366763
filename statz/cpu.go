package main

import (
	"golang.org/x/sys/cpu"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// features lists the instruction set extensions that the compared libraries accelerate with.
func features() string {
	var have []string
	for _, f := range [...]struct {
		name string
		ok   bool
	}{
		{"sse4.1", cpu.X86.HasSSE41},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
		{"bmi2", cpu.X86.HasBMI2},
		{"popcnt", cpu.X86.HasPOPCNT},
		{"sha1", cpu.ARM64.HasSHA1},
		{"sha2", cpu.ARM64.HasSHA2},
		{"sha3", cpu.ARM64.HasSHA3},
		{"sha512", cpu.ARM64.HasSHA512},
	} {
		if f.ok {
			have = append(have, f.name)
		}
	}
	if len(have) == 0 {
		return "(no accelerated extensions)"
	}
	return "[" + strings.Join(have, " ") + "]"
}
