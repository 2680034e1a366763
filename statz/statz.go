package main

import (
	. "fmt"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/digests"
	"github.com/p7r0x7/digests/md6"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 8 << 10, 512 << 10, 16 << 20}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

// suite is one row of the report: a label and the function timed over each size.
type suite struct {
	name string
	sum  func([]byte)
}

func suites() []suite {
	var out []suite
	for _, a := range digests.Algorithms() {
		h, err := digests.New(a)
		if err != nil {
			panic(err)
		}
		out = append(out, suite{a.String(), func(b []byte) { h.Hash(digests.MessageFromBytes(b)) }})
	}
	par, err := digests.NewMD6(md6.Config{Size: 256, Workers: runtime.NumCPU()})
	if err != nil {
		panic(err)
	}
	return append(out,
		suite{Sprintf("md6-256 ×%d", runtime.NumCPU()), func(b []byte) { par.Hash(digests.MessageFromBytes(b)) }},
		suite{"github.com/minio/sha256-simd", func(b []byte) { sha256.Sum256(b) }},
		suite{"github.com/zeebo/blake3", func(b []byte) { blake3.Sum256(b) }},
		suite{"github.com/zeebo/xxh3", func(b []byte) { xxh3.Hash128(b) }},
	)
}

func benchmark(sum func([]byte)) func(b *testing.B) {
	return func(b *testing.B) {
		b.SetBytes(int64(len(bytes)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			sum(bytes)
		}
	}
}

func benchAlg(alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		bytes = stream(v, byte(i))

		done, totalHz, polls, mut := make(chan struct{}), uint64(0), uint64(0), &sync.Mutex{}
		if calltime > 0 {
			go func() {
				for {
					select {
					case <-done:
						return
					default:
					}
					tsc1 := gotsc.BenchStart()
					time.Sleep(time.Millisecond)
					tsc2 := gotsc.BenchEnd()

					mut.Lock()
					totalHz += tsc2 - tsc1 - calltime
					polls++
					mut.Unlock()

					time.Sleep(time.Millisecond * 9)
				}
			}()
		}
		r := testing.Benchmark(alg)
		close(done)
		mut.Lock()
		totalHz *= 1000

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		if polls > 0 {
			speeds[i] = float64(totalHz) / float64(polls) / throughputs[i]
		}
		mut.Unlock()
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%8.3g"
		case v <= 1e1 && !whole:
			style = "%8.6f"
		case v <= 1e2 && !whole:
			style = "%8.5f"
		case v <= 1e3 && !whole:
			style = "%8.4f"
		case v <= 1e4 && !whole:
			style = "%8.3f"
		case v <= 1e5 && !whole:
			style = "%8.2f"
		case v <= 1e6 && !whole:
			style = "%8.1f"
		default:
			style = "%8.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s %s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, features())
	t := time.Now()

	monobit()
	Println(" ============================================= \n" +
		"           64B        8K      512K       16M")
	for _, s := range suites() {
		Println(s.name)
		benchAlg(benchmark(s.sum))
	}

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
