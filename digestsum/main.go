package main

import (
	. "fmt"
	"github.com/multiformats/go-multibase"
	"github.com/p7r0x7/digests"
	"github.com/p7r0x7/digests/md6"
	"github.com/p7r0x7/vainpath"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
	"hash"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings, mismatches = 0, 0

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "digestsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Classic message digests, computed from first principles.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h|L]"+n,
		spaces, "[-cmt] [-a NAME] [-b BASE] [--md6-*] [--verify HEX] -|PATH..."+n,
		spaces, "[-cmt] [-a NAME] [-b BASE] [--md6-*] [--verify HEX] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n+
		"Every flag may also be set as DIGESTSUM_<FLAG>, e.g. DIGESTSUM_MD6_KEY."+n)
}

// list prints every algorithm digestsum accepts for --algorithm.
func list() {
	for _, a := range digests.Algorithms() {
		code := "-"
		if c, ok := a.Multicodec(); ok {
			code = c.String()
		}
		Printf("%s%-11s%s %3d bits  %-15s %s"+n, yell, a, zero, a.Size(), a.Family(), code)
	}
}

// hasher builds the pipeline selected by --algorithm and the --md6-* flags.
func hasher() (*digests.Hasher, error) {
	a, err := digests.ParseAlgorithm(pAlgorithm)
	if err != nil {
		return nil, err
	}
	custom := pMD6Size != 0 || pMD6Rounds != 0 || pMD6Mode != 0 || pMD6Key != ""
	if a.Family() != digests.Tree {
		if custom {
			return nil, errors.Errorf("digestsum: --md6-* flags do not apply to %v", a)
		}
		return digests.New(a)
	}

	cfg := md6.Config{Size: a.Size(), Rounds: pMD6Rounds, Mode: pMD6Mode, Workers: pMD6Workers}
	if pMD6Size != 0 {
		cfg.Size = pMD6Size
	}
	if pMD6Key != "" {
		raw, err := digests.MessageFromHex(pMD6Key)
		if err != nil {
			return nil, errors.Wrap(err, "--md6-key")
		}
		if cfg.Key, err = md6.NewKey(raw.Bytes()); err != nil {
			return nil, err
		}
	}
	return digests.NewMD6(cfg)
}

// render formats d as selected by --cid, --multihash, and --base.
func render(d digests.Digest, a digests.Algorithm) (string, error) {
	if pCID {
		c, err := d.CID(a)
		if err != nil {
			return "", err
		}
		if pBase == "" {
			return c.String(), nil
		}
		enc, err := multibase.EncoderByName(pBase)
		if err != nil {
			return "", errors.Wrapf(digests.ErrEncoding, "%q", pBase)
		}
		return c.Encode(enc), nil
	} else if pMultihash {
		mh, err := d.Multihash(a)
		if err != nil {
			return "", err
		}
		d = digests.DigestFromBytes(mh)
	}
	if pBase != "" {
		return d.Encode(pBase)
	}
	return d.Hex(), nil
}

// read writes the message named by target into w.
func read(w hash.Hash, target string) error {
	if pString {
		_, err := io.WriteString(w, target)
		return err
	} else if target == "-" || target == os.Stdin.Name() {
		_, err := io.Copy(w, os.Stdin)
		go os.Stdin.Close() /* STDIN should not be reused. */
		return err
	}
	file, err := os.Open(target)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, file)
	go file.Close()
	return err
}

// This program is a command-line interface for digests: It handles various flags and an unlimited
// number of arguments, processing files as required by the command-line operator.
func program() int {
	if pDebug {
		for _, p := range [...]string{"goroutine", "block", "allocs", "mutex"} {
			f, err := os.Create(p + ".prof")
			if err != nil {
				panic(err)
			}
			defer pprof.Lookup(p).WriteTo(f, 0)
		}
		cf, err := os.Create("cpu.prof")
		if err != nil {
			panic(err)
		}
		_ = pprof.StartCPUProfile(cf)
		defer pprof.StopCPUProfile()
	}

	if pList {
		list()
		return success
	} else if pHelp || NArg() == 0 {
		help()
		return success
	}

	h, err := hasher()
	if err != nil {
		return unusable(err)
	}
	a, _ := h.Algorithm()
	if pMultihash || pCID {
		if _, ok := a.Multicodec(); !ok || h.Size() != a.Size() {
			return unusable(errors.Wrapf(digests.ErrNoMulticodec, "%v", a))
		}
	}
	if pBase != "" {
		if _, err := (digests.Digest{}).Encode(pBase); err != nil {
			return unusable(err)
		}
	}
	var want digests.Digest
	if pVerify != "" {
		if want, err = digests.DigestFromHex(strings.TrimSpace(pVerify)); err != nil {
			return unusable(errors.Wrap(err, "--verify"))
		}
	}
	log.WithFields(log.Fields{"algorithm": a, "bits": h.Size(), "targets": NArg()}).Debug("hashing")

	w := h.NewHash()
	for i, target := range Args() {
		if i > 0 {
			w.Reset()
		}
		start, delta, status := time.Now(), "", ""

		if err := read(w, target); err != nil {
			warn(err, target)
			continue
		}
		d := digests.DigestFromBytes(w.Sum(nil))

		if pTime {
			t := time.Since(start)
			if t.Microseconds() > 99 {
				t = t.Truncate(10 * time.Microsecond)
			}
			delta = " (" + t.String() + ")"
		}
		if pVerify != "" {
			if d.Equal(want) {
				status = " " + purp + "OK" + zero
			} else {
				status = " " + yell + "FAILED" + zero
				mismatches++
			}
		}

		text, err := render(d, a)
		if err != nil {
			warn(err, target)
			continue
		}
		if pQuiet {
			Println(text)
		} else if pString {
			Print(yell, text, zero, `  "`, target, `"`, delta, status, n)
		} else if pNoCodes {
			Print(text, `  `, filepath.Clean(target), delta, status, n)
		} else {
			Print(yell, text, zero, `  `, und, vainpath.Simplify(target), zero, delta, status, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
		if mismatches > 0 {
			Fprint(os.Stderr, mismatches, " ", purp, "of ", NArg(), " digests did not match.", zero, n)
		}
	}
	if warnings > 0 || mismatches > 0 {
		return failure
	}
	return success
}

func warn(err error, target string) {
	if pStrict {
		panic(err)
	}
	log.WithField("target", target).WithError(err).Warn("skipped")
	warnings++
}

func unusable(err error) int {
	if pStrict {
		panic(err)
	}
	log.WithError(err).Error("invalid configuration")
	return invalid
}
