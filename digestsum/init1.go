package main

import (
	log "github.com/sirupsen/logrus"
	. "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"runtime"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pAlgorithm, pBase, pMD6Key, pVerify, pNoCodesDefault = "", "", "", "", false
var pMD6Size, pMD6Rounds, pMD6Mode, pMD6Workers int
var pHelp, pCID, pList, pMultihash, pNoCodes, pQuiet, pStrict, pString, pTime, pDebug bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVarP(&pAlgorithm, "algorithm", "a", "sha256",
		purp+"select the digest algorithm by name"+zero+" (see --list)")

	StringVarP(&pBase, "base", "b", "",
		purp+"render digests in a multibase encoding such as base32,"+zero+
			n+purp+"base58btc, or base64"+zero+" (default hex)")

	BoolVarP(&pCID, "cid", "c", false,
		purp+"print digests as version 1 CIDs of raw content"+zero+" (base32 unless"+
			n+"--base is given)")

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	BoolVarP(&pList, "list", "L", false,
		purp+"print every supported algorithm with its digest size"+zero)

	BoolVarP(&pMultihash, "multihash", "m", false,
		purp+"prefix digests with their multicodec and length"+zero)

	IntVar(&pMD6Size, "md6-size", 0,
		purp+"set the MD6 digest length in bits, 1 to 512"+zero+
			n+"(default taken from --algorithm)")

	IntVar(&pMD6Rounds, "md6-rounds", 0,
		purp+"set the MD6 round count, 1 to 255"+zero+" (default 40+d/4)")

	IntVar(&pMD6Mode, "md6-mode", 0,
		purp+"set the MD6 tree height, 1 to 64, or -1 to chain"+zero+
			n+purp+"every block sequentially"+zero+" (default 64)")

	StringVar(&pMD6Key, "md6-key", "",
		purp+"key MD6 with up to 64 hex-encoded bytes"+zero)

	IntVar(&pMD6Workers, "md6-workers", runtime.NumCPU(),
		purp+"compress each MD6 level on this many goroutines"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause digestsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	StringVar(&pVerify, "verify", "",
		purp+"compare every digest against this hex digest and fail"+zero+
			n+purp+"on any mismatch"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()

	/* DIGESTSUM_ALGORITHM, DIGESTSUM_MD6_KEY, etc. stand in for flags left unset. */
	viper.SetEnvPrefix("digestsum")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(CommandLine)
	pAlgorithm, pBase, pMD6Key = viper.GetString("algorithm"), viper.GetString("base"), viper.GetString("md6-key")
	pMD6Size, pMD6Rounds, pMD6Mode = viper.GetInt("md6-size"), viper.GetInt("md6-rounds"), viper.GetInt("md6-mode")
	pMD6Workers, pVerify = viper.GetInt("md6-workers"), viper.GetString("verify")
	pStrict = viper.GetBool("strict") || pDebug

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: pNoCodes, DisableTimestamp: true})
	switch {
	case pQuiet:
		log.SetLevel(log.ErrorLevel)
	case pDebug:
		log.SetLevel(log.DebugLevel)
	}
}
