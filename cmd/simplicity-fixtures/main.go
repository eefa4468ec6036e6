package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
)

func main() {
	cachePath := flag.String("cache", "", "path to the bbolt regression cache (defaults to no cache, dump only)")
	quiet := flag.Bool("quiet", false, "suppress the per-jet fixture listing")
	flag.Parse()

	fixtures := buildFixtures()

	if !*quiet {
		for _, f := range fixtures {
			fmt.Println(f.line())
		}
	}
	fp := fingerprintRun(fixtures)
	fmt.Printf("run fingerprint: %s\n", hex.EncodeToString(fp[:]))

	if *cachePath == "" {
		return
	}

	db, err := cacheDB(*cachePath)
	if err != nil {
		fatalf("open cache: %v", err)
	}
	defer db.Close()

	changed, err := checkAndStore(db, fixtures)
	if err != nil {
		fatalf("check cache: %v", err)
	}
	if len(changed) > 0 {
		fmt.Fprintf(os.Stderr, "fixture drift detected in %d jet(s):\n", len(changed))
		for _, name := range changed {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
