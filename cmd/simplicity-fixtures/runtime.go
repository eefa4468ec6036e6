// Command simplicity-fixtures dumps the CMR and wire-code table for every
// jet in the jets and elements packages, and checks the dump against a
// bbolt-backed regression cache so an accidental change to a jet's
// identity or codec is caught before it reaches a consumer.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"rubin.dev/simplicity/bitmachine"
	"rubin.dev/simplicity/crypto"
	"rubin.dev/simplicity/elements"
	"rubin.dev/simplicity/jets"
)

var bucketFixtures = []byte("jet_fixtures_by_name")

// fixture is the record stored and diffed for one jet: its declared
// source/target types and its wire identity. Name is prefixed with its
// family ("jet:" or "elements:") so the two jet enumerations never collide
// in the regression cache.
type fixture struct {
	Name       string
	SourceType string
	TargetType string
	CMRHex     string
	WireHex    string
}

func (f fixture) line() string {
	return fmt.Sprintf("%-40s src=%-10s dst=%-10s cmr=%s wire=%s",
		f.Name, f.SourceType, f.TargetType, f.CMRHex, f.WireHex)
}

// buildFixtures computes the full fixture set for both jet enumerations,
// sorted by name for a stable diff.
func buildFixtures() []fixture {
	out := make([]fixture, 0, len(jets.All)+len(elements.All))

	for _, j := range jets.All {
		var buf []byte
		w := bitmachine.NewBitWriterToSlice(&buf)
		j.Encode(w)
		w.Flush()
		cmr := j.CMR()
		out = append(out, fixture{
			Name:       "jet:" + j.String(),
			SourceType: string(j.SourceType()),
			TargetType: string(j.TargetType()),
			CMRHex:     hex.EncodeToString(cmr.Bytes()[:]),
			WireHex:    hex.EncodeToString(buf),
		})
	}

	for _, j := range elements.All {
		var buf []byte
		w := bitmachine.NewBitWriterToSlice(&buf)
		j.Encode(w)
		w.Flush()
		cmr := j.CMR()
		out = append(out, fixture{
			Name:       "elements:" + j.String(),
			SourceType: string(j.SourceType()),
			TargetType: string(j.TargetType()),
			CMRHex:     hex.EncodeToString(cmr.Bytes()[:]),
			WireHex:    hex.EncodeToString(buf),
		})
	}

	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}

// fingerprintRun returns a diagnostic digest of the full fixture dump,
// using the dev fingerprint provider rather than the consensus SHA-256
// path: this value never feeds a jet executor, it only labels a run in
// the tool's own stdout.
func fingerprintRun(fixtures []fixture) [32]byte {
	var buf bytes.Buffer
	for _, f := range fixtures {
		buf.WriteString(f.line())
		buf.WriteByte('\n')
	}
	var p crypto.DevFingerprintProvider
	return p.Fingerprint(buf.Bytes())
}

// cacheDB opens (creating if necessary) the regression cache at path,
// structured the way the teacher's chain-state store opens bbolt: single
// file, one bucket, short open timeout.
func cacheDB(path string) (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFixtures)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return db, nil
}

// checkAndStore compares each fixture's line against the cached value for
// its name, reporting every mismatch, then stores the current value.
// Fixtures never seen before are recorded with no mismatch. Returns the
// list of jet names whose cached fixture changed.
func checkAndStore(db *bolt.DB, fixtures []fixture) ([]string, error) {
	var changed []string
	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFixtures)
		for _, f := range fixtures {
			key := []byte(f.Name)
			want := []byte(f.line())
			if prev := b.Get(key); prev != nil && !bytes.Equal(prev, want) {
				changed = append(changed, f.Name)
			}
			if err := b.Put(key, want); err != nil {
				return fmt.Errorf("put %s: %w", f.Name, err)
			}
		}
		return nil
	})
	return changed, err
}
