package main

import (
	"path/filepath"
	"testing"
)

func TestBuildFixturesStableAndComplete(t *testing.T) {
	a := buildFixtures()
	b := buildFixtures()
	if len(a) != len(b) {
		t.Fatalf("fixture count not stable: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fixture %d not stable across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
	seen := make(map[string]bool, len(a))
	for _, f := range a {
		if seen[f.Name] {
			t.Fatalf("duplicate fixture name %s", f.Name)
		}
		seen[f.Name] = true
		if f.CMRHex == "" || f.WireHex == "" {
			t.Fatalf("fixture %s missing cmr or wire hex", f.Name)
		}
	}
}

func TestFingerprintRunDeterministic(t *testing.T) {
	fixtures := buildFixtures()
	if fingerprintRun(fixtures) != fingerprintRun(fixtures) {
		t.Fatal("fingerprintRun must be deterministic for the same fixture set")
	}
	if fingerprintRun(fixtures) == fingerprintRun(fixtures[1:]) {
		t.Fatal("fingerprintRun must depend on the full fixture set")
	}
}

func TestCheckAndStoreDetectsDrift(t *testing.T) {
	dir := t.TempDir()
	db, err := cacheDB(filepath.Join(dir, "fixtures.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	fixtures := buildFixtures()

	changed, err := checkAndStore(db, fixtures)
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 0 {
		t.Fatalf("first run should have no drift, got %v", changed)
	}

	changed, err = checkAndStore(db, fixtures)
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 0 {
		t.Fatalf("unchanged fixtures should report no drift, got %v", changed)
	}

	mutated := make([]fixture, len(fixtures))
	copy(mutated, fixtures)
	mutated[0].CMRHex = "drifted"

	changed, err = checkAndStore(db, mutated)
	if err != nil {
		t.Fatal(err)
	}
	if len(changed) != 1 || changed[0] != mutated[0].Name {
		t.Fatalf("expected drift on %s, got %v", mutated[0].Name, changed)
	}
}
