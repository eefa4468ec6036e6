package jets

import (
	"testing"

	"rubin.dev/simplicity/bitmachine"
)

func TestCodecRoundtrip(t *testing.T) {
	for _, j := range All {
		var out []byte
		w := bitmachine.NewBitWriterToSlice(&out)
		j.Encode(w)
		w.Flush()

		it := bitmachine.NewBitIterFromBytes(out)
		got, err := Decode(it)
		if err != nil {
			t.Fatalf("%s: decode: %v", j, err)
		}
		if got != j {
			t.Fatalf("%s: decoded as %s", j, got)
		}
	}
}

func TestCodecDistinctCodes(t *testing.T) {
	seen := map[string]Jet{}
	for _, j := range All {
		var out []byte
		w := bitmachine.NewBitWriterToSlice(&out)
		j.Encode(w)
		w.Flush()
		key := string(out)
		if prior, ok := seen[key]; ok {
			t.Fatalf("%s and %s share a wire code %x", j, prior, out)
		}
		seen[key] = j
	}
}
