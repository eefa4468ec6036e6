package elements

import (
	"testing"

	"rubin.dev/simplicity/bitmachine"
	"rubin.dev/simplicity/simplicity"
)

func oneInputEnv(t *testing.T, isPegin bool) *TxEnv {
	t.Helper()
	tx := &Tx{
		Version: 2,
		Inputs: []TxIn{{
			PrevOut: OutPoint{Txid: [32]byte{0xAB}, Vout: 3},
			IsPegin: isPegin,
		}},
		Outputs: []TxOut{{
			Asset: ExplicitField(KindAsset, make([]byte, 32)),
			Value: ExplicitField(KindValue, make([]byte, 8)),
			Nonce: NullField(KindNonce),
		}},
	}
	utxos := []ElementsUtxo{{
		ScriptPubkeyCmr: simplicity.Cmr{0x42},
		Asset:           ExplicitField(KindAsset, make([]byte, 32)),
		Value:           ExplicitField(KindValue, make([]byte, 8)),
	}}
	env, err := NewTxEnv(tx, utxos, 0, simplicity.Cmr{0x99})
	must(t, err)
	return env
}

func TestInputIsPeginValid(t *testing.T) {
	env := oneInputEnv(t, true)
	mac := bitmachine.New(0)
	must(t, mac.NewFrame(32))
	must(t, mac.WriteU32(0))
	must(t, mac.MoveFrame())
	must(t, mac.NewFrame(2))
	must(t, InputIsPegin.Exec(mac, env))
	must(t, mac.MoveFrame())
	valid, err := mac.ReadBit()
	must(t, err)
	pegin, err := mac.ReadBit()
	must(t, err)
	if !valid || !pegin {
		t.Fatalf("got valid=%v pegin=%v want true,true", valid, pegin)
	}
}

func TestInputPrevOutpointOutOfRange(t *testing.T) {
	env := oneInputEnv(t, false)
	mac := bitmachine.New(0)
	must(t, mac.NewFrame(32))
	must(t, mac.WriteU32(5))
	must(t, mac.MoveFrame())
	must(t, mac.NewFrame(1+288))
	must(t, InputPrevOutpoint.Exec(mac, env))
	must(t, mac.MoveFrame())
	valid, err := mac.ReadBit()
	must(t, err)
	if valid {
		t.Fatal("expected invalid for out-of-range index")
	}
	if _, err := mac.ReadBytes(36); err != nil {
		t.Fatalf("expected 288 skipped bits to still be readable as zero: %v", err)
	}
}

func TestScriptCmrAndCurrentIndex(t *testing.T) {
	env := oneInputEnv(t, false)

	mac := bitmachine.New(0)
	must(t, mac.NewFrame(0))
	must(t, mac.MoveFrame())
	must(t, mac.NewFrame(256))
	must(t, ScriptCmr.Exec(mac, env))
	must(t, mac.MoveFrame())
	got, err := mac.Read32Bytes()
	must(t, err)
	if got != [32]byte(env.ScriptCmr) {
		t.Fatalf("got %x want %x", got, env.ScriptCmr)
	}

	mac2 := bitmachine.New(0)
	must(t, mac2.NewFrame(0))
	must(t, mac2.MoveFrame())
	must(t, mac2.NewFrame(32))
	must(t, CurrentIndex.Exec(mac2, env))
	must(t, mac2.MoveFrame())
	idx, err := mac2.ReadU32()
	must(t, err)
	if idx != 0 {
		t.Fatalf("got %d want 0", idx)
	}
}

func TestElementsCodecRoundtrip(t *testing.T) {
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

func TestElementsCMRStableAndDistinct(t *testing.T) {
	seen := map[simplicity.Cmr]Jet{}
	for _, j := range All {
		c := j.CMR()
		if prior, ok := seen[c]; ok {
			t.Fatalf("%s and %s share a CMR", j, prior)
		}
		seen[c] = j
	}
}
