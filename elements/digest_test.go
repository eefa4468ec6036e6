package elements

import "testing"

func TestDigestCrossCheck(t *testing.T) {
	tx := &Tx{
		Version:  2,
		LockTime: 0,
		Inputs: []TxIn{{
			PrevOut:  OutPoint{Txid: [32]byte{1}, Vout: 0},
			Sequence: 0xFFFFFFFF,
		}},
		Outputs: []TxOut{{
			Asset:  ExplicitField(KindAsset, make([]byte, 32)),
			Value:  ExplicitField(KindValue, make([]byte, 8)),
			Nonce:  NullField(KindNonce),
			Script: nil,
		}},
	}

	ih1, err := InputsHash(tx)
	must(t, err)
	ih2, err := InputsHash(tx)
	must(t, err)
	if ih1 != ih2 {
		t.Fatal("InputsHash is not deterministic")
	}

	oh1, err := OutputsHash(tx)
	must(t, err)
	oh2, err := OutputsHash(tx)
	must(t, err)
	if oh1 != oh2 {
		t.Fatal("OutputsHash is not deterministic")
	}
	if ih1 == oh1 {
		t.Fatal("inputs and outputs hash collided for distinct content")
	}
}

func TestAssetIssuanceDigestDiffersNewVsReissue(t *testing.T) {
	tx1 := &Tx{Inputs: []TxIn{{
		PrevOut: OutPoint{Txid: [32]byte{9}, Vout: 1},
		Issuance: &AssetIssuance{
			Entropy: [32]byte{2},
			Amount:  ExplicitField(KindValue, make([]byte, 8)),
		},
	}}}
	tx2 := &Tx{Inputs: []TxIn{{
		PrevOut: OutPoint{Txid: [32]byte{9}, Vout: 1},
		Issuance: &AssetIssuance{
			BlindingNonce: [32]byte{7},
			Entropy:       [32]byte{2},
			Amount:        ExplicitField(KindValue, make([]byte, 8)),
		},
	}}}
	h1, err := InputsHash(tx1)
	must(t, err)
	h2, err := InputsHash(tx2)
	must(t, err)
	if h1 == h2 {
		t.Fatal("new-issue and reissue digests must differ")
	}
}

func TestNewIssuanceContractChangesInputsHash(t *testing.T) {
	base := func(contract [32]byte) *Tx {
		return &Tx{Inputs: []TxIn{{
			PrevOut: OutPoint{Txid: [32]byte{9}, Vout: 1},
			Issuance: &AssetIssuance{
				Contract: contract,
				Entropy:  [32]byte{2},
				Amount:   ExplicitField(KindValue, make([]byte, 8)),
			},
		}}}
	}
	h1, err := InputsHash(base([32]byte{0xAA}))
	must(t, err)
	h2, err := InputsHash(base([32]byte{0xBB}))
	must(t, err)
	if h1 == h2 {
		t.Fatal("a new issuance's Contract must be committed by InputsHash")
	}
}
