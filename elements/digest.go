package elements

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
)

// OutPoint identifies a previous transaction output being spent.
type OutPoint struct {
	Txid [32]byte
	Vout uint32
}

// AssetIssuance records an asset issuance or reissuance carried by a TxIn.
// A zero BlindingNonce marks a new issue; any other value marks a reissue.
type AssetIssuance struct {
	BlindingNonce [32]byte
	Contract      [32]byte
	Entropy       [32]byte
	Amount        ConfidentialField
	InflationKeys ConfidentialField
}

// IsReissue reports whether this issuance reuses an existing asset tag
// (a non-zero blinding nonce) rather than minting a brand new one.
func (a *AssetIssuance) IsReissue() bool {
	return a.BlindingNonce != [32]byte{}
}

// TxIn is one input of an Elements transaction.
type TxIn struct {
	PrevOut  OutPoint
	Sequence uint32
	IsPegin  bool
	Issuance *AssetIssuance // nil when the input carries no issuance
}

// TxOut is one output of an Elements transaction.
type TxOut struct {
	Asset  ConfidentialField
	Value  ConfidentialField
	Nonce  ConfidentialField
	Script []byte
}

// Tx is the subset of an Elements transaction the jet layer observes.
type Tx struct {
	Version  uint32
	LockTime uint32
	Inputs   []TxIn
	Outputs  []TxOut
}

// scriptDigest hashes a raw output script once, per spec.md §4.4's "script
// digest" rule: the script bytes themselves are never fed into a container
// hash directly, only their SHA-256.
func scriptDigest(script []byte) [32]byte {
	return sha256.Sum256(script)
}

// writeAssetIssuance appends the AssetIssuance digest fragment for in to h:
// new-issue and reissue take different shapes, distinguished by whether the
// blinding nonce is all-zero.
func writeAssetIssuance(h hash.Hash, in *AssetIssuance) error {
	if err := in.Amount.Digest(h); err != nil {
		return err
	}
	if in.IsReissue() {
		if err := NullField(KindValue).Digest(h); err != nil {
			return err
		}
	} else {
		if err := in.InflationKeys.Digest(h); err != nil {
			return err
		}
	}
	if _, err := h.Write(in.BlindingNonce[:]); err != nil {
		return err
	}
	// A new issuance commits its contract hash here; a reissue commits the
	// asset entropy it reuses instead. The reference stores both under one
	// "asset_entropy" slot, gated the same way (jets.rs contract_issuance /
	// entropy_issuance); keeping Contract and Entropy as separate fields
	// still requires picking the one gated in for this digest slot.
	if in.IsReissue() {
		_, err := h.Write(in.Entropy[:])
		return err
	}
	_, err := h.Write(in.Contract[:])
	return err
}

// writeTxIn appends the TxIn digest fragment for in to h.
func writeTxIn(h hash.Hash, in *TxIn) error {
	if _, err := h.Write(in.PrevOut.Txid[:]); err != nil {
		return err
	}
	var voutLE, seqLE [4]byte
	binary.LittleEndian.PutUint32(voutLE[:], in.PrevOut.Vout)
	binary.LittleEndian.PutUint32(seqLE[:], in.Sequence)
	if _, err := h.Write(voutLE[:]); err != nil {
		return err
	}
	if _, err := h.Write(seqLE[:]); err != nil {
		return err
	}
	if in.Issuance != nil {
		return writeAssetIssuance(h, in.Issuance)
	}
	if err := NullField(KindValue).Digest(h); err != nil {
		return err
	}
	return NullField(KindValue).Digest(h)
}

// writeTxOut appends the TxOut digest fragment for out to h.
func writeTxOut(h hash.Hash, out *TxOut) error {
	if err := out.Asset.Digest(h); err != nil {
		return err
	}
	if err := out.Value.Digest(h); err != nil {
		return err
	}
	if err := out.Nonce.Digest(h); err != nil {
		return err
	}
	sd := scriptDigest(out.Script)
	_, err := h.Write(sd[:])
	return err
}

// InputsHash computes the SHA-256 of every input's TxIn digest fragment,
// concatenated in order (spec.md §4.4).
func InputsHash(tx *Tx) ([32]byte, error) {
	h := sha256.New()
	for i := range tx.Inputs {
		if err := writeTxIn(h, &tx.Inputs[i]); err != nil {
			return [32]byte{}, err
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// OutputsHash computes the SHA-256 of every output's TxOut digest fragment,
// concatenated in order (spec.md §4.4).
func OutputsHash(tx *Tx) ([32]byte, error) {
	h := sha256.New()
	for i := range tx.Outputs {
		if err := writeTxOut(h, &tx.Outputs[i]); err != nil {
			return [32]byte{}, err
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}
