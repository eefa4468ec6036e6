package elements

import "rubin.dev/simplicity/simplicity"

// ElementsUtxo is the host-supplied view of a spent output: its script
// already reduced to a Simplicity CMR (not the raw script, which is what
// the TxOut digest hashes instead), plus its confidential asset and value.
type ElementsUtxo struct {
	ScriptPubkeyCmr simplicity.Cmr
	Asset           ConfidentialField
	Value           ConfidentialField
}

// TxEnv is the immutable per-input environment the Elements jets read
// from. It is built once per signature check and precomputes inputs_hash
// and outputs_hash so no jet recomputes them (spec.md §4.4, §9).
type TxEnv struct {
	Tx         *Tx
	Utxos      []ElementsUtxo
	Ix         int
	ScriptCmr  simplicity.Cmr
	InputsHash [32]byte
	OutputsHash [32]byte
}

// NewTxEnv constructs a TxEnv for the ix-th input of tx, validating the
// invariants len(utxos) == len(tx.Inputs) and ix < len(utxos), and
// precomputing inputs_hash/outputs_hash.
func NewTxEnv(tx *Tx, utxos []ElementsUtxo, ix int, scriptCmr simplicity.Cmr) (*TxEnv, error) {
	if len(utxos) != len(tx.Inputs) {
		return nil, simplicity.NewError(simplicity.ErrCodeOutOfBounds, "txenv: utxos length must match tx inputs length")
	}
	if ix < 0 || ix >= len(utxos) {
		return nil, simplicity.NewError(simplicity.ErrCodeOutOfBounds, "txenv: current input index out of range")
	}
	ih, err := InputsHash(tx)
	if err != nil {
		return nil, err
	}
	oh, err := OutputsHash(tx)
	if err != nil {
		return nil, err
	}
	return &TxEnv{
		Tx:          tx,
		Utxos:       utxos,
		Ix:          ix,
		ScriptCmr:   scriptCmr,
		InputsHash:  ih,
		OutputsHash: oh,
	}, nil
}

// CurrentInput returns the input being spent, per Ix.
func (e *TxEnv) CurrentInput() *TxIn { return &e.Tx.Inputs[e.Ix] }

// CurrentUtxo returns the UTXO being spent, per Ix.
func (e *TxEnv) CurrentUtxo() *ElementsUtxo { return &e.Utxos[e.Ix] }
