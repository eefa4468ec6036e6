package elements

import (
	"rubin.dev/simplicity/bitmachine"
	"rubin.dev/simplicity/simplicity"
)

const (
	hashWidth    = 256
	u32Width     = 32
	outpointWide = 288
)

// Exec runs the jet against env and the machine's current top read/write
// frames, per the framing contract of jets.Jet.Exec.
func (j Jet) Exec(mac *bitmachine.Machine, env *TxEnv) error {
	switch j {
	case Version:
		return mac.WriteU32(env.Tx.Version)
	case LockTime:
		return mac.WriteU32(env.Tx.LockTime)
	case InputIsPegin:
		return execIndexGuarded(mac, len(env.Tx.Inputs), 1, func(idx uint32) error {
			return mac.WriteBit(env.Tx.Inputs[idx].IsPegin)
		})
	case InputPrevOutpoint:
		return execIndexGuarded(mac, len(env.Tx.Inputs), outpointWide, func(idx uint32) error {
			return writeOutpoint(mac, &env.Tx.Inputs[idx].PrevOut)
		})
	case InputAsset:
		return execIndexGuarded(mac, len(env.Utxos), 258, func(idx uint32) error {
			return env.Utxos[idx].Asset.EncodeSimplicity(mac)
		})
	case InputAmount:
		return execIndexGuarded(mac, len(env.Utxos), 258, func(idx uint32) error {
			return env.Utxos[idx].Value.EncodeSimplicity(mac)
		})
	case InputScriptHash:
		return execIndexGuarded(mac, len(env.Utxos), hashWidth, func(idx uint32) error {
			cmr := env.Utxos[idx].ScriptPubkeyCmr
			return mac.WriteBytes(cmr[:])
		})
	case InputSequence:
		return execIndexGuarded(mac, len(env.Tx.Inputs), u32Width, func(idx uint32) error {
			return mac.WriteU32(env.Tx.Inputs[idx].Sequence)
		})
	case InputIssuanceBlinding:
		return execIndexThenPresence(mac, len(env.Tx.Inputs), hashWidth,
			func(idx uint32) bool { return blindingPresent(&env.Tx.Inputs[idx]) },
			func(idx uint32) error { return mac.WriteBytes(env.Tx.Inputs[idx].Issuance.BlindingNonce[:]) })
	case InputIssuanceContract:
		return execIndexThenPresence(mac, len(env.Tx.Inputs), hashWidth,
			func(idx uint32) bool { return contractPresent(&env.Tx.Inputs[idx]) },
			func(idx uint32) error { return mac.WriteBytes(env.Tx.Inputs[idx].Issuance.Contract[:]) })
	case InputIssuanceEntropy:
		return execIndexThenPresence(mac, len(env.Tx.Inputs), hashWidth,
			func(idx uint32) bool { return entropyPresent(&env.Tx.Inputs[idx]) },
			func(idx uint32) error { return mac.WriteBytes(env.Tx.Inputs[idx].Issuance.Entropy[:]) })
	case InputIssuanceAssetAmount:
		return execIndexThenPresence(mac, len(env.Tx.Inputs), 258,
			func(idx uint32) bool { return assetAmountPresent(&env.Tx.Inputs[idx]) },
			func(idx uint32) error { return env.Tx.Inputs[idx].Issuance.Amount.EncodeSimplicity(mac) })
	case InputIssuanceTokenAmount:
		return execIndexThenPresence(mac, len(env.Tx.Inputs), 258,
			func(idx uint32) bool { return tokenAmountPresent(&env.Tx.Inputs[idx]) },
			func(idx uint32) error { return env.Tx.Inputs[idx].Issuance.InflationKeys.EncodeSimplicity(mac) })
	case OutputAsset:
		return execIndexGuarded(mac, len(env.Tx.Outputs), 258, func(idx uint32) error {
			return env.Tx.Outputs[idx].Asset.EncodeSimplicity(mac)
		})
	case OutputAmount:
		return execIndexGuarded(mac, len(env.Tx.Outputs), 258, func(idx uint32) error {
			return env.Tx.Outputs[idx].Value.EncodeSimplicity(mac)
		})
	case OutputNonce:
		return execIndexGuarded(mac, len(env.Tx.Outputs), 259, func(idx uint32) error {
			return env.Tx.Outputs[idx].Nonce.EncodeSimplicity(mac)
		})
	case OutputScriptHash:
		return execIndexGuarded(mac, len(env.Tx.Outputs), hashWidth, func(idx uint32) error {
			sd := scriptDigest(env.Tx.Outputs[idx].Script)
			return mac.WriteBytes(sd[:])
		})
	case OutputNullDatum:
		if _, err := mac.ReadU32(); err != nil {
			return err
		}
		return simplicity.NewError(simplicity.ErrCodeUnimplemented, "output_null_datum: not yet ratified upstream")
	case ScriptCmr:
		cmr := env.ScriptCmr
		return mac.WriteBytes(cmr[:])
	case CurrentIndex:
		return mac.WriteU32(uint32(env.Ix))
	case CurrentIsPegin:
		return mac.WriteBit(env.CurrentInput().IsPegin)
	case CurrentPrevOutpoint:
		return writeOutpoint(mac, &env.CurrentInput().PrevOut)
	case CurrentAsset:
		return env.CurrentUtxo().Asset.EncodeSimplicity(mac)
	case CurrentAmount:
		return env.CurrentUtxo().Value.EncodeSimplicity(mac)
	case CurrentScriptHash:
		cmr := env.CurrentUtxo().ScriptPubkeyCmr
		return mac.WriteBytes(cmr[:])
	case CurrentSequence:
		return mac.WriteU32(env.CurrentInput().Sequence)
	case CurrentIssuanceBlinding:
		return execPresenceOnly(mac, hashWidth, blindingPresent(env.CurrentInput()), func() error {
			return mac.WriteBytes(env.CurrentInput().Issuance.BlindingNonce[:])
		})
	case CurrentIssuanceContract:
		return execPresenceOnly(mac, hashWidth, contractPresent(env.CurrentInput()), func() error {
			return mac.WriteBytes(env.CurrentInput().Issuance.Contract[:])
		})
	case CurrentIssuanceEntropy:
		return execPresenceOnly(mac, hashWidth, entropyPresent(env.CurrentInput()), func() error {
			return mac.WriteBytes(env.CurrentInput().Issuance.Entropy[:])
		})
	case CurrentIssuanceAssetAmount:
		return execPresenceOnly(mac, 258, assetAmountPresent(env.CurrentInput()), func() error {
			return env.CurrentInput().Issuance.Amount.EncodeSimplicity(mac)
		})
	case CurrentIssuanceTokenAmount:
		return execPresenceOnly(mac, 258, tokenAmountPresent(env.CurrentInput()), func() error {
			return env.CurrentInput().Issuance.InflationKeys.EncodeSimplicity(mac)
		})
	case InputsHashJet:
		return mac.WriteBytes(env.InputsHash[:])
	case OutputsHashJet:
		return mac.WriteBytes(env.OutputsHash[:])
	case NumInputs:
		return mac.WriteU32(uint32(len(env.Tx.Inputs)))
	case NumOutputs:
		return mac.WriteU32(uint32(len(env.Tx.Outputs)))
	case Fee:
		return simplicity.NewError(simplicity.ErrCodeUnimplemented, "fee: not yet ratified upstream")
	default:
		return simplicity.NewError(simplicity.ErrCodeBadJet, "unknown elements jet")
	}
}

func writeOutpoint(mac *bitmachine.Machine, op *OutPoint) error {
	if err := mac.WriteBytes(op.Txid[:]); err != nil {
		return err
	}
	return mac.WriteU32(op.Vout)
}

// execIndexGuarded reads a u32 index, writes the validity bit (idx < n),
// and either runs writePayload(idx) or skips payloadWidth bits to keep the
// frame width constant, per spec.md §4.6.
func execIndexGuarded(mac *bitmachine.Machine, n int, payloadWidth int, writePayload func(idx uint32) error) error {
	idx, err := mac.ReadU32()
	if err != nil {
		return err
	}
	valid := int(idx) < n
	if err := mac.WriteBit(valid); err != nil {
		return err
	}
	if !valid {
		return mac.Skip(payloadWidth)
	}
	return writePayload(idx)
}

// execIndexThenPresence layers a second optional-field presence bit inside
// an index-guarded jet, for the Input* issuance accessors.
func execIndexThenPresence(mac *bitmachine.Machine, n int, payloadWidth int, present func(idx uint32) bool, writePayload func(idx uint32) error) error {
	idx, err := mac.ReadU32()
	if err != nil {
		return err
	}
	valid := int(idx) < n
	if err := mac.WriteBit(valid); err != nil {
		return err
	}
	if !valid {
		return mac.Skip(1 + payloadWidth)
	}
	ok := present(idx)
	if err := mac.WriteBit(ok); err != nil {
		return err
	}
	if !ok {
		return mac.Skip(payloadWidth)
	}
	return writePayload(idx)
}

// execPresenceOnly implements the Current* issuance accessors, which carry
// only the inner presence bit: the current input index is always valid by
// TxEnv's construction invariant.
func execPresenceOnly(mac *bitmachine.Machine, payloadWidth int, present bool, writePayload func() error) error {
	if err := mac.WriteBit(present); err != nil {
		return err
	}
	if !present {
		return mac.Skip(payloadWidth)
	}
	return writePayload()
}
