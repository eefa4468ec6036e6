package elements

import "rubin.dev/simplicity/simplicity"

// Confidential-field widths expressed in the shared TypeName grammar.
// AssetType/ValueType reuse the same 258-bit shape (tag byte's two low
// bits plus a 256-bit point); NonceType adds the extra tag bit Nonce's
// encoding carries (spec.md §4.5).
const (
	assetType simplicity.TypeName = "*h*22"
	valueType simplicity.TypeName = "*h*22"
	nonceType simplicity.TypeName = "*h*2*22"
)

var sourceTypes = map[Jet]simplicity.TypeName{
	Version:                    "1",
	LockTime:                   "1",
	InputIsPegin:               "i",
	InputPrevOutpoint:          "i",
	InputAsset:                 "i",
	InputAmount:                "i",
	InputScriptHash:            "i",
	InputSequence:              "i",
	InputIssuanceBlinding:      "i",
	InputIssuanceContract:      "i",
	InputIssuanceEntropy:       "i",
	InputIssuanceAssetAmount:   "i",
	InputIssuanceTokenAmount:   "i",
	OutputAsset:                "i",
	OutputAmount:               "i",
	OutputNonce:                "i",
	OutputScriptHash:           "i",
	OutputNullDatum:            "i",
	ScriptCmr:                  "1",
	CurrentIndex:               "1",
	CurrentIsPegin:             "1",
	CurrentPrevOutpoint:        "1",
	CurrentAsset:               "1",
	CurrentAmount:              "1",
	CurrentScriptHash:          "1",
	CurrentSequence:            "1",
	CurrentIssuanceBlinding:    "1",
	CurrentIssuanceContract:    "1",
	CurrentIssuanceEntropy:     "1",
	CurrentIssuanceAssetAmount: "1",
	CurrentIssuanceTokenAmount: "1",
	InputsHashJet:              "1",
	OutputsHashJet:             "1",
	NumInputs:                  "1",
	NumOutputs:                 "1",
	Fee:                        "1",
}

var targetTypes = map[Jet]simplicity.TypeName{
	Version:                    "i",
	LockTime:                   "i",
	InputIsPegin:               "+12",
	InputPrevOutpoint:          "+1*hi",
	InputAsset:                 simplicity.TypeName("+1") + assetType,
	InputAmount:                simplicity.TypeName("+1") + valueType,
	InputScriptHash:            "+1h",
	InputSequence:              "+1i",
	InputIssuanceBlinding:      "+1+1h",
	InputIssuanceContract:      "+1+1h",
	InputIssuanceEntropy:       "+1+1h",
	InputIssuanceAssetAmount:   simplicity.TypeName("+1+1") + valueType,
	InputIssuanceTokenAmount:   simplicity.TypeName("+1+1") + valueType,
	OutputAsset:                simplicity.TypeName("+1") + assetType,
	OutputAmount:               simplicity.TypeName("+1") + valueType,
	OutputNonce:                simplicity.TypeName("+1") + nonceType,
	OutputScriptHash:           "+1h",
	OutputNullDatum:            "+1h",
	ScriptCmr:                  "h",
	CurrentIndex:               "i",
	CurrentIsPegin:             "2",
	CurrentPrevOutpoint:        "*hi",
	CurrentAsset:               assetType,
	CurrentAmount:              valueType,
	CurrentScriptHash:          "h",
	CurrentSequence:            "i",
	CurrentIssuanceBlinding:    "+1h",
	CurrentIssuanceContract:    "+1h",
	CurrentIssuanceEntropy:     "+1h",
	CurrentIssuanceAssetAmount: simplicity.TypeName("+1") + valueType,
	CurrentIssuanceTokenAmount: simplicity.TypeName("+1") + valueType,
	InputsHashJet:              "h",
	OutputsHashJet:             "h",
	NumInputs:                  "i",
	NumOutputs:                 "i",
	Fee:                        valueType,
}

// SourceType returns the jet's declared source TypeName.
func (j Jet) SourceType() simplicity.TypeName { return sourceTypes[j] }

// TargetType returns the jet's declared target TypeName.
func (j Jet) TargetType() simplicity.TypeName { return targetTypes[j] }
