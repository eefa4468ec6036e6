package elements

// Jet identifies one member of the Elements blockchain-introspection jet
// enumeration. Unlike the generic jets, every executor here also takes a
// *TxEnv alongside the machine.
type Jet uint8

const (
	Version Jet = iota
	LockTime
	InputIsPegin
	InputPrevOutpoint
	InputAsset
	InputAmount
	InputScriptHash
	InputSequence
	InputIssuanceBlinding
	InputIssuanceContract
	InputIssuanceEntropy
	InputIssuanceAssetAmount
	InputIssuanceTokenAmount
	OutputAsset
	OutputAmount
	OutputNonce
	OutputScriptHash
	OutputNullDatum
	ScriptCmr
	CurrentIndex
	CurrentIsPegin
	CurrentPrevOutpoint
	CurrentAsset
	CurrentAmount
	CurrentScriptHash
	CurrentSequence
	CurrentIssuanceBlinding
	CurrentIssuanceContract
	CurrentIssuanceEntropy
	CurrentIssuanceAssetAmount
	CurrentIssuanceTokenAmount
	InputsHashJet
	OutputsHashJet
	NumInputs
	NumOutputs
	Fee
)

// All enumerates every Elements jet, in declaration order.
var All = []Jet{
	Version, LockTime, InputIsPegin, InputPrevOutpoint, InputAsset, InputAmount,
	InputScriptHash, InputSequence, InputIssuanceBlinding, InputIssuanceContract,
	InputIssuanceEntropy, InputIssuanceAssetAmount, InputIssuanceTokenAmount,
	OutputAsset, OutputAmount, OutputNonce, OutputScriptHash, OutputNullDatum,
	ScriptCmr, CurrentIndex, CurrentIsPegin, CurrentPrevOutpoint, CurrentAsset,
	CurrentAmount, CurrentScriptHash, CurrentSequence, CurrentIssuanceBlinding,
	CurrentIssuanceContract, CurrentIssuanceEntropy, CurrentIssuanceAssetAmount,
	CurrentIssuanceTokenAmount, InputsHashJet, OutputsHashJet, NumInputs,
	NumOutputs, Fee,
}

var jetNames = map[Jet]string{
	Version:                    "version",
	LockTime:                   "lock_time",
	InputIsPegin:               "input_is_pegin",
	InputPrevOutpoint:          "input_prev_outpoint",
	InputAsset:                 "input_asset",
	InputAmount:                "input_amount",
	InputScriptHash:            "input_script_hash",
	InputSequence:              "input_sequence",
	InputIssuanceBlinding:      "input_issuance_blinding",
	InputIssuanceContract:      "input_issuance_contract",
	InputIssuanceEntropy:       "input_issuance_entropy",
	InputIssuanceAssetAmount:   "input_issuance_asset_amount",
	InputIssuanceTokenAmount:   "input_issuance_token_amount",
	OutputAsset:                "output_asset",
	OutputAmount:               "output_amount",
	OutputNonce:                "output_nonce",
	OutputScriptHash:           "output_script_hash",
	OutputNullDatum:            "output_null_datum",
	ScriptCmr:                  "script_cmr",
	CurrentIndex:               "current_index",
	CurrentIsPegin:             "current_is_pegin",
	CurrentPrevOutpoint:        "current_prev_outpoint",
	CurrentAsset:               "current_asset",
	CurrentAmount:              "current_amount",
	CurrentScriptHash:          "current_script_hash",
	CurrentSequence:            "current_sequence",
	CurrentIssuanceBlinding:    "current_issuance_blinding",
	CurrentIssuanceContract:    "current_issuance_contract",
	CurrentIssuanceEntropy:     "current_issuance_entropy",
	CurrentIssuanceAssetAmount: "current_issuance_asset_amount",
	CurrentIssuanceTokenAmount: "current_issuance_token_amount",
	InputsHashJet:              "inputs_hash",
	OutputsHashJet:             "outputs_hash",
	NumInputs:                  "num_inputs",
	NumOutputs:                 "num_outputs",
	Fee:                        "fee",
}

// cmrTagSuffix holds the literal tag suffix the reference hashes into each
// jet's CMR (extension/elements/jets.rs ElementsNode::cmr). These are
// camelCase and independent of jetNames' snake_case display form above.
var cmrTagSuffix = map[Jet]string{
	Version:                    "version",
	LockTime:                   "lockTime",
	InputIsPegin:               "inputIsPegin",
	InputPrevOutpoint:          "inputPrevOutpoint",
	InputAsset:                 "inputAsset",
	InputAmount:                "inputAmount",
	InputScriptHash:            "inputScriptHash",
	InputSequence:              "inputSequence",
	InputIssuanceBlinding:      "inputIssuanceBlinding",
	InputIssuanceContract:      "inputIssuanceContract",
	InputIssuanceEntropy:       "inputIssuanceEntropy",
	InputIssuanceAssetAmount:   "inputIssuanceAssetAmt",
	InputIssuanceTokenAmount:   "inputIssuanceTokenAmt",
	OutputAsset:                "outputAsset",
	OutputAmount:               "outputAmount",
	OutputNonce:                "outputNonce",
	OutputScriptHash:           "outputScriptHash",
	OutputNullDatum:            "outputNullDatum",
	ScriptCmr:                  "scriptCMR",
	CurrentIndex:               "currentIndex",
	CurrentIsPegin:             "currentIsPegin",
	CurrentPrevOutpoint:        "currentPrevOutpoint",
	CurrentAsset:               "currentAsset",
	CurrentAmount:              "currentAmount",
	CurrentScriptHash:          "currentScriptHash",
	CurrentSequence:            "currentSequence",
	CurrentIssuanceBlinding:    "currentIssuanceBlinding",
	CurrentIssuanceContract:    "currentIssuanceContract",
	CurrentIssuanceEntropy:     "currentIssuanceEntropy",
	CurrentIssuanceAssetAmount: "currentIssuanceAssetAmt",
	CurrentIssuanceTokenAmount: "currentIssuanceTokenAmt",
	InputsHashJet:              "inputsHash",
	OutputsHashJet:             "outputsHash",
	NumInputs:                  "numInputs",
	NumOutputs:                 "numOutputs",
	Fee:                        "fee",
}

func (j Jet) String() string {
	if n, ok := jetNames[j]; ok {
		return n
	}
	return "unknown"
}
