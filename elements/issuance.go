package elements

// The issuance-related jets follow an optional-field pattern gated on two
// independent conditions: whether the input carries an issuance at all,
// and, if so, whether that issuance is a reissue or a brand new issue.
// These helpers name each jet's specific presence condition (spec.md
// §4.6), grounded on the reference's blinding_issuance/contract_issuance/
// entropy_issuance/asset_amt_issuance/inflation_amt_issuance predicates.

// blindingPresent reports whether InputIssuanceBlinding/
// CurrentIssuanceBlinding should reveal a payload: the input has an
// issuance and that issuance is a reissue.
func blindingPresent(in *TxIn) bool {
	return in.Issuance != nil && in.Issuance.IsReissue()
}

// contractPresent reports whether InputIssuanceContract/
// CurrentIssuanceContract should reveal a payload: the input has an
// issuance and that issuance is a new issue.
func contractPresent(in *TxIn) bool {
	return in.Issuance != nil && !in.Issuance.IsReissue()
}

// entropyPresent reports whether InputIssuanceEntropy/
// CurrentIssuanceEntropy should reveal a payload: same condition as
// blinding, since entropy is only meaningful once an asset tag has been
// fixed by a prior issuance.
func entropyPresent(in *TxIn) bool {
	return in.Issuance != nil && in.Issuance.IsReissue()
}

// assetAmountPresent reports whether InputIssuanceAssetAmount/
// CurrentIssuanceAssetAmount should reveal a payload: the input has an
// issuance whose asset amount is not Null.
func assetAmountPresent(in *TxIn) bool {
	return in.Issuance != nil && in.Issuance.Amount.Tag != TagNull
}

// tokenAmountPresent reports whether InputIssuanceTokenAmount/
// CurrentIssuanceTokenAmount should reveal a payload: the input has an
// issuance whose inflation-token amount is not Null.
func tokenAmountPresent(in *TxIn) bool {
	return in.Issuance != nil && in.Issuance.InflationKeys.Tag != TagNull
}
