package jets

import "rubin.dev/simplicity/simplicity"

// jetUpdate1Const is the literal 32-byte constant the reference chains onto
// the "Simplicity\x1fJet" base tag via Cmr.Update1 for each generic jet
// (extension/jets.rs JetsNode::cmr). The hash/assertion group's constants
// are the sha2 block constant with only its last byte perturbed, exactly
// as the reference comments note.
var jetUpdate1Const = map[Jet][32]byte{
	Adder32: {
		0x5e, 0xa6, 0x71, 0x42, 0xf7, 0x75, 0xea, 0x2b, 0xa2, 0x85, 0xce, 0xfb, 0x39, 0xc1,
		0xa4, 0x71, 0xd9, 0x77, 0x6a, 0x6e, 0x43, 0xc5, 0x95, 0x78, 0x15, 0xf7, 0xe8, 0x41,
		0x2d, 0x32, 0x6d, 0xca,
	},
	FullAdder32: {
		0xfc, 0xc5, 0xca, 0x69, 0xd1, 0x7a, 0x3f, 0x3f, 0xb9, 0xad, 0x3b, 0x8f, 0x0e, 0xfc,
		0x7a, 0xdb, 0x50, 0x78, 0x00, 0xe0, 0xb8, 0x17, 0xe7, 0xcc, 0x1f, 0xcd, 0x55, 0xa3,
		0xcf, 0xc3, 0x8d, 0xba,
	},
	Subtractor32: {
		0xf6, 0x9f, 0x42, 0x44, 0xba, 0x60, 0x13, 0x46, 0x77, 0x56, 0x70, 0x93, 0x3a, 0x56,
		0x8a, 0xac, 0x76, 0x8d, 0xd4, 0x51, 0x2d, 0x58, 0xc8, 0x06, 0x8b, 0x0e, 0xd4, 0x8b,
		0x91, 0xb1, 0x71, 0x8f,
	},
	FullSubtractor32: {
		0x6a, 0x29, 0xf1, 0x82, 0xb0, 0xf5, 0xfd, 0x9c, 0x15, 0x4c, 0x79, 0x21, 0x62, 0x6e,
		0xcb, 0x36, 0x0a, 0x3c, 0x9c, 0x8a, 0x2b, 0xe3, 0x2b, 0xf7, 0x8a, 0x20, 0xed, 0x1f,
		0x25, 0xb6, 0xe1, 0xfd,
	},
	Multiplier32: {
		0x89, 0x00, 0x14, 0x56, 0xbc, 0x90, 0x36, 0x7f, 0x13, 0x37, 0x3b, 0x30, 0xab, 0x66,
		0xec, 0x95, 0x2b, 0xab, 0x79, 0x6e, 0x3b, 0x7a, 0xe4, 0xa0, 0x5a, 0xaf, 0x40, 0xb0,
		0x0c, 0x23, 0x97, 0x93,
	},
	FullMultiplier32: {
		0xe5, 0x0a, 0x5a, 0x6f, 0x78, 0xb4, 0x09, 0x0b, 0x29, 0x1e, 0x64, 0x5c, 0x3d, 0x28,
		0x0a, 0xbb, 0x57, 0x4e, 0xa9, 0xa9, 0x44, 0xe4, 0x0c, 0x21, 0x97, 0x9e, 0xdb, 0x8c,
		0x6e, 0x35, 0xc3, 0xf4,
	},
	Sha256HashBlock: {
		0xc9, 0xd1, 0x32, 0x60, 0x2d, 0xb6, 0x3d, 0xd4, 0x98, 0x1d, 0xa5, 0x8c, 0x6c, 0xda,
		0xd3, 0x05, 0x9e, 0x9c, 0xa7, 0x03, 0xe9, 0x78, 0xb6, 0x27, 0xcf, 0xe5, 0xe3, 0xe5,
		0x69, 0xa2, 0xf6, 0x76,
	},
	SchnorrAssert: { // only last byte changed to 0x9b from the sha2 block cmr
		0xee, 0xae, 0x47, 0xe2, 0xf7, 0x87, 0x6c, 0x3b, 0x9c, 0xbc, 0xd4, 0x04, 0xa3, 0x38,
		0xb0, 0x89, 0xfd, 0xea, 0xdf, 0x1b, 0x9b, 0xb3, 0x82, 0xec, 0x6e, 0x69, 0x71, 0x9d,
		0x31, 0xba, 0xec, 0x9b,
	},
	EqV256: { // only last byte changed to 0x9c from the sha2 block cmr
		0xee, 0xae, 0x47, 0xe2, 0xf7, 0x87, 0x6c, 0x3b, 0x9c, 0xbc, 0xd4, 0x04, 0xa3, 0x38,
		0xb0, 0x89, 0xfd, 0xea, 0xdf, 0x1b, 0x9b, 0xb3, 0x82, 0xec, 0x6e, 0x69, 0x71, 0x9d,
		0x31, 0xba, 0xec, 0x9c,
	},
	Sha256: { // only last byte changed to 0x9d from the sha2 block cmr
		0xee, 0xae, 0x47, 0xe2, 0xf7, 0x87, 0x6c, 0x3b, 0x9c, 0xbc, 0xd4, 0x04, 0xa3, 0x38,
		0xb0, 0x89, 0xfd, 0xea, 0xdf, 0x1b, 0x9b, 0xb3, 0x82, 0xec, 0x6e, 0x69, 0x71, 0x9d,
		0x31, 0xba, 0xec, 0x9d,
	},
	LessThanV32: { // only last byte changed to 0x9e from the sha2 block cmr
		0xee, 0xae, 0x47, 0xe2, 0xf7, 0x87, 0x6c, 0x3b, 0x9c, 0xbc, 0xd4, 0x04, 0xa3, 0x38,
		0xb0, 0x89, 0xfd, 0xea, 0xdf, 0x1b, 0x9b, 0xb3, 0x82, 0xec, 0x6e, 0x69, 0x71, 0x9d,
		0x31, 0xba, 0xec, 0x9e,
	},
	EqV32: { // only last byte changed to 0x9f from the sha2 block cmr
		0xee, 0xae, 0x47, 0xe2, 0xf7, 0x87, 0x6c, 0x3b, 0x9c, 0xbc, 0xd4, 0x04, 0xa3, 0x38,
		0xb0, 0x89, 0xfd, 0xea, 0xdf, 0x1b, 0x9b, 0xb3, 0x82, 0xec, 0x6e, 0x69, 0x71, 0x9d,
		0x31, 0xba, 0xec, 0x9f,
	},
}

// cmrTable holds the consensus-stable CMR for every generic jet: the
// "Simplicity\x1fJet" base tag, chained via Cmr.Update1 with the jet's
// literal 32-byte constant above, matching JetsNode::cmr exactly.
var cmrTable = func() map[Jet]simplicity.Cmr {
	base := simplicity.NewCmr([]byte("Simplicity\x1fJet"))
	m := make(map[Jet]simplicity.Cmr, len(All))
	for j, c := range jetUpdate1Const {
		m[j] = base.Update1(simplicity.Cmr(c))
	}
	return m
}()

// CMR returns the jet's commitment Merkle root.
func (j Jet) CMR() simplicity.Cmr {
	return cmrTable[j]
}
