package simplicity

import "crypto/sha256"

// Cmr is a Commitment Merkle Root: the 32-byte consensus-stable identity of
// a Simplicity term or jet, used in signing and in the jet CMR table.
type Cmr [32]byte

// NewCmr hashes tag with SHA-256 to produce a literal-tag CMR, mirroring
// Simplicity's well-known-tag construction for primitive identities
// (e.g. "Simplicity\x1fPrimitive\x1fElements\x1fversion").
func NewCmr(tag []byte) Cmr {
	return Cmr(sha256.Sum256(tag))
}

// Update1 chains a base tag CMR (e.g. "Simplicity\x1fJet") with a per-jet
// 32-byte constant, matching the reference implementation's
// `cmr.update_1(Cmr::from([...]))` combinator used for jets whose identity
// is derived rather than a literal tag.
func (c Cmr) Update1(child Cmr) Cmr {
	h := sha256.New()
	h.Write(c[:])
	h.Write(child[:])
	var out Cmr
	copy(out[:], h.Sum(nil))
	return out
}

// Bytes returns the 32-byte representation.
func (c Cmr) Bytes() [32]byte { return c }
