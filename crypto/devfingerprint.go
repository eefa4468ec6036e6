package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// DevFingerprintProvider is a development-only HashProvider: Sha256 still
// matches the consensus primitive, but Fingerprint uses SHA3-256 so a
// build's diagnostic fixture fingerprint (see cmd/simplicity-fixtures)
// is visibly distinguishable from a real consensus digest. It does not
// claim FIPS compliance and must never back a jet executor.
type DevFingerprintProvider struct{}

func (DevFingerprintProvider) Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func (DevFingerprintProvider) Fingerprint(data []byte) [32]byte {
	h := sha3.New256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
