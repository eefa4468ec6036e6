// Package crypto supplies the hash backends used outside the
// consensus-critical jet path: a standard-library SHA-256 provider for
// anything that must match the evaluator's own digests, and a diagnostic
// fingerprint provider used only by tooling.
package crypto

// HashProvider is the narrow hashing interface used by non-jet tooling.
// Jet executors and transaction digests compute SHA-256 themselves
// (crypto/sha256, or the jets package's own compression function) rather
// than going through this interface, since their digests are part of the consensus-critical
// surface and must never depend on which provider happens to be wired.
type HashProvider interface {
	Sha256(data []byte) [32]byte
	Fingerprint(data []byte) [32]byte
}
