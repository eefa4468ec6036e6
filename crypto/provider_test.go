package crypto

import "testing"

func TestProvidersAgreeOnSha256(t *testing.T) {
	data := []byte("simplicity")
	std := StdHashProvider{}.Sha256(data)
	dev := DevFingerprintProvider{}.Sha256(data)
	if std != dev {
		t.Fatal("Sha256 must be the same consensus primitive across providers")
	}
}

func TestDevFingerprintDiffersFromSha256(t *testing.T) {
	data := []byte("simplicity")
	p := DevFingerprintProvider{}
	if p.Fingerprint(data) == p.Sha256(data) {
		t.Fatal("fingerprint should use a distinguishable algorithm from sha256")
	}
}

func TestHashProviderInterfaceSatisfied(t *testing.T) {
	var _ HashProvider = StdHashProvider{}
	var _ HashProvider = DevFingerprintProvider{}
}
