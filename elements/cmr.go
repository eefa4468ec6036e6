package elements

import "rubin.dev/simplicity/simplicity"

// cmrTable holds each Elements jet's commitment Merkle root: the SHA-256
// of its ASCII identification tag, matching the literal tag strings the
// reference implementation inlines per jet (e.g.
// "Simplicity\x1fPrimitive\x1fElements\x1fversion",
// "Simplicity\x1fPrimitive\x1fElements\x1flockTime"). The tag suffix is
// camelCase, independent of jetNames' snake_case display form.
var cmrTable = func() map[Jet]simplicity.Cmr {
	m := make(map[Jet]simplicity.Cmr, len(All))
	for _, j := range All {
		tag := "Simplicity\x1fPrimitive\x1fElements\x1f" + cmrTagSuffix[j]
		m[j] = simplicity.NewCmr([]byte(tag))
	}
	return m
}()

// CMR returns the jet's commitment Merkle root.
func (j Jet) CMR() simplicity.Cmr {
	return cmrTable[j]
}
