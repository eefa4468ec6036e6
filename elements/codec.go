package elements

import (
	"rubin.dev/simplicity/bitmachine"
	"rubin.dev/simplicity/simplicity"
)

// Wire codes for Elements jets. Every Elements jet gets a distinct fixed
// 6-bit ordinal (0..35, its position in All) after a 2-bit
// extension-selector prefix "10" (the jets package reserves "11" for the
// generic/hash group), which is prefix-free and keeps jets in the same
// declaration order the reference enumeration uses. The reference
// encoder's layout (a 5-bit primary code with codes 0, 4, 8 and 12
// borrowing an extra bit to distinguish a paired jet) is not used, so
// these wire codes differ from it.
var ordinals = func() map[Jet]uint8 {
	m := make(map[Jet]uint8, len(All))
	for i, j := range All {
		m[j] = uint8(i)
	}
	return m
}()

var byOrdinal = func() map[uint8]Jet {
	m := make(map[uint8]Jet, len(All))
	for i, j := range All {
		m[uint8(i)] = j
	}
	return m
}()

// Encode writes the jet's wire code, including the extension-selector
// prefix, to w.
func (j Jet) Encode(w *bitmachine.BitWriter) {
	w.WriteU8(0b10, 2)
	w.WriteU8(ordinals[j], 6)
}

// Decode reads an Elements jet's wire code, including the extension
// prefix, from it.
func Decode(it *bitmachine.BitIter) (Jet, error) {
	prefix, err := it.ReadBitsBE(2)
	if err != nil {
		return 0, err
	}
	if prefix != 0b10 {
		return 0, simplicity.NewError(simplicity.ErrCodeBadJet, "elements jet wire code must begin with 10")
	}
	ord, err := it.ReadBitsBE(6)
	if err != nil {
		return 0, err
	}
	j, ok := byOrdinal[uint8(ord)]
	if !ok {
		return 0, simplicity.NewError(simplicity.ErrCodeBadJet, "unassigned elements jet ordinal")
	}
	return j, nil
}
