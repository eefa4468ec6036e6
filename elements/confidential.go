// Package elements implements the Elements-blockchain extension to the
// generic jet set: confidential Asset/Value/Nonce fields, transaction and
// issuance digests, an immutable TxEnv snapshot, and the blockchain
// introspection jets that read from it.
package elements

import "rubin.dev/simplicity/simplicity"

// FieldKind names which of Asset, Value, or Nonce a ConfidentialField holds.
// The three share a tagged-union shape but differ in valid prefixes,
// payload width, and whether Null is a legal state.
type FieldKind int

const (
	KindAsset FieldKind = iota
	KindValue
	KindNonce
)

// Tag discriminates the three states a ConfidentialField may hold.
type Tag int

const (
	TagNull Tag = iota
	TagExplicit
	TagConfidential
)

// ConfidentialField is the tagged union backing Elements Asset, Value, and
// Nonce fields: Null, Explicit(payload), or Confidential(prefix, point).
type ConfidentialField struct {
	Kind    FieldKind
	Tag     Tag
	Payload []byte   // Explicit: 32 bytes (Asset/Nonce) or 8 bytes BE (Value)
	Prefix  byte     // Confidential only
	Point   [32]byte // Confidential only
}

// NullField constructs a Null field of the given kind.
func NullField(kind FieldKind) ConfidentialField {
	return ConfidentialField{Kind: kind, Tag: TagNull}
}

// ExplicitField constructs an Explicit field from a payload already in its
// canonical width (32 bytes for Asset/Nonce, 8 bytes BE for Value).
func ExplicitField(kind FieldKind, payload []byte) ConfidentialField {
	return ConfidentialField{Kind: kind, Tag: TagExplicit, Payload: append([]byte{}, payload...)}
}

// ConfidentialPoint constructs a Confidential field from its prefix byte
// and 32-byte commitment.
func ConfidentialPoint(kind FieldKind, prefix byte, point [32]byte) ConfidentialField {
	return ConfidentialField{Kind: kind, Tag: TagConfidential, Prefix: prefix, Point: point}
}

// validPrefixes returns the consensus-valid Confidential prefix set for
// this field's kind.
func (k FieldKind) validPrefixes() [2]byte {
	switch k {
	case KindAsset:
		return [2]byte{0x0a, 0x0b}
	case KindValue:
		return [2]byte{0x08, 0x09}
	case KindNonce:
		return [2]byte{0x02, 0x03}
	}
	return [2]byte{}
}

// validatePrefix rejects any prefix outside the consensus-valid set. The
// reference implementation guarded this with a disjunction
// (`prefix != a || prefix != b`) that is a tautology, effectively disabling
// the check; the corrected predicate used here is simply prefix ∉ {a, b}.
func (f ConfidentialField) validatePrefix() error {
	valid := f.Kind.validPrefixes()
	if f.Prefix == valid[0] || f.Prefix == valid[1] {
		return nil
	}
	return simplicity.NewError(simplicity.ErrCodeMalformedField, "confidential field prefix not in consensus-valid set")
}

// parityBit is 1 when the low bit of the Confidential prefix is odd
// (0x0b/0x09/0x03), 0 otherwise.
func (f ConfidentialField) parityBit() bool {
	return f.Prefix&1 == 1
}

// Digest appends this field's SHA-256 pre-image bytes to h per spec.md
// §4.4: Null writes 0x00; Explicit writes 0x01 then the payload; a valid
// Confidential writes the prefix byte then the 32-byte commitment.
func (f ConfidentialField) Digest(h interface{ Write([]byte) (int, error) }) error {
	switch f.Tag {
	case TagNull:
		_, err := h.Write([]byte{0x00})
		return err
	case TagExplicit:
		if _, err := h.Write([]byte{0x01}); err != nil {
			return err
		}
		_, err := h.Write(f.Payload)
		return err
	case TagConfidential:
		if err := f.validatePrefix(); err != nil {
			return err
		}
		if _, err := h.Write([]byte{f.Prefix}); err != nil {
			return err
		}
		_, err := h.Write(f.Point[:])
		return err
	default:
		return simplicity.NewError(simplicity.ErrCodeMalformedField, "unknown ConfidentialField tag")
	}
}

// bitWriter is the subset of *bitmachine.Machine's write-frame API this
// package needs, kept narrow so confidential.go does not import bitmachine
// directly (the codec logic is deliberately machine-agnostic; exec.go
// supplies the concrete *bitmachine.Machine at call sites).
type bitWriter interface {
	WriteBit(bool) error
	WriteBytes([]byte) error
	Skip(int) error
}

// EncodeSimplicity writes f onto w using the fixed bit layout of
// spec.md §4.5. Total width is exactly 258 bits for Asset/Value, 259 for
// Nonce, regardless of which branch is taken.
func (f ConfidentialField) EncodeSimplicity(w bitWriter) error {
	switch f.Kind {
	case KindAsset:
		return f.encodeAsset(w)
	case KindValue:
		return f.encodeValue(w)
	case KindNonce:
		return f.encodeNonce(w)
	}
	return simplicity.NewError(simplicity.ErrCodeMalformedField, "unknown ConfidentialField kind")
}

func (f ConfidentialField) encodeAsset(w bitWriter) error {
	switch f.Tag {
	case TagExplicit:
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := w.Skip(1); err != nil {
			return err
		}
		return w.WriteBytes(f.Payload)
	case TagConfidential:
		if err := f.validatePrefix(); err != nil {
			return err
		}
		if err := w.WriteBit(false); err != nil {
			return err
		}
		if err := w.WriteBit(f.parityBit()); err != nil {
			return err
		}
		return w.WriteBytes(f.Point[:])
	default:
		return simplicity.NewError(simplicity.ErrCodeMalformedField, "asset field cannot be Null")
	}
}

func (f ConfidentialField) encodeValue(w bitWriter) error {
	switch f.Tag {
	case TagExplicit:
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := w.Skip(1 + 192); err != nil {
			return err
		}
		return w.WriteBytes(f.Payload)
	case TagConfidential:
		if err := f.validatePrefix(); err != nil {
			return err
		}
		if err := w.WriteBit(false); err != nil {
			return err
		}
		if err := w.WriteBit(f.parityBit()); err != nil {
			return err
		}
		return w.WriteBytes(f.Point[:])
	default:
		return simplicity.NewError(simplicity.ErrCodeMalformedField, "value field cannot be Null")
	}
}

func (f ConfidentialField) encodeNonce(w bitWriter) error {
	switch f.Tag {
	case TagNull:
		if err := w.WriteBit(false); err != nil {
			return err
		}
		return w.Skip(258)
	case TagExplicit:
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := w.Skip(1); err != nil {
			return err
		}
		return w.WriteBytes(f.Payload)
	case TagConfidential:
		if err := f.validatePrefix(); err != nil {
			return err
		}
		if err := w.WriteBit(true); err != nil {
			return err
		}
		if err := w.WriteBit(false); err != nil {
			return err
		}
		if err := w.WriteBit(f.parityBit()); err != nil {
			return err
		}
		return w.WriteBytes(f.Point[:])
	}
	return simplicity.NewError(simplicity.ErrCodeMalformedField, "unknown ConfidentialField tag")
}
