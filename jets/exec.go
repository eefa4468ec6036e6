package jets

import (
	"rubin.dev/simplicity/bitmachine"
	"rubin.dev/simplicity/simplicity"
)

// Exec runs the jet against the machine's current top read/write frames.
// The caller is responsible for framing: a source frame sized to
// j.SourceType().Width() must be the active read frame, and a write frame
// sized to j.TargetType().Width() must be the active write frame.
func (j Jet) Exec(mac *bitmachine.Machine) error {
	switch j {
	case Adder32:
		return execAdder32(mac)
	case Subtractor32:
		return execSubtractor32(mac)
	case FullAdder32:
		return execFullAdder32(mac)
	case FullSubtractor32:
		return execFullSubtractor32(mac)
	case Multiplier32:
		return execMultiplier32(mac)
	case FullMultiplier32:
		return execFullMultiplier32(mac)
	case Sha256HashBlock:
		return execSha256HashBlock(mac)
	case SchnorrAssert:
		return execSchnorrAssert(mac)
	case EqV256:
		return execEqV256(mac)
	case Sha256:
		return execSha256(mac)
	case LessThanV32:
		return execLessThanV32(mac)
	case EqV32:
		return execEqV32(mac)
	default:
		return simplicity.NewError(simplicity.ErrCodeBadJet, "unknown jet")
	}
}

func readPair32(mac *bitmachine.Machine) (uint32, uint32, error) {
	a, err := mac.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	b, err := mac.ReadU32()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func execAdder32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	sum := uint64(a) + uint64(b)
	if err := mac.WriteBit(sum > 0xFFFFFFFF); err != nil {
		return err
	}
	return mac.WriteU32(uint32(sum))
}

func execFullAdder32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	cin, err := mac.ReadBit()
	if err != nil {
		return err
	}
	sum := uint64(a) + uint64(b)
	if cin {
		sum++
	}
	if err := mac.WriteBit(sum > 0xFFFFFFFF); err != nil {
		return err
	}
	return mac.WriteU32(uint32(sum))
}

func execSubtractor32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	diff := int64(a) - int64(b)
	borrow := diff < 0
	if borrow {
		diff += 1 << 32
	}
	if err := mac.WriteBit(borrow); err != nil {
		return err
	}
	return mac.WriteU32(uint32(diff))
}

func execFullSubtractor32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	bin, err := mac.ReadBit()
	if err != nil {
		return err
	}
	diff := int64(a) - int64(b)
	if bin {
		diff--
	}
	borrow := diff < 0
	if borrow {
		diff += 1 << 32
	}
	if err := mac.WriteBit(borrow); err != nil {
		return err
	}
	return mac.WriteU32(uint32(diff))
}

func execMultiplier32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	return mac.WriteU64(uint64(a) * uint64(b))
}

func execFullMultiplier32(mac *bitmachine.Machine) error {
	a, err := mac.ReadU32()
	if err != nil {
		return err
	}
	b, err := mac.ReadU32()
	if err != nil {
		return err
	}
	c, err := mac.ReadU32()
	if err != nil {
		return err
	}
	d, err := mac.ReadU32()
	if err != nil {
		return err
	}
	result := uint64(a)*uint64(b) + uint64(c) + uint64(d)
	return mac.WriteU64(result)
}

func execSha256HashBlock(mac *bitmachine.Machine) error {
	midstate, err := mac.Read32Bytes()
	if err != nil {
		return err
	}
	var block [64]byte
	half1, err := mac.ReadBytes(32)
	if err != nil {
		return err
	}
	half2, err := mac.ReadBytes(32)
	if err != nil {
		return err
	}
	copy(block[:32], half1)
	copy(block[32:], half2)

	newState := sha256Compress(midstate, block)
	return mac.WriteBytes(newState[:])
}

// execSchnorrAssert consumes a 32-byte public key and a 64-byte signature
// and always succeeds. Real BIP-340 verification is out of scope: no
// secp256k1 Schnorr verifier exists in this module's dependency set, and
// the reference jet itself is a no-op stub pending a future revision that
// pins down the signature scheme and message binding.
func execSchnorrAssert(mac *bitmachine.Machine) error {
	if _, err := mac.ReadBytes(32); err != nil {
		return err
	}
	if _, err := mac.ReadBytes(64); err != nil {
		return err
	}
	return nil
}

func execEqV256(mac *bitmachine.Machine) error {
	a, err := mac.Read32Bytes()
	if err != nil {
		return err
	}
	b, err := mac.Read32Bytes()
	if err != nil {
		return err
	}
	if a != b {
		return simplicity.NewError(simplicity.ErrCodeAssertionFailed, "eq_256: operands differ")
	}
	return nil
}

func execSha256(mac *bitmachine.Machine) error {
	a, err := mac.Read32Bytes()
	if err != nil {
		return err
	}
	b, err := mac.Read32Bytes()
	if err != nil {
		return err
	}
	var msg [64]byte
	copy(msg[:32], a[:])
	copy(msg[32:], b[:])
	digest := sha256FromScratch(msg[:])
	return mac.WriteBytes(digest[:])
}

func execLessThanV32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	if !(a < b) {
		return simplicity.NewError(simplicity.ErrCodeAssertionFailed, "le_32: operands not strictly ordered")
	}
	return nil
}

func execEqV32(mac *bitmachine.Machine) error {
	a, b, err := readPair32(mac)
	if err != nil {
		return err
	}
	if a != b {
		return simplicity.NewError(simplicity.ErrCodeAssertionFailed, "eq_32: operands differ")
	}
	return nil
}
