// Package jets implements the generic, blockchain-agnostic Simplicity jet
// set: 32-bit arithmetic, SHA-256 compression, and a small group of
// assertion jets used for early tooling. Each jet has a fixed source/target
// type, a stable CMR, a bit-level wire code, and a bit-machine executor.
package jets

import "rubin.dev/simplicity/simplicity"

// Jet identifies one member of the closed generic jet enumeration.
type Jet uint8

const (
	Adder32 Jet = iota
	Subtractor32
	FullAdder32
	FullSubtractor32
	Multiplier32
	FullMultiplier32
	Sha256HashBlock
	SchnorrAssert
	EqV256
	Sha256
	LessThanV32
	EqV32
)

// All enumerates every generic jet, in declaration order.
var All = []Jet{
	Adder32, Subtractor32, FullAdder32, FullSubtractor32,
	Multiplier32, FullMultiplier32, Sha256HashBlock,
	SchnorrAssert, EqV256, Sha256, LessThanV32, EqV32,
}

func (j Jet) String() string {
	switch j {
	case Adder32:
		return "adder32"
	case Subtractor32:
		return "subtractor32"
	case FullAdder32:
		return "fulladder32"
	case FullSubtractor32:
		return "fullsubtractor32"
	case Multiplier32:
		return "multiplier32"
	case FullMultiplier32:
		return "fullmultiplier32"
	case Sha256HashBlock:
		return "sha256hashblock"
	case SchnorrAssert:
		return "schnorrassert"
	case EqV256:
		return "eqv256"
	case Sha256:
		return "sha256"
	case LessThanV32:
		return "le32"
	case EqV32:
		return "eqv32"
	default:
		return "unknown"
	}
}

// SourceType returns the jet's declared source TypeName.
func (j Jet) SourceType() simplicity.TypeName {
	switch j {
	case Adder32, Subtractor32, Multiplier32, LessThanV32, EqV32:
		return simplicity.TypeName("l")
	case FullAdder32, FullSubtractor32:
		return simplicity.TypeName("*l2")
	case FullMultiplier32:
		return simplicity.TypeName("*ll")
	case Sha256HashBlock, SchnorrAssert:
		return simplicity.TypeName("*h*hh")
	case EqV256, Sha256:
		return simplicity.TypeName("*hh")
	default:
		return ""
	}
}

// TargetType returns the jet's declared target TypeName.
func (j Jet) TargetType() simplicity.TypeName {
	switch j {
	case Adder32, FullAdder32, Subtractor32, FullSubtractor32:
		return simplicity.TypeName("*2i")
	case Multiplier32, FullMultiplier32:
		return simplicity.TypeName("l")
	case Sha256HashBlock, Sha256:
		return simplicity.TypeName("h")
	case SchnorrAssert, EqV256, LessThanV32, EqV32:
		return simplicity.TypeName("1")
	default:
		return ""
	}
}
