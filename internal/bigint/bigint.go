// Package bigint supplies the opaque arbitrary-precision Integer value
// spec.md §1 assumes is available from outside the front end: an external
// collaborator, consumed here only through this tiny decode interface.
package bigint

import "math/big"

// Integer is an arbitrary-precision integer, decoded from a scanned integer
// literal's decimal digits.
type Integer struct {
	v *big.Int
}

// FromDecimalDigits decodes an unsigned decimal digit run (as produced by
// the raw scanner's integer-literal rule, spec.md §4.C) into an Integer.
// The digits are assumed already validated by the scanner; a malformed
// string yields the zero Integer rather than panicking, matching spec.md §7
// ("errors are data, not control flow") for this external collaborator too.
func FromDecimalDigits(digits string) Integer {
	v := new(big.Int)
	if _, ok := v.SetString(digits, 10); !ok {
		return Integer{v: big.NewInt(0)}
	}
	return Integer{v: v}
}

// String renders the integer in decimal.
func (i Integer) String() string {
	if i.v == nil {
		return "0"
	}
	return i.v.String()
}

// Equal reports whether two Integers denote the same value.
func (i Integer) Equal(o Integer) bool {
	return i.asBig().Cmp(o.asBig()) == 0
}

func (i Integer) asBig() *big.Int {
	if i.v == nil {
		return big.NewInt(0)
	}
	return i.v
}
