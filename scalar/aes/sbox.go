package aes

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// affine FIPS-197 5.1.1, applied after inversion in the forward direction
func affine(q byte) byte {
	return q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4) ^ 0x63
}

// inverseAffine undoes affine, applied before inversion in the inverse direction
func inverseAffine(s byte) byte {
	return bits.RotateLeft8(s, 1) ^ bits.RotateLeft8(s, 3) ^ bits.RotateLeft8(s, 6) ^ 0x05
}

// sbox0 FIPS-197 Figure 7. S-box substitution values generation
// sbox1 is its inverse, Figure 14.
var sbox0, sbox1 = func() (sbox, inv [256]byte) {
	var p, q uint8 = 1, 1
	for {
		/* multiply p by 3 */
		p ^= xtime(p)

		/* divide q by 3 (equals multiplication by 0xf6) */
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		sbox[p] = affine(q)

		if p == 1 {
			break
		}
	}

	/* 0 is a special case since it has no inverse */
	sbox[0] = 0x63

	for i := range sbox {
		inv[sbox[i]] = byte(i)
	}
	return sbox, inv
}()

// Substitute applies the forward S-box when forward is set, otherwise the inverse S-box.
// Table lookups are indexed by b.
func Substitute(b byte, forward bool) byte {
	if forward {
		return sbox0[b]
	}
	return sbox1[b]
}

// SubstituteAlgebraic computes the same mapping as Substitute without tables:
// both directions share the field inversion, surrounded by the forward or inverse affine map.
func SubstituteAlgebraic(b byte, forward bool) byte {
	if forward {
		return affine(inverse(b))
	}
	return inverse(inverseAffine(b))
}

// SBoxMode selects the byte substitution implementation used by a Core
type SBoxMode int

const (
	SBoxTable = SBoxMode(iota)
	SBoxAlgebraic
)

func (m SBoxMode) String() string {
	switch m {
	case SBoxTable:
		return "table"
	case SBoxAlgebraic:
		return "algebraic"
	}
	return ""
}

// Func returns the substitution function for this mode
func (m SBoxMode) Func() (func(b byte, forward bool) byte, error) {
	switch m {
	case SBoxTable:
		return Substitute, nil
	case SBoxAlgebraic:
		return SubstituteAlgebraic, nil
	}
	return nil, utils.ErrorfNoEscape("unknown sbox mode %d", int(m))
}

func (m SBoxMode) MarshalJSON() ([]byte, error) {
	return []byte("\"" + m.String() + "\""), nil
}

func (m *SBoxMode) UnmarshalJSON(b []byte) error {
	var s string
	if err := utils.UnmarshalJSON(b, &s); err != nil {
		return err
	}

	switch s {
	case "", "table": //default
		*m = SBoxTable
	case "algebraic":
		*m = SBoxAlgebraic
	default:
		return utils.ErrorfNoEscape("unknown sbox mode %s", s)
	}
	return nil
}
