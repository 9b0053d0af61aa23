package aes

import "git.gammaspectra.live/P2Pool/zkn/utils"

// AES is based on the mathematical behavior of binary polynomials
// (polynomials over GF(2)) modulo the irreducible polynomial x⁸ + x⁴ + x³ + x + 1.
// Addition of these binary polynomials corresponds to binary xor.
// Reducing mod poly corresponds to binary xor with poly every
// time a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0 // x⁸ + x⁴ + x³ + x + 1

// xtime multiplies v by x
func xtime(v byte) byte {
	return v<<1 ^ (0x1b & -(v >> 7))
}

// Multiply v by the constant y in GF(2⁸), 1 <= y <= 15.
// y is decomposed over {1, x, x², x³}, so only the low four bits may be set.
func Multiply(v byte, y uint8) byte {
	if y == 0 || y > 0xf {
		utils.Panicf("gf256 multiply by unsupported constant %#x", y)
	}

	xt := xtime(v)
	xt2 := xtime(xt)
	xt3 := xtime(xt2)

	var r byte
	if y&1 != 0 {
		r ^= v
	}
	if y&2 != 0 {
		r ^= xt
	}
	if y&4 != 0 {
		r ^= xt2
	}
	if y&8 != 0 {
		r ^= xt3
	}
	return r
}

// mul Multiplies b and c as GF(2) polynomials modulo poly, without branching on either operand
func mul(b, c byte) byte {
	var s byte
	for range 8 {
		// s += b when the low bit of c is set
		s ^= b & -(c & 1)
		b = xtime(b)
		c >>= 1
	}
	return s
}

// inverse returns b⁻¹ in GF(2⁸) as b²⁵⁴, mapping 0 to 0
func inverse(b byte) byte {
	// 254 = 0b11111110
	b2 := mul(b, b)
	r := b2
	p := b2
	for range 6 {
		p = mul(p, p)
		r = mul(r, p)
	}
	return r
}
