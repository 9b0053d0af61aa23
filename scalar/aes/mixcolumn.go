package aes

import "math/bits"

// MixColumn8 returns the column contribution of a single byte, most significant byte first:
// {3·b, b, b, 2·b} when encrypting, {11·b, 13·b, 9·b, 14·b} otherwise.
func MixColumn8(b byte, encrypt bool) uint32 {
	if encrypt {
		return uint32(Multiply(b, 3))<<24 | uint32(b)<<16 | uint32(b)<<8 | uint32(Multiply(b, 2))
	}
	return uint32(Multiply(b, 0xb))<<24 | uint32(Multiply(b, 0xd))<<16 | uint32(Multiply(b, 9))<<8 | uint32(Multiply(b, 0xe))
}

// MixColumn32 applies MixColumns (encrypt) or InvMixColumns to one state column.
// Row i of the column is byte i of w, counting from the least significant byte.
func MixColumn32(w uint32, encrypt bool) uint32 {
	var r uint32
	for i := range 4 {
		r ^= bits.RotateLeft32(MixColumn8(byte(w>>(i*8)), encrypt), i*8)
	}
	return r
}

// MixColumn64 applies MixColumn32 to both halves of w independently
func MixColumn64(w uint64, encrypt bool) uint64 {
	return uint64(MixColumn32(uint32(w>>32), encrypt))<<32 | uint64(MixColumn32(uint32(w), encrypt))
}
