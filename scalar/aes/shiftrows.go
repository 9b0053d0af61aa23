package aes

import (
	"lukechampine.com/uint128"
)

const (
	shiftRowsStrideEncrypt = 5
	shiftRowsStrideDecrypt = 13
)

// ShiftRows produces one half of the (Inv)ShiftRows permutation of a state held in two registers.
//
// The state bytes are in1 followed by in2, each least significant byte first, giving state bytes 0..15
// in column-major order. Output byte j takes state byte j·stride for j < 4 and (j-4)·stride + 4 for j >= 4,
// modulo 16, with a stride of 5 when encrypting and 13 when decrypting.
// Calling with (lo, hi) yields the low half of the permuted state, (hi, lo) the high half.
func ShiftRows(in1, in2 uint64, encrypt bool) uint64 {
	stride := shiftRowsStrideDecrypt
	if encrypt {
		stride = shiftRowsStrideEncrypt
	}

	src := uint128.New(in1, in2)

	var r uint64
	for j := range 8 {
		var idx int
		if j < 4 {
			idx = (j * stride) % 16
		} else {
			idx = ((j-4)*stride + 4) % 16
		}
		r |= (src.Rsh(uint(idx) * 8).Lo & 0xff) << (j * 8)
	}
	return r
}

// ShiftRowsState applies (Inv)ShiftRows to a full state, byte 0 being the least significant byte of state
func ShiftRowsState(state uint128.Uint128, encrypt bool) uint128.Uint128 {
	return uint128.New(
		ShiftRows(state.Lo, state.Hi, encrypt),
		ShiftRows(state.Hi, state.Lo, encrypt),
	)
}
