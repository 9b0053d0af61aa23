package aes

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/zkn/types"
)

// core64 processes half of the 128-bit state per operation, the other half being passed as rs2
type core64 struct {
	sub func(b byte, forward bool) byte
}

func (c core64) XLen() int {
	return 64
}

// subBytes applies the S-box to each byte of w in place
func (c core64) subBytes(w uint64, forward bool) (r uint64) {
	for i := range 8 {
		r |= uint64(c.sub(byte(w>>(i*8)), forward)) << (i * 8)
	}
	return r
}

func (c core64) Evaluate(op types.OperationCode, _, rnum uint8, rs1, rs2 uint64) (uint64, error) {
	switch op {
	case types.OperationEncryptSubShiftMix, types.OperationDecryptSubShiftMix:
		return c.subBytes(ShiftRows(rs1, rs2, op.IsEncrypt()), op.IsEncrypt()), nil

	case types.OperationEncryptSubShiftMixM, types.OperationDecryptSubShiftMixM:
		so := c.subBytes(ShiftRows(rs1, rs2, op.IsEncrypt()), op.IsEncrypt())
		return MixColumn64(so, op.IsEncrypt()), nil

	case types.OperationInverseMixColumns:
		return MixColumn64(rs1, false), nil

	case types.OperationKeySchedule1:
		rnum &= 0xf
		tmp1 := uint32(rs1 >> 32)
		tmp2 := tmp1
		// round 10 is the extra AES-256 step, which skips RotWord
		if rnum != 0xa {
			tmp2 = bits.RotateLeft32(tmp1, -8)
		}
		tmp4 := uint32(c.subBytes(uint64(tmp2), true)) ^ uint32(RoundConstant(rnum))
		return uint64(tmp4)<<32 | uint64(tmp4), nil

	case types.OperationKeySchedule2:
		w0 := uint32(rs1>>32) ^ uint32(rs2)
		w1 := w0 ^ uint32(rs2>>32)
		return uint64(w1)<<32 | uint64(w0), nil
	}

	return 0, ErrUnsupportedOperation
}
