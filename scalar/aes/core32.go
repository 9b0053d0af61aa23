package aes

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// core32 processes one state byte per operation, accumulating a whole column into rs1 over four calls
type core32 struct {
	sub func(b byte, forward bool) byte
}

func (c core32) XLen() int {
	return 32
}

func (c core32) Evaluate(op types.OperationCode, bs, _ uint8, rs1, rs2 uint64) (uint64, error) {
	switch op {
	case types.OperationEncryptSubShiftMix, types.OperationEncryptSubShiftMixM,
		types.OperationDecryptSubShiftMix, types.OperationDecryptSubShiftMixM:
	default:
		return 0, ErrUnsupportedOperation
	}

	bs &= 3

	si := byte(rs2 >> (uint(bs) * 8))
	so := c.sub(si, op.IsEncrypt())

	var mixed uint32
	if op == types.OperationEncryptSubShiftMix || op == types.OperationDecryptSubShiftMix {
		mixed = uint32(so)
	} else {
		mixed = MixColumn8(so, op == types.OperationEncryptSubShiftMixM)
	}

	// rotating the most significant first byte vector right by bs moves byte i into the position of row i + bs
	var in, out [4]byte
	binary.BigEndian.PutUint32(in[:], mixed)
	utils.BarrelShift(out[:], in[:], uint(bs), utils.RightRotate)

	return uint64(uint32(rs1) ^ binary.BigEndian.Uint32(out[:])), nil
}
