package aes

import (
	"errors"

	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// ErrUnsupportedOperation is returned by cores that have no datapath for an AES operation,
// such as the key schedule operations on a 32-bit core.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Powers of x mod poly in GF(2), padded with zero to cover all 4-bit round numbers.
var roundConstants = [16]byte{
	0x01,
	0x02,
	0x04,
	0x08,
	0x10,
	0x20,
	0x40,
	0x80,
	0x1b,
	0x36,
	0x00,
	0x00,
	0x00,
	0x00,
	0x00,
	0x00,
}

// RoundConstant returns rcon for the given round number; only the low four bits are used.
func RoundConstant(rnum uint8) byte {
	return roundConstants[rnum&0xf]
}

// Core evaluates the AES operations for one register width.
// Implementations are stateless and safe for concurrent use.
type Core interface {
	XLen() int
	// Evaluate computes op over rs1 and rs2. bs is used by 32-bit cores, rnum by the 64-bit key schedule.
	Evaluate(op types.OperationCode, bs, rnum uint8, rs1, rs2 uint64) (uint64, error)
}

// New returns the AES core for a register width of 32 or 64 bits
func New(xlen int, mode SBoxMode) (Core, error) {
	sub, err := mode.Func()
	if err != nil {
		return nil, err
	}

	switch xlen {
	case 32:
		return core32{sub: sub}, nil
	case 64:
		return core64{sub: sub}, nil
	}
	return nil, utils.ErrorfNoEscape("unsupported xlen %d", xlen)
}
