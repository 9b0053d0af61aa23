// Package sha2 implements the SHA-256 and SHA-512 message schedule and compression
// mixing functions as single register operations.
//
// On 32-bit registers each SHA-512 function is split in two: operands carry the low and high
// words of the 64-bit input, and a half select flag chooses which word of the result is produced.
package sha2

import (
	"errors"
	"math/bits"

	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

var ErrUnsupportedOperation = errors.New("unsupported operation")

func Sha256Sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func Sha256Sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func Sha256Sum0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func Sha256Sum1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func Sha512Sigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func Sha512Sigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

func Sha512Sum0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func Sha512Sum1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

// Sha512Sigma0Half produces one word of Sha512Sigma0.
// For the low word rs1 is the low input word and rs2 the high one, and the other way around when high is set.
func Sha512Sigma0Half(rs1, rs2 uint32, high bool) uint32 {
	r := (rs1 >> 1) ^ (rs1 >> 7) ^ (rs1 >> 8) ^ (rs2 << 31) ^ (rs2 << 24)
	if !high {
		// bits shifted out of the high word by x >> 7
		r ^= rs2 << 25
	}
	return r
}

// Sha512Sigma1Half produces one word of Sha512Sigma1, with operands as in Sha512Sigma0Half
func Sha512Sigma1Half(rs1, rs2 uint32, high bool) uint32 {
	r := (rs1 << 3) ^ (rs1 >> 6) ^ (rs1 >> 19) ^ (rs2 >> 29) ^ (rs2 << 13)
	if !high {
		r ^= rs2 << 26
	}
	return r
}

// Sha512Sum0Half produces one word of Sha512Sum0. rs1 holds the input word in the
// position of the requested result word, rs2 the other one.
func Sha512Sum0Half(rs1, rs2 uint32) uint32 {
	return (rs1 << 25) ^ (rs1 << 30) ^ (rs1 >> 28) ^ (rs2 >> 7) ^ (rs2 >> 2) ^ (rs2 << 4)
}

// Sha512Sum1Half produces one word of Sha512Sum1, with operands as in Sha512Sum0Half
func Sha512Sum1Half(rs1, rs2 uint32) uint32 {
	return (rs1 << 23) ^ (rs1 >> 14) ^ (rs1 >> 18) ^ (rs2 >> 9) ^ (rs2 << 18) ^ (rs2 << 14)
}

// Core evaluates the SHA-2 operations for one register width.
// Implementations are stateless and safe for concurrent use.
type Core interface {
	XLen() int
	Evaluate(op types.OperationCode, halfSelect bool, rs1, rs2 uint64) (uint64, error)
}

// New returns the SHA-2 core for a register width of 32 or 64 bits
func New(xlen int) (Core, error) {
	switch xlen {
	case 32:
		return core32{}, nil
	case 64:
		return core64{}, nil
	}
	return nil, utils.ErrorfNoEscape("unsupported xlen %d", xlen)
}

// sha256 evaluates SHA-256 operations over the low word of rs1
func sha256(op types.OperationCode, rs1 uint64) (uint32, bool) {
	x := uint32(rs1)
	switch op {
	case types.OperationSha256Sigma0:
		return Sha256Sigma0(x), true
	case types.OperationSha256Sigma1:
		return Sha256Sigma1(x), true
	case types.OperationSha256Sum0:
		return Sha256Sum0(x), true
	case types.OperationSha256Sum1:
		return Sha256Sum1(x), true
	}
	return 0, false
}

type core32 struct{}

func (core32) XLen() int {
	return 32
}

func (core32) Evaluate(op types.OperationCode, halfSelect bool, rs1, rs2 uint64) (uint64, error) {
	if r, ok := sha256(op, rs1); ok {
		return uint64(r), nil
	}

	a, b := uint32(rs1), uint32(rs2)
	switch op {
	case types.OperationSha512Sigma0:
		return uint64(Sha512Sigma0Half(a, b, halfSelect)), nil
	case types.OperationSha512Sigma1:
		return uint64(Sha512Sigma1Half(a, b, halfSelect)), nil
	case types.OperationSha512Sum0:
		return uint64(Sha512Sum0Half(a, b)), nil
	case types.OperationSha512Sum1:
		return uint64(Sha512Sum1Half(a, b)), nil
	}
	return 0, ErrUnsupportedOperation
}

type core64 struct{}

func (core64) XLen() int {
	return 64
}

func (core64) Evaluate(op types.OperationCode, _ bool, rs1, _ uint64) (uint64, error) {
	if r, ok := sha256(op, rs1); ok {
		// sign extend the 32-bit result
		return uint64(int64(int32(r))), nil
	}

	switch op {
	case types.OperationSha512Sigma0:
		return Sha512Sigma0(rs1), nil
	case types.OperationSha512Sigma1:
		return Sha512Sigma1(rs1), nil
	case types.OperationSha512Sum0:
		return Sha512Sum0(rs1), nil
	case types.OperationSha512Sum1:
		return Sha512Sum1(rs1), nil
	}
	return 0, ErrUnsupportedOperation
}
