// Package scalar is the execution core of the scalar cryptography instructions: AES round,
// AES key schedule and SHA-2 mixing functions on 32 or 64-bit registers.
//
// Every evaluation is a pure function of the request and the configured register width.
package scalar

import (
	"git.gammaspectra.live/P2Pool/zkn/scalar/aes"
	"git.gammaspectra.live/P2Pool/zkn/scalar/sha2"
	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// Core dispatches requests to the AES or SHA-2 datapath of its register width.
// It holds no mutable state and may be shared between goroutines.
type Core struct {
	xlen int
	mask types.Word
	aes  aes.Core
	sha  sha2.Core
}

func New(cfg Config) (*Core, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	aesCore, err := aes.New(cfg.XLen, cfg.SBox)
	if err != nil {
		return nil, err
	}
	shaCore, err := sha2.New(cfg.XLen)
	if err != nil {
		return nil, err
	}

	c := &Core{
		xlen: cfg.XLen,
		mask: ^types.Word(0) >> (64 - cfg.XLen),
		aes:  aesCore,
		sha:  shaCore,
	}

	utils.Noticef("Core", "xlen = %d, sbox = %s", cfg.XLen, cfg.SBox)

	return c, nil
}

func (c *Core) XLen() int {
	return c.xlen
}

// Evaluate computes the result of one request. Operands wider than the register width are truncated.
//
// Unknown operation codes return types.ErrInvalidOperation. Operations without a datapath on this
// register width (key schedule and InvMixColumns on 32-bit) return aes.ErrUnsupportedOperation.
// The Valid flag of the request is not consulted.
func (c *Core) Evaluate(req types.Request) (types.Word, error) {
	rs1, rs2 := uint64(req.Operand1&c.mask), uint64(req.Operand2&c.mask)

	var r uint64
	var err error
	switch {
	case req.Operation.IsAES():
		r, err = c.aes.Evaluate(req.Operation, req.ByteSelect, req.RoundConstant, rs1, rs2)
	case req.Operation.IsSha256(), req.Operation.IsSha512():
		r, err = c.sha.Evaluate(req.Operation, req.HalfSelect, rs1, rs2)
	default:
		err = types.ErrInvalidOperation
	}

	if err != nil {
		if utils.IsLogLevelDebug() {
			utils.Debugf("Core", "rejected %s on xlen %d: %s", req.Operation, c.xlen, err)
		}
		return 0, err
	}
	return types.Word(r) & c.mask, nil
}
