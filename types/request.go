package types

import (
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// Request One evaluation of the core, as supplied by the instruction pipeline.
type Request struct {
	// Valid is carried along for the caller. Evaluation does not depend on it.
	Valid     bool          `json:"valid"`
	Operation OperationCode `json:"op"`
	// HalfSelect picks the upper result half of 32-bit SHA-512 emulation
	HalfSelect bool `json:"hs,omitempty"`
	// ByteSelect is the source byte index of 32-bit AES operations, 0..3
	ByteSelect uint8 `json:"bs,omitempty"`
	// RoundConstant is the AES key schedule round number, 0..15
	RoundConstant uint8 `json:"rnum,omitempty"`
	Operand1      Word  `json:"rs1"`
	Operand2      Word  `json:"rs2"`
}

type jsonRequest struct {
	Valid         *bool  `json:"valid"`
	Operation     string `json:"op"`
	HalfSelect    bool   `json:"hs,omitempty"`
	ByteSelect    uint8  `json:"bs,omitempty"`
	RoundConstant uint8  `json:"rnum,omitempty"`
	Operand1      Word   `json:"rs1"`
	Operand2      Word   `json:"rs2"`
}

// UnmarshalJSON accepts instruction mnemonics for the operation. Mnemonics of the
// upper SHA-512 half (sha512sig0h, sha512sig1h) set HalfSelect. Valid defaults to true.
func (r *Request) UnmarshalJSON(b []byte) error {
	var raw jsonRequest
	if err := utils.UnmarshalJSON(b, &raw); err != nil {
		return err
	}

	op, high, err := ParseOperation(raw.Operation)
	if err != nil {
		return err
	}

	if raw.ByteSelect > 3 {
		return utils.ErrorfNoEscape("byte select %d out of range", raw.ByteSelect)
	}
	if raw.RoundConstant > 15 {
		return utils.ErrorfNoEscape("round constant index %d out of range", raw.RoundConstant)
	}

	*r = Request{
		Valid:         raw.Valid == nil || *raw.Valid,
		Operation:     op,
		HalfSelect:    raw.HalfSelect || high,
		ByteSelect:    raw.ByteSelect,
		RoundConstant: raw.RoundConstant,
		Operand1:      raw.Operand1,
		Operand2:      raw.Operand2,
	}
	return nil
}
