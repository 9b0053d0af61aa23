package types

import (
	"errors"
	"strconv"
	"strings"

	"git.gammaspectra.live/P2Pool/zkn/utils"
	"github.com/dolthub/swiss"
)

// OperationCode selects one scalar cryptography primitive.
// The numbering is fixed, as requests carry it as a raw field.
type OperationCode uint8

const (
	// OperationDecryptSubShiftMix AES final decryption round: InvShiftRows, InvSubBytes
	OperationDecryptSubShiftMix = OperationCode(iota)
	// OperationDecryptSubShiftMixM AES middle decryption round: InvShiftRows, InvSubBytes, InvMixColumns
	OperationDecryptSubShiftMixM
	// OperationEncryptSubShiftMix AES final encryption round: ShiftRows, SubBytes
	OperationEncryptSubShiftMix
	// OperationEncryptSubShiftMixM AES middle encryption round: ShiftRows, SubBytes, MixColumns
	OperationEncryptSubShiftMixM
	// OperationInverseMixColumns InvMixColumns over a round key, for the equivalent inverse cipher
	OperationInverseMixColumns
	// OperationKeySchedule1 SubWord(RotWord(w)) ^ rcon
	OperationKeySchedule1
	// OperationKeySchedule2 xor chaining of the key schedule words
	OperationKeySchedule2

	OperationSha256Sigma0
	OperationSha256Sigma1
	OperationSha256Sum0
	OperationSha256Sum1

	OperationSha512Sigma0
	OperationSha512Sigma1
	OperationSha512Sum0
	OperationSha512Sum1

	OperationCount = int(iota)
)

var ErrInvalidOperation = errors.New("invalid operation")

var operationNames = [OperationCount]string{
	OperationDecryptSubShiftMix:  "ds",
	OperationDecryptSubShiftMixM: "dsm",
	OperationEncryptSubShiftMix:  "es",
	OperationEncryptSubShiftMixM: "esm",
	OperationInverseMixColumns:   "im",
	OperationKeySchedule1:        "ks1",
	OperationKeySchedule2:        "ks2",
	OperationSha256Sigma0:        "sha256sig0",
	OperationSha256Sigma1:        "sha256sig1",
	OperationSha256Sum0:          "sha256sum0",
	OperationSha256Sum1:          "sha256sum1",
	OperationSha512Sigma0:        "sha512sig0",
	OperationSha512Sigma1:        "sha512sig1",
	OperationSha512Sum0:          "sha512sum0",
	OperationSha512Sum1:          "sha512sum1",
}

type mnemonic struct {
	op   OperationCode
	high bool
}

// mnemonics indexes canonical names and instruction mnemonics of both register widths.
// It is read-only after initialization.
var mnemonics = func() *swiss.Map[string, mnemonic] {
	m := swiss.NewMap[string, mnemonic](64)
	for op, name := range operationNames {
		m.Put(name, mnemonic{op: OperationCode(op)})
	}

	alias := func(name string, op OperationCode, high bool) {
		m.Put(name, mnemonic{op: op, high: high})
	}

	alias("aes64ds", OperationDecryptSubShiftMix, false)
	alias("aes64dsm", OperationDecryptSubShiftMixM, false)
	alias("aes64es", OperationEncryptSubShiftMix, false)
	alias("aes64esm", OperationEncryptSubShiftMixM, false)
	alias("aes64im", OperationInverseMixColumns, false)
	alias("aes64ks1i", OperationKeySchedule1, false)
	alias("aes64ks2", OperationKeySchedule2, false)

	alias("aes32dsi", OperationDecryptSubShiftMix, false)
	alias("aes32dsmi", OperationDecryptSubShiftMixM, false)
	alias("aes32esi", OperationEncryptSubShiftMix, false)
	alias("aes32esmi", OperationEncryptSubShiftMixM, false)

	alias("sha512sig0l", OperationSha512Sigma0, false)
	alias("sha512sig0h", OperationSha512Sigma0, true)
	alias("sha512sig1l", OperationSha512Sigma1, false)
	alias("sha512sig1h", OperationSha512Sigma1, true)
	alias("sha512sum0r", OperationSha512Sum0, false)
	alias("sha512sum1r", OperationSha512Sum1, false)
	return m
}()

// ParseOperation resolves a canonical name or instruction mnemonic, case-insensitive.
// high reports whether the mnemonic names the upper half of a 32-bit SHA-512 emulation.
func ParseOperation(name string) (op OperationCode, high bool, err error) {
	if v, ok := mnemonics.Get(strings.ToLower(name)); ok {
		return v.op, v.high, nil
	}
	return 0, false, utils.ErrorfNoEscape("unknown operation %q", name)
}

func (o OperationCode) Valid() bool {
	return int(o) < OperationCount
}

func (o OperationCode) IsAES() bool {
	return o <= OperationKeySchedule2
}

func (o OperationCode) IsSha256() bool {
	return o >= OperationSha256Sigma0 && o <= OperationSha256Sum1
}

func (o OperationCode) IsSha512() bool {
	return o >= OperationSha512Sigma0 && o <= OperationSha512Sum1
}

// IsEncrypt reports whether the operation uses the forward S-box
func (o OperationCode) IsEncrypt() bool {
	return o == OperationEncryptSubShiftMix || o == OperationEncryptSubShiftMixM
}

func (o OperationCode) String() string {
	if !o.Valid() {
		return "invalid(" + strconv.FormatUint(uint64(o), 10) + ")"
	}
	return operationNames[o]
}

func (o OperationCode) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, ErrInvalidOperation
	}
	return []byte("\"" + o.String() + "\""), nil
}

func (o *OperationCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := utils.UnmarshalJSON(b, &s); err != nil {
		return err
	}

	op, _, err := ParseOperation(s)
	if err != nil {
		return err
	}
	*o = op
	return nil
}
