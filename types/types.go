package types

import (
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const WordSize = 8

// Word A register value. Cores configured for a 32-bit register width only read the low 32 bits
// of their operands and always produce zero-extended results.
//
//nolint:recvcheck
type Word uint64

func (w Word) Low() uint32 {
	return uint32(w)
}

func (w Word) High() uint32 {
	return uint32(w >> 32)
}

func WordFromHalves(high, low uint32) Word {
	return Word(high)<<32 | Word(low)
}

// Bytes big-endian representation, most significant byte first
func (w Word) Bytes() (buf [WordSize]byte) {
	binary.BigEndian.PutUint64(buf[:], uint64(w))
	return buf
}

func (w Word) String() string {
	buf := w.Bytes()
	return fasthex.EncodeToString(buf[:])
}

func (w Word) MarshalJSON() ([]byte, error) {
	var buf [WordSize*2 + 2]byte
	buf[0] = '"'
	buf[WordSize*2+1] = '"'
	b := w.Bytes()
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (w *Word) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("invalid word")
	}
	v, err := WordFromString(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// WordFromString Decodes a big-endian hex string of up to 16 digits. Shorter strings are zero-extended.
func WordFromString(s string) (Word, error) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) == 0 || len(s) > WordSize*2 {
		return 0, errors.New("wrong word size")
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	var buf [WordSize]byte
	if _, err := fasthex.Decode(buf[WordSize-len(s)/2:], []byte(s)); err != nil {
		return 0, err
	}
	return Word(binary.BigEndian.Uint64(buf[:])), nil
}

func MustWordFromString(s string) Word {
	if w, err := WordFromString(s); err != nil {
		panic(err)
	} else {
		return w
	}
}
