package sha2_test

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"testing"

	"git.gammaspectra.live/P2Pool/zkn/scalar/sha2"
	"git.gammaspectra.live/P2Pool/zkn/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256Golden(t *testing.T) {
	const x = 1
	expected := bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
	if r := sha2.Sha256Sigma0(x); r != expected || r != 0x02004000 {
		t.Fatalf("Sha256Sigma0(1) = %#08x, want %#08x", r, expected)
	}

	for _, xlen := range []int{32, 64} {
		c, err := sha2.New(xlen)
		require.NoError(t, err)
		r, err := c.Evaluate(types.OperationSha256Sigma0, false, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x02004000), r)
	}
}

func TestSha256Widen(t *testing.T) {
	c64, err := sha2.New(64)
	require.NoError(t, err)
	c32, err := sha2.New(32)
	require.NoError(t, err)

	// rotr(2, 2) sets bit 31
	r, err := c64.Evaluate(types.OperationSha256Sum0, false, 0xffffffff00000002, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xffffffff80100800), r)

	r, err = c32.Evaluate(types.OperationSha256Sum0, false, 0xffffffff00000002, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x80100800), r)

	r, err = c64.Evaluate(types.OperationSha256Sigma0, false, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x02004000), r)
}

func TestSha512Halves(t *testing.T) {
	c, err := sha2.New(32)
	require.NoError(t, err)

	var tests = []struct {
		Op   types.OperationCode
		Full func(uint64) uint64
	}{
		{types.OperationSha512Sigma0, sha2.Sha512Sigma0},
		{types.OperationSha512Sigma1, sha2.Sha512Sigma1},
		{types.OperationSha512Sum0, sha2.Sha512Sum0},
		{types.OperationSha512Sum1, sha2.Sha512Sum1},
	}

	rng := rand.New(rand.NewPCG(512, 32))
	for _, v := range tests {
		t.Run(v.Op.String(), func(t *testing.T) {
			for range 1024 {
				x := rng.Uint64()
				lo, hi := x&0xffffffff, x>>32

				rLo, err := c.Evaluate(v.Op, false, lo, hi)
				require.NoError(t, err)
				rHi, err := c.Evaluate(v.Op, true, hi, lo)
				require.NoError(t, err)

				if r, e := rHi<<32|rLo, v.Full(x); r != e {
					t.Fatalf("%s(%#016x) = %#016x, want %#016x", v.Op, x, r, e)
				}
			}
		})
	}
}

func TestSha512HalfSelectOnlyForSigma(t *testing.T) {
	c, err := sha2.New(32)
	require.NoError(t, err)

	for _, op := range []types.OperationCode{types.OperationSha512Sum0, types.OperationSha512Sum1} {
		a, _ := c.Evaluate(op, false, 0x89abcdef, 0x01234567)
		b, _ := c.Evaluate(op, true, 0x89abcdef, 0x01234567)
		assert.Equal(t, a, b, op.String())
	}
}

func TestUnsupported(t *testing.T) {
	for _, xlen := range []int{32, 64} {
		c, err := sha2.New(xlen)
		require.NoError(t, err)
		_, err = c.Evaluate(types.OperationKeySchedule1, false, 0, 0)
		assert.ErrorIs(t, err, sha2.ErrUnsupportedOperation)
		_, err = c.Evaluate(types.OperationCode(200), false, 0, 0)
		assert.ErrorIs(t, err, sha2.ErrUnsupportedOperation)
	}
	_, err := sha2.New(128)
	assert.Error(t, err)
}

// pad returns the single padded block for a short message
func pad(msg []byte, blockSize int) []byte {
	block := make([]byte, blockSize)
	copy(block, msg)
	block[len(msg)] = 0x80
	binary.BigEndian.PutUint64(block[blockSize-8:], uint64(len(msg))*8)
	return block
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sum256 hashes a short message, taking all sigma and sum functions from the core
func sum256(t *testing.T, c sha2.Core, msg []byte) []byte {
	f := func(op types.OperationCode, x uint32) uint32 {
		r, err := c.Evaluate(op, false, uint64(x), 0)
		require.NoError(t, err)
		return uint32(r)
	}

	block := pad(msg, sha256.BlockSize)
	var w [64]uint32
	for i := range 16 {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = f(types.OperationSha256Sigma1, w[i-2]) + w[i-7] + f(types.OperationSha256Sigma0, w[i-15]) + w[i-16]
	}

	h := [8]uint32{0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19}
	a, b, cc, d, e, ff, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := range 64 {
		t1 := hh + f(types.OperationSha256Sum1, e) + ((e & ff) ^ (^e & g)) + sha256K[i] + w[i]
		t2 := f(types.OperationSha256Sum0, a) + ((a & b) ^ (a & cc) ^ (b & cc))
		hh, g, ff, e, d, cc, b, a = g, ff, e, d+t1, cc, b, a, t1+t2
	}
	h[0] += a
	h[1] += b
	h[2] += cc
	h[3] += d
	h[4] += e
	h[5] += ff
	h[6] += g
	h[7] += hh

	out := make([]byte, 0, sha256.Size)
	for _, v := range h {
		out = binary.BigEndian.AppendUint32(out, v)
	}
	return out
}

var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// sum512 hashes a short message, taking all sigma and sum functions from the core.
// 32-bit cores evaluate each function as two half operations.
func sum512(t *testing.T, c sha2.Core, msg []byte) []byte {
	f := func(op types.OperationCode, x uint64) uint64 {
		if c.XLen() == 64 {
			r, err := c.Evaluate(op, false, x, 0)
			require.NoError(t, err)
			return r
		}
		lo, hi := x&0xffffffff, x>>32
		rLo, err := c.Evaluate(op, false, lo, hi)
		require.NoError(t, err)
		rHi, err := c.Evaluate(op, true, hi, lo)
		require.NoError(t, err)
		return rHi<<32 | rLo
	}

	block := pad(msg, sha512.BlockSize)
	var w [80]uint64
	for i := range 16 {
		w[i] = binary.BigEndian.Uint64(block[i*8:])
	}
	for i := 16; i < 80; i++ {
		w[i] = f(types.OperationSha512Sigma1, w[i-2]) + w[i-7] + f(types.OperationSha512Sigma0, w[i-15]) + w[i-16]
	}

	h := [8]uint64{
		0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
	a, b, cc, d, e, ff, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := range 80 {
		t1 := hh + f(types.OperationSha512Sum1, e) + ((e & ff) ^ (^e & g)) + sha512K[i] + w[i]
		t2 := f(types.OperationSha512Sum0, a) + ((a & b) ^ (a & cc) ^ (b & cc))
		hh, g, ff, e, d, cc, b, a = g, ff, e, d+t1, cc, b, a, t1+t2
	}
	h[0] += a
	h[1] += b
	h[2] += cc
	h[3] += d
	h[4] += e
	h[5] += ff
	h[6] += g
	h[7] += hh

	out := make([]byte, 0, sha512.Size)
	for _, v := range h {
		out = binary.BigEndian.AppendUint64(out, v)
	}
	return out
}

func TestCompression(t *testing.T) {
	messages := [][]byte{
		[]byte(""),
		[]byte("abc"),
		[]byte("de omnibus dubitandum"),
	}

	for _, xlen := range []int{32, 64} {
		c, err := sha2.New(xlen)
		require.NoError(t, err)
		assert.Equal(t, xlen, c.XLen())

		for _, msg := range messages {
			t.Run(fmt.Sprintf("%d/%q", xlen, msg), func(t *testing.T) {
				expected256 := sha256.Sum256(msg)
				assert.Equal(t, expected256[:], sum256(t, c, msg))

				expected512 := sha512.Sum512(msg)
				assert.Equal(t, expected512[:], sum512(t, c, msg))
			})
		}
	}
}

func BenchmarkSha512Sigma0(b *testing.B) {
	for _, xlen := range []int{32, 64} {
		b.Run(fmt.Sprintf("%d", xlen), func(b *testing.B) {
			c, err := sha2.New(xlen)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			x := uint64(0x0123456789abcdef)
			for b.Loop() {
				x, _ = c.Evaluate(types.OperationSha512Sigma0, false, x, x>>32)
			}
		})
	}
}
