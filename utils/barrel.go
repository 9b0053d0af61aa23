package utils

type ShiftMode uint8

const (
	LeftShift ShiftMode = iota
	RightShift
	LeftRotate
	RightRotate
)

func (m ShiftMode) String() string {
	switch m {
	case LeftShift:
		return "LeftShift"
	case RightShift:
		return "RightShift"
	case LeftRotate:
		return "LeftRotate"
	case RightRotate:
		return "RightRotate"
	}
	return "ShiftMode(" + SprintfNoEscape("%d", uint8(m)) + ")"
}

// BarrelShift writes src shifted or rotated by amount element positions into dst.
//
// Element i moves towards higher indices on a left operation and towards lower indices on a right one:
//   - LeftRotate:  dst[i] = src[(i - amount) mod N]
//   - RightRotate: dst[i] = src[(i + amount) mod N]
//   - LeftShift / RightShift: as the rotations, but positions that would wrap around take the zero value of T.
//
// Rotation amounts are taken modulo N, a shift by N or more clears dst.
// dst and src must have the same length and must not overlap.
func BarrelShift[S ~[]T, T any](dst, src S, amount uint, mode ShiftMode) {
	n := uint(len(src))
	if uint(len(dst)) != n {
		Panicf("barrel shift length mismatch: dst %d, src %d", len(dst), len(src))
	}
	if n == 0 {
		return
	}

	var zero T

	switch mode {
	case LeftRotate:
		amount %= n
		for i := range n {
			dst[i] = src[(i+n-amount)%n]
		}
	case RightRotate:
		amount %= n
		for i := range n {
			dst[i] = src[(i+amount)%n]
		}
	case LeftShift:
		for i := range n {
			if i < amount {
				dst[i] = zero
			} else {
				dst[i] = src[i-amount]
			}
		}
	case RightShift:
		for i := range n {
			if amount >= n || i >= n-amount {
				dst[i] = zero
			} else {
				dst[i] = src[i+amount]
			}
		}
	default:
		Panicf("unknown shift mode %s", mode)
	}
}
