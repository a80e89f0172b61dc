package colours

import (
	"math"

	"fortio.org/safecast"
)

// Channel is the constraint for a channel representation. A representation
// defines the closed interval [Min, Max] of a linear channel and knows how
// to bring a value back into its domain.
//
// The set of representations is closed: U8 and F32.
type Channel[T any] interface {
	// Min returns the lower bound of a linear channel.
	Min() T

	// Max returns the upper bound of a linear channel.
	Max() T

	// Clamp restricts a linear channel value to [Min, Max].
	Clamp() T

	// Unwind wraps a circular channel value (the hue) into [Min, Max).
	Unwind() T

	toF32() F32
	fromF32(value F32) T
}

// U8 is a channel stored as an 8 bit normalized integer, 0 to 255.
type U8 uint8

// F32 is a channel stored as a float unit value, 0.0 to 1.0.
// A hue maps the interval [0, 1) to [0°, 360°).
type F32 float32

var (
	_ Channel[U8]  = U8(0)
	_ Channel[F32] = F32(0)
)

func (U8) Min() U8 {
	return 0
}

func (U8) Max() U8 {
	return 255
}

func (c U8) Clamp() U8 {
	return clamp(c, c.Min(), c.Max())
}

// Unwind returns the value unchanged. Every 8 bit value already lies in
// the domain of a hue.
func (c U8) Unwind() U8 {
	return c
}

func (c U8) toF32() F32 {
	return F32(float32(c) / 255)
}

func (U8) fromF32(value F32) U8 {
	scaled := float32(value.Clamp()) * 255
	return U8(safecast.MustRound[uint8](float64(scaled)))
}

func (F32) Min() F32 {
	return 0
}

func (F32) Max() F32 {
	return 1
}

// Clamp restricts the value to [0, 1]. NaN clamps to 0.
func (c F32) Clamp() F32 {
	return clamp(c, c.Min(), c.Max())
}

// Unwind wraps the value into [0, 1), so that -0.25 becomes 0.75 and
// 1.25 becomes 0.25. A full turn of 1 unwinds to 0, the same hue.
// Infinities and NaN unwind to 0.
func (c F32) Unwind() F32 {
	if c >= 0 && c < 1 {
		return c
	}

	wrapped := math.Mod(math.Mod(float64(c), 1)+1, 1)

	// float32 rounding may push values just below 1 up to 1
	result := F32(wrapped)
	if !(result >= 0 && result < 1) {
		return 0
	}

	return result
}

func (c F32) toF32() F32 {
	return c
}

func (F32) fromF32(value F32) F32 {
	return value
}

// clamp is written so that an unordered value (NaN) ends up at min.
func clamp[T U8 | F32](value, min, max T) T {
	if !(value >= min) {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// convertChannel changes the representation of a single channel value.
func convertChannel[D Channel[D], S Channel[S]](value S) D {
	var dst D
	return dst.fromF32(value.toF32())
}
