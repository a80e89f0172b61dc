// Package colourcp converts colors to and from the color type used by the
// chipmunk physics debug drawer.
package colourcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/colours"
)

// FColor converts the color into a cp.FColor. Both use straight alpha.
func FColor[T colours.Channel[T]](c colours.Rgba[T]) cp.FColor {
	f := colours.ConvertRgba[colours.F32](c)

	return cp.FColor{
		R: float32(f.Red),
		G: float32(f.Green),
		B: float32(f.Blue),
		A: float32(f.Alpha),
	}
}

// FromFColor converts a cp.FColor. Channels are not clamped.
func FromFColor(c cp.FColor) colours.Rgba[colours.F32] {
	return colours.NewRgba(
		colours.F32(c.R),
		colours.F32(c.G),
		colours.F32(c.B),
		colours.F32(c.A),
	)
}
