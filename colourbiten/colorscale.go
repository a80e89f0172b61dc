// Package colourbiten hands colors over to ebiten draw operations.
package colourbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/colours"
)

// ColorScale returns a color scale that tints an image with the given color.
// ebiten expects premultiplied alpha, the color channels are multiplied
// with alpha on the way.
func ColorScale[T colours.Channel[T]](c colours.Rgba[T]) ebiten.ColorScale {
	f := colours.ConvertRgba[colours.F32](c).Clamp()

	alpha := float32(f.Alpha)

	var scale ebiten.ColorScale
	scale.Scale(float32(f.Red)*alpha, float32(f.Green)*alpha, float32(f.Blue)*alpha, alpha)
	return scale
}

// FromColorScale reads back the straight alpha color of a color scale.
// A fully transparent scale yields transparent black.
func FromColorScale(scale ebiten.ColorScale) colours.Rgba[colours.F32] {
	alpha := scale.A()
	if alpha == 0 {
		return colours.NewRgba[colours.F32](0, 0, 0, 0)
	}

	color := colours.NewRgba(
		colours.F32(scale.R()/alpha),
		colours.F32(scale.G()/alpha),
		colours.F32(scale.B()/alpha),
		colours.F32(alpha),
	)

	return color.Clamp()
}

// Tint multiplies the color scale of the draw options with the given color.
func Tint[T colours.Channel[T]](op *ebiten.DrawImageOptions, c colours.Rgba[T]) {
	op.ColorScale.ScaleWithColorScale(ColorScale(c))
}
