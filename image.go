package colours

import (
	"image/color"

	"fortio.org/safecast"
)

// All colors implement the color.Color interface of the standard library.
var (
	_ color.Color = Rgb[U8]{}
	_ color.Color = Rgba[U8]{}
	_ color.Color = Hsl[U8]{}
	_ color.Color = Hsla[U8]{}
	_ color.Color = Hsv[U8]{}
	_ color.Color = Hsva[F32]{}
)

// RgbaModel converts any color.Color into an Rgba[U8].
var RgbaModel = color.ModelFunc(rgbaModel)

func rgbaModel(c color.Color) color.Color {
	if c, ok := c.(Rgba[U8]); ok {
		return c
	}

	return RgbaFromColor(c)
}

// RgbaFromColor converts a color of the standard library into an 8 bit
// RGBA color with straight alpha.
func RgbaFromColor(c color.Color) Rgba[U8] {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRgba(U8(n.R), U8(n.G), U8(n.B), U8(n.A))
}

// RGBA implements color.Color, the color is fully opaque.
func (c Rgb[T]) RGBA() (r, g, b, a uint32) {
	return c.Opaque().RGBA()
}

// RGBA implements color.Color. The returned values are alpha premultiplied.
func (c Rgba[T]) RGBA() (r, g, b, a uint32) {
	f := ConvertRgba[F32](c).Clamp()

	alpha := float64(f.Alpha)

	r = to16(float64(f.Red) * alpha)
	g = to16(float64(f.Green) * alpha)
	b = to16(float64(f.Blue) * alpha)
	a = to16(alpha)

	return
}

func (c Hsl[T]) RGBA() (r, g, b, a uint32) {
	return RgbFromHsl(ConvertHsl[F32](c)).RGBA()
}

func (c Hsla[T]) RGBA() (r, g, b, a uint32) {
	return RgbaFromHsla(ConvertHsla[F32](c)).RGBA()
}

func (c Hsv[T]) RGBA() (r, g, b, a uint32) {
	return RgbFromHsv(ConvertHsv[F32](c)).RGBA()
}

func (c Hsva[T]) RGBA() (r, g, b, a uint32) {
	return RgbaFromHsva(ConvertHsva[F32](c)).RGBA()
}

// to16 scales a value in [0, 1] to the 16 bit range of color.Color.
func to16(value float64) uint32 {
	return safecast.MustRound[uint32](value * 0xffff)
}
