package colours

import (
	"fmt"
	"math"
)

// Rgb is a color in the RGB model without alpha.
type Rgb[T Channel[T]] struct {
	Red, Green, Blue T
}

func NewRgb[T Channel[T]](red, green, blue T) Rgb[T] {
	return Rgb[T]{Red: red, Green: green, Blue: blue}
}

// DefaultRgb returns black.
func DefaultRgb[T Channel[T]]() Rgb[T] {
	var ch T
	return NewRgb(ch.Min(), ch.Min(), ch.Min())
}

func (c Rgb[T]) WithAlpha(alpha T) Rgba[T] {
	return Rgba[T]{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: alpha}
}

// Opaque attaches the maximum alpha value.
func (c Rgb[T]) Opaque() Rgba[T] {
	return c.WithAlpha(c.Red.Max())
}

// Clamp returns the color with every channel restricted to [Min, Max].
func (c Rgb[T]) Clamp() Rgb[T] {
	return NewRgb(c.Red.Clamp(), c.Green.Clamp(), c.Blue.Clamp())
}

func (c Rgb[T]) String() string {
	return fmt.Sprintf("rgb(red=%v, green=%v, blue=%v)", c.Red, c.Green, c.Blue)
}

// ConvertRgb changes the channel representation of an RGB color.
func ConvertRgb[D Channel[D], S Channel[S]](c Rgb[S]) Rgb[D] {
	return Rgb[D]{
		Red:   convertChannel[D](c.Red),
		Green: convertChannel[D](c.Green),
		Blue:  convertChannel[D](c.Blue),
	}
}

// RgbFromHsl converts from HSL. The hue is unwound, saturation and lightness
// are clamped before use.
func RgbFromHsl(c Hsl[F32]) Rgb[F32] {
	hue := c.Hue.Unwind()
	saturation := c.Saturation.Clamp()
	lightness := c.Lightness.Clamp()

	chroma := (1 - abs(2*lightness-1)) * saturation
	return hueToRgb(hue, chroma, lightness-chroma/2)
}

// RgbFromHsv converts from HSV. The hue is unwound, saturation and value
// are clamped before use.
func RgbFromHsv(c Hsv[F32]) Rgb[F32] {
	hue := c.Hue.Unwind()
	saturation := c.Saturation.Clamp()
	value := c.Value.Clamp()

	chroma := value * saturation
	return hueToRgb(hue, chroma, value-chroma)
}

// hueToRgb distributes the chroma onto the two channels of the hue sector
// and adds the achromatic offset to all three. hue must be in [0, 1).
func hueToRgb(hue, chroma, offset F32) Rgb[F32] {
	h6 := hue * 6
	x := chroma * (1 - abs(mod(h6, 2)-1))

	var red, green, blue F32

	switch int(math.Floor(float64(h6))) % 6 {
	case 0:
		red, green = chroma, x
	case 1:
		red, green = x, chroma
	case 2:
		green, blue = chroma, x
	case 3:
		green, blue = x, chroma
	case 4:
		red, blue = x, chroma
	default:
		red, blue = chroma, x
	}

	return NewRgb(red+offset, green+offset, blue+offset)
}

func abs(value F32) F32 {
	return F32(math.Abs(float64(value)))
}

func mod(value, modulus F32) F32 {
	return F32(math.Mod(float64(value), float64(modulus)))
}
