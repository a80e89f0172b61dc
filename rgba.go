package colours

import "fmt"

// Rgba is a color in the RGB model with a straight (not premultiplied)
// alpha channel.
type Rgba[T Channel[T]] struct {
	Red, Green, Blue, Alpha T
}

func NewRgba[T Channel[T]](red, green, blue, alpha T) Rgba[T] {
	return Rgba[T]{Red: red, Green: green, Blue: blue, Alpha: alpha}
}

// DefaultRgba returns opaque black.
func DefaultRgba[T Channel[T]]() Rgba[T] {
	var ch T
	return NewRgba(ch.Min(), ch.Min(), ch.Min(), ch.Max())
}

func (c Rgba[T]) SplitAlpha() (Rgb[T], T) {
	return Rgb[T]{Red: c.Red, Green: c.Green, Blue: c.Blue}, c.Alpha
}

func (c Rgba[T]) WithoutAlpha() Rgb[T] {
	color, _ := c.SplitAlpha()
	return color
}

func (c Rgba[T]) OnlyAlpha() T {
	_, alpha := c.SplitAlpha()
	return alpha
}

// Clamp returns the color with every channel restricted to [Min, Max].
func (c Rgba[T]) Clamp() Rgba[T] {
	return c.WithoutAlpha().Clamp().WithAlpha(c.Alpha.Clamp())
}

func (c Rgba[T]) String() string {
	return fmt.Sprintf("rgba(red=%v, green=%v, blue=%v, alpha=%v)", c.Red, c.Green, c.Blue, c.Alpha)
}

// ConvertRgba changes the channel representation of an RGBA color,
// alpha included.
func ConvertRgba[D Channel[D], S Channel[S]](c Rgba[S]) Rgba[D] {
	color, alpha := c.SplitAlpha()
	return ConvertRgb[D](color).WithAlpha(convertChannel[D](alpha))
}

func RgbaFromHsla(c Hsla[F32]) Rgba[F32] {
	color, alpha := c.SplitAlpha()
	return RgbFromHsl(color).WithAlpha(alpha)
}

func RgbaFromHsva(c Hsva[F32]) Rgba[F32] {
	color, alpha := c.SplitAlpha()
	return RgbFromHsv(color).WithAlpha(alpha)
}
