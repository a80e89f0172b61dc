package colours

import "fmt"

// Hsla is a color in the HSL model with alpha.
type Hsla[T Channel[T]] struct {
	Hue, Saturation, Lightness, Alpha T
}

func NewHsla[T Channel[T]](hue, saturation, lightness, alpha T) Hsla[T] {
	return Hsla[T]{Hue: hue, Saturation: saturation, Lightness: lightness, Alpha: alpha}
}

// DefaultHsla returns opaque black.
func DefaultHsla[T Channel[T]]() Hsla[T] {
	var ch T
	return NewHsla(ch.Min(), ch.Min(), ch.Min(), ch.Max())
}

func (c Hsla[T]) SplitAlpha() (Hsl[T], T) {
	return Hsl[T]{Hue: c.Hue, Saturation: c.Saturation, Lightness: c.Lightness}, c.Alpha
}

func (c Hsla[T]) WithoutAlpha() Hsl[T] {
	color, _ := c.SplitAlpha()
	return color
}

func (c Hsla[T]) OnlyAlpha() T {
	_, alpha := c.SplitAlpha()
	return alpha
}

func (c Hsla[T]) Clamp() Hsla[T] {
	return c.WithoutAlpha().Clamp().WithAlpha(c.Alpha.Clamp())
}

func (c Hsla[T]) String() string {
	return fmt.Sprintf("hsla(hue=%v, saturation=%v, lightness=%v, alpha=%v)", c.Hue, c.Saturation, c.Lightness, c.Alpha)
}

func ConvertHsla[D Channel[D], S Channel[S]](c Hsla[S]) Hsla[D] {
	color, alpha := c.SplitAlpha()
	return ConvertHsl[D](color).WithAlpha(convertChannel[D](alpha))
}

func HslaFromRgba(c Rgba[F32]) Hsla[F32] {
	color, alpha := c.SplitAlpha()
	return HslFromRgb(color).WithAlpha(alpha)
}

func HslaFromHsva(c Hsva[F32]) Hsla[F32] {
	color, alpha := c.SplitAlpha()
	return HslFromHsv(color).WithAlpha(alpha)
}
