package colours

import "fmt"

// Hsva is a color in the HSV model with alpha.
type Hsva[T Channel[T]] struct {
	Hue, Saturation, Value, Alpha T
}

func NewHsva[T Channel[T]](hue, saturation, value, alpha T) Hsva[T] {
	return Hsva[T]{Hue: hue, Saturation: saturation, Value: value, Alpha: alpha}
}

// DefaultHsva returns opaque black.
func DefaultHsva[T Channel[T]]() Hsva[T] {
	var ch T
	return NewHsva(ch.Min(), ch.Min(), ch.Min(), ch.Max())
}

func (c Hsva[T]) SplitAlpha() (Hsv[T], T) {
	return Hsv[T]{Hue: c.Hue, Saturation: c.Saturation, Value: c.Value}, c.Alpha
}

func (c Hsva[T]) WithoutAlpha() Hsv[T] {
	color, _ := c.SplitAlpha()
	return color
}

func (c Hsva[T]) OnlyAlpha() T {
	_, alpha := c.SplitAlpha()
	return alpha
}

func (c Hsva[T]) Clamp() Hsva[T] {
	return c.WithoutAlpha().Clamp().WithAlpha(c.Alpha.Clamp())
}

func (c Hsva[T]) String() string {
	return fmt.Sprintf("hsva(hue=%v, saturation=%v, value=%v, alpha=%v)", c.Hue, c.Saturation, c.Value, c.Alpha)
}

func ConvertHsva[D Channel[D], S Channel[S]](c Hsva[S]) Hsva[D] {
	color, alpha := c.SplitAlpha()
	return ConvertHsv[D](color).WithAlpha(convertChannel[D](alpha))
}

func HsvaFromRgba(c Rgba[F32]) Hsva[F32] {
	color, alpha := c.SplitAlpha()
	return HsvFromRgb(color).WithAlpha(alpha)
}

func HsvaFromHsla(c Hsla[F32]) Hsva[F32] {
	color, alpha := c.SplitAlpha()
	return HsvFromHsl(color).WithAlpha(alpha)
}
