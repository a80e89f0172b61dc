package colours

import "fmt"

// Hsl is a color in the HSL model without alpha. Hue is a circular channel,
// saturation and lightness are linear.
type Hsl[T Channel[T]] struct {
	Hue, Saturation, Lightness T
}

func NewHsl[T Channel[T]](hue, saturation, lightness T) Hsl[T] {
	return Hsl[T]{Hue: hue, Saturation: saturation, Lightness: lightness}
}

func DefaultHsl[T Channel[T]]() Hsl[T] {
	var ch T
	return NewHsl(ch.Min(), ch.Min(), ch.Min())
}

func (c Hsl[T]) WithAlpha(alpha T) Hsla[T] {
	return Hsla[T]{Hue: c.Hue, Saturation: c.Saturation, Lightness: c.Lightness, Alpha: alpha}
}

func (c Hsl[T]) Opaque() Hsla[T] {
	return c.WithAlpha(c.Hue.Max())
}

// Clamp unwinds the hue and restricts saturation and lightness to [Min, Max].
func (c Hsl[T]) Clamp() Hsl[T] {
	return NewHsl(c.Hue.Unwind(), c.Saturation.Clamp(), c.Lightness.Clamp())
}

func (c Hsl[T]) String() string {
	return fmt.Sprintf("hsl(hue=%v, saturation=%v, lightness=%v)", c.Hue, c.Saturation, c.Lightness)
}

// ConvertHsl changes the channel representation of an HSL color.
func ConvertHsl[D Channel[D], S Channel[S]](c Hsl[S]) Hsl[D] {
	return Hsl[D]{
		Hue:        convertChannel[D](c.Hue),
		Saturation: convertChannel[D](c.Saturation),
		Lightness:  convertChannel[D](c.Lightness),
	}
}

// HslFromRgb converts from RGB. Gray colors have hue and saturation 0.
func HslFromRgb(c Rgb[F32]) Hsl[F32] {
	red, green, blue := c.Red.Clamp(), c.Green.Clamp(), c.Blue.Clamp()

	cMax := max(red, green, blue)
	cMin := min(red, green, blue)
	delta := cMax - cMin

	lightness := (cMax + cMin) / 2

	if delta == 0 {
		return NewHsl(0, 0, lightness)
	}

	var hue F32
	switch cMax {
	case red:
		hue = sixth * mod((green-blue)/delta, 6)
	case green:
		hue = sixth * ((blue-red)/delta + 2)
	default:
		hue = sixth * ((red-green)/delta + 4)
	}

	// lightness may round to 0 or 1 for colors next to black or white
	var saturation F32
	if denominator := 1 - abs(2*lightness-1); denominator > 0 {
		saturation = (delta / denominator).Clamp()
	}

	return NewHsl(hue.Unwind(), saturation, lightness)
}

// HslFromHsv converts directly from HSV. The hue is passed through
// unchanged.
func HslFromHsv(c Hsv[F32]) Hsl[F32] {
	saturation := c.Saturation.Clamp()
	value := c.Value.Clamp()

	lightness := (2 - saturation) * value

	denominator := lightness
	if lightness > 1 {
		denominator = 2 - lightness
	}

	var hlSaturation F32
	if denominator > 0 {
		hlSaturation = saturation * value / denominator
	}

	return NewHsl(c.Hue, hlSaturation, lightness*0.5)
}

const sixth F32 = 1.0 / 6
