package colours

import "fmt"

// Hsv is a color in the HSV model without alpha. Hue is a circular channel,
// saturation and value are linear.
type Hsv[T Channel[T]] struct {
	Hue, Saturation, Value T
}

func NewHsv[T Channel[T]](hue, saturation, value T) Hsv[T] {
	return Hsv[T]{Hue: hue, Saturation: saturation, Value: value}
}

func DefaultHsv[T Channel[T]]() Hsv[T] {
	var ch T
	return NewHsv(ch.Min(), ch.Min(), ch.Min())
}

func (c Hsv[T]) WithAlpha(alpha T) Hsva[T] {
	return Hsva[T]{Hue: c.Hue, Saturation: c.Saturation, Value: c.Value, Alpha: alpha}
}

func (c Hsv[T]) Opaque() Hsva[T] {
	return c.WithAlpha(c.Hue.Max())
}

// Clamp unwinds the hue and restricts saturation and value to [Min, Max].
func (c Hsv[T]) Clamp() Hsv[T] {
	return NewHsv(c.Hue.Unwind(), c.Saturation.Clamp(), c.Value.Clamp())
}

func (c Hsv[T]) String() string {
	return fmt.Sprintf("hsv(hue=%v, saturation=%v, value=%v)", c.Hue, c.Saturation, c.Value)
}

// ConvertHsv changes the channel representation of an HSV color.
func ConvertHsv[D Channel[D], S Channel[S]](c Hsv[S]) Hsv[D] {
	return Hsv[D]{
		Hue:        convertChannel[D](c.Hue),
		Saturation: convertChannel[D](c.Saturation),
		Value:      convertChannel[D](c.Value),
	}
}

// HsvFromRgb converts from RGB. Black and gray colors have hue 0.
func HsvFromRgb(c Rgb[F32]) Hsv[F32] {
	red, green, blue := c.Red.Clamp(), c.Green.Clamp(), c.Blue.Clamp()

	cMax := max(0, red, green, blue)
	cMin := min(1, red, green, blue)

	if cMax <= 0 {
		return NewHsv[F32](0, 0, 0)
	}

	delta := cMax - cMin
	saturation := delta / cMax

	var hue F32
	if delta != 0 {
		switch cMax {
		case red:
			hue = (green - blue) / delta
		case green:
			hue = 2 + (blue-red)/delta
		default:
			hue = 4 + (red-green)/delta
		}

		hue = (hue / 6).Unwind()
	}

	return NewHsv(hue, saturation, cMax)
}

// HsvFromHsl converts directly from HSL. The hue is passed through
// unchanged.
func HsvFromHsl(c Hsl[F32]) Hsv[F32] {
	saturation := c.Saturation.Clamp()
	lightness := c.Lightness.Clamp()

	l2 := lightness * 2
	s2 := saturation * l2
	if l2 > 1 {
		s2 = saturation * (2 - l2)
	}

	sum := l2 + s2
	if sum == 0 {
		return NewHsv[F32](c.Hue, 0, 0)
	}

	return NewHsv(c.Hue, 2*s2/sum, sum*0.5)
}
