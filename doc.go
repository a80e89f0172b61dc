// Package colours provides color value types for the RGB, HSL and HSV
// models, each with and without an alpha channel.
//
// Every type is generic over its channel representation: U8 stores a channel
// as an 8 bit integer from 0 to 255, F32 as a float from 0 to 1. A hue uses
// the same range and wraps around at the upper end.
//
// Changing the representation is done with ConvertRgb, ConvertHsl, and so on.
// Converting between models is only defined on F32 colors, widen a U8 color
// first and narrow the result afterward:
//
//	hsl := colours.ConvertHsl[colours.U8](colours.HslFromRgb(colours.ConvertRgb[colours.F32](rgb)))
//
// The packages u8 and f32 contain aliases of all types bound to a
// representation.
package colours
