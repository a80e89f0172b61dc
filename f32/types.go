// Package f32 binds all color types to float channels.
package f32

import "github.com/oliverbestmann/colours"

type Channel = colours.F32

type Rgb = colours.Rgb[Channel]
type Rgba = colours.Rgba[Channel]
type Hsl = colours.Hsl[Channel]
type Hsla = colours.Hsla[Channel]
type Hsv = colours.Hsv[Channel]
type Hsva = colours.Hsva[Channel]
