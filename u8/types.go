// Package u8 binds all color types to 8 bit integer channels.
package u8

import "github.com/oliverbestmann/colours"

type Channel = colours.U8

type Rgb = colours.Rgb[Channel]
type Rgba = colours.Rgba[Channel]
type Hsl = colours.Hsl[Channel]
type Hsla = colours.Hsla[Channel]
type Hsv = colours.Hsv[Channel]
type Hsva = colours.Hsva[Channel]
