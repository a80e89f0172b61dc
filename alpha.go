package colours

// HasAlpha is implemented by the colors carrying an alpha channel.
// C is the color of the same model and representation without alpha.
type HasAlpha[T Channel[T], C any] interface {
	// SplitAlpha decomposes the color into its alpha-less part and the alpha value.
	SplitAlpha() (C, T)

	// WithoutAlpha drops the alpha channel.
	WithoutAlpha() C

	// OnlyAlpha returns the alpha channel.
	OnlyAlpha() T
}

// HasntAlpha is implemented by the colors without an alpha channel.
// A is the color of the same model and representation with alpha.
type HasntAlpha[T Channel[T], A any] interface {
	// WithAlpha attaches the given alpha value.
	WithAlpha(alpha T) A

	// Opaque attaches a fully opaque alpha value.
	Opaque() A
}

var (
	_ HasntAlpha[U8, Rgba[U8]]   = Rgb[U8]{}
	_ HasntAlpha[F32, Rgba[F32]] = Rgb[F32]{}
	_ HasntAlpha[U8, Hsla[U8]]   = Hsl[U8]{}
	_ HasntAlpha[F32, Hsla[F32]] = Hsl[F32]{}
	_ HasntAlpha[U8, Hsva[U8]]   = Hsv[U8]{}
	_ HasntAlpha[F32, Hsva[F32]] = Hsv[F32]{}

	_ HasAlpha[U8, Rgb[U8]]   = Rgba[U8]{}
	_ HasAlpha[F32, Rgb[F32]] = Rgba[F32]{}
	_ HasAlpha[U8, Hsl[U8]]   = Hsla[U8]{}
	_ HasAlpha[F32, Hsl[F32]] = Hsla[F32]{}
	_ HasAlpha[U8, Hsv[U8]]   = Hsva[U8]{}
	_ HasAlpha[F32, Hsv[F32]] = Hsva[F32]{}
)
