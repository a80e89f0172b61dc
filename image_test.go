package colours

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireRGBA(t *testing.T, want, got color.Color, delta float64) {
	t.Helper()

	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()

	require.InDelta(t, wr, gr, delta, "red")
	require.InDelta(t, wg, gg, delta, "green")
	require.InDelta(t, wb, gb, delta, "blue")
	require.InDelta(t, wa, ga, delta, "alpha")
}

func TestRGBA(t *testing.T) {
	t.Run("opaque", func(t *testing.T) {
		requireRGBA(t, color.NRGBA{R: 84, G: 37, B: 181, A: 255}, NewRgb[U8](84, 37, 181), 0)
		requireRGBA(t, color.NRGBA{R: 84, G: 37, B: 181, A: 255}, NewRgba[U8](84, 37, 181, 255), 0)
		requireRGBA(t, color.White, NewRgb[F32](1, 1, 1), 0)
		requireRGBA(t, color.Black, DefaultRgba[F32](), 0)
	})

	t.Run("premultiplied", func(t *testing.T) {
		requireRGBA(t, color.NRGBA{R: 84, G: 37, B: 181, A: 128}, NewRgba[U8](84, 37, 181, 128), 1)
		requireRGBA(t, color.Transparent, NewRgba[F32](1, 0.5, 0.2, 0), 0)
	})

	t.Run("out of range is clamped", func(t *testing.T) {
		requireRGBA(t, color.NRGBA{R: 255, G: 0, B: 255, A: 255}, NewRgba[F32](2, -1, 1, 7), 0)
	})

	t.Run("other models", func(t *testing.T) {
		want := color.NRGBA{R: 84, G: 37, B: 181, A: 255}
		requireRGBA(t, want, NewHsl[U8](184, 168, 109), 0x101)
		requireRGBA(t, want, NewHsla[U8](184, 168, 109, 255), 0x101)
		requireRGBA(t, want, NewHsv[U8](184, 203, 181), 0x101)
		requireRGBA(t, want, NewHsva[U8](184, 203, 181, 255), 0x101)

		requireRGBA(t, color.NRGBA{R: 255, A: 128}, NewHsla[F32](0, 1, 0.5, 128.0/255), 1)
		requireRGBA(t, color.NRGBA{B: 255, A: 255}, NewHsv[F32](2.0/3, 1, 1), 1)
	})
}

func TestRgbaFromColor(t *testing.T) {
	require.Equal(t, NewRgba[U8](128, 128, 128, 255), RgbaFromColor(color.Gray{Y: 128}))
	require.Equal(t, NewRgba[U8](84, 37, 181, 255), RgbaFromColor(color.RGBA{R: 84, G: 37, B: 181, A: 255}))
	require.Equal(t, NewRgba[U8](0, 0, 0, 0), RgbaFromColor(color.Transparent))

	// straight alpha survives the premultiplied detour
	rgba := NewRgba[U8](10, 20, 30, 200)
	require.Equal(t, rgba, RgbaFromColor(rgba))
}

func TestRgbaModel(t *testing.T) {
	rgba := NewRgba[U8](84, 37, 181, 200)
	require.Equal(t, rgba, RgbaModel.Convert(rgba))

	require.Equal(t, NewRgba[U8](255, 0, 0, 255), RgbaModel.Convert(NewHsv[F32](0, 1, 1)))

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, NewHsl[U8](184, 168, 109))
	require.Equal(t, NewRgba[U8](84, 37, 181, 255), RgbaModel.Convert(img.At(0, 0)))
}
