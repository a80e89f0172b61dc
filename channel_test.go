package colours

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var nan = F32(math.NaN())
var inf = F32(math.Inf(1))

func TestU8_Bounds(t *testing.T) {
	require.Equal(t, U8(0), U8(17).Min())
	require.Equal(t, U8(255), U8(17).Max())

	for v := 0; v < 256; v++ {
		require.Equal(t, U8(v), U8(v).Clamp())
		require.Equal(t, U8(v), U8(v).Unwind())
	}
}

func TestF32_Clamp(t *testing.T) {
	require.Equal(t, F32(0), F32(-0.5).Clamp())
	require.Equal(t, F32(0), F32(0).Clamp())
	require.Equal(t, F32(0.3), F32(0.3).Clamp())
	require.Equal(t, F32(1), F32(1).Clamp())
	require.Equal(t, F32(1), F32(1.5).Clamp())
	require.Equal(t, F32(1), inf.Clamp())
	require.Equal(t, F32(0), (-inf).Clamp())
	require.Equal(t, F32(0), nan.Clamp())
}

func TestF32_ClampIdempotent(t *testing.T) {
	for _, value := range []F32{-inf, -3, -0.01, 0, 0.25, 0.999, 1, 1.01, 42, inf, nan} {
		once := value.Clamp()
		require.Equal(t, once, once.Clamp())
		require.True(t, once >= 0 && once <= 1, "clamp(%v) = %v", value, once)
	}
}

func TestF32_Unwind(t *testing.T) {
	require.Equal(t, F32(0), F32(0).Unwind())
	require.Equal(t, F32(0.5), F32(0.5).Unwind())
	require.Equal(t, F32(0.75), F32(-0.25).Unwind())
	require.Equal(t, F32(0.25), F32(1.25).Unwind())
	require.Equal(t, F32(0.5), F32(-3.5).Unwind())
	require.Equal(t, F32(0), F32(1).Unwind())
	require.Equal(t, F32(0), F32(-2).Unwind())
	require.InDelta(t, 0.9, float64(F32(-0.1).Unwind()), 1e-6)

	require.Equal(t, F32(0), inf.Unwind())
	require.Equal(t, F32(0), (-inf).Unwind())
	require.Equal(t, F32(0), nan.Unwind())
}

func TestF32_UnwindRange(t *testing.T) {
	for x := -10.0; x < 10.0; x += 0.001 {
		value := F32(x).Unwind()
		require.True(t, value >= 0 && value < 1, "unwind(%v) = %v", x, value)
	}

	for _, x := range []F32{-1e-9, 1e-9, -1e-30, 0.99999994, 1.0000001, -0.99999994} {
		value := x.Unwind()
		require.True(t, value >= 0 && value < 1, "unwind(%v) = %v", x, value)
	}
}

func TestConvertChannel(t *testing.T) {
	t.Run("widen", func(t *testing.T) {
		require.Equal(t, F32(0), convertChannel[F32](U8(0)))
		require.Equal(t, F32(1), convertChannel[F32](U8(255)))
		require.Equal(t, F32(float32(84)/255), convertChannel[F32](U8(84)))
	})

	t.Run("narrow", func(t *testing.T) {
		require.Equal(t, U8(0), convertChannel[U8](F32(0)))
		require.Equal(t, U8(255), convertChannel[U8](F32(1)))
		require.Equal(t, U8(51), convertChannel[U8](F32(0.2)))

		// 127.5 rounds away from zero
		require.Equal(t, U8(128), convertChannel[U8](F32(0.5)))
	})

	t.Run("narrow out of range", func(t *testing.T) {
		require.Equal(t, U8(0), convertChannel[U8](F32(-0.5)))
		require.Equal(t, U8(255), convertChannel[U8](F32(7)))
		require.Equal(t, U8(255), convertChannel[U8](inf))
		require.Equal(t, U8(0), convertChannel[U8](nan))
	})

	t.Run("round trip", func(t *testing.T) {
		for v := 0; v < 256; v++ {
			require.Equal(t, U8(v), convertChannel[U8](convertChannel[F32](U8(v))))
		}
	})

	t.Run("same representation", func(t *testing.T) {
		require.Equal(t, U8(84), convertChannel[U8](U8(84)))
		require.Equal(t, F32(1.5), convertChannel[F32](F32(1.5)))
	})
}
