package imgmetrics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniform builds a w x h brightness image with every pixel set to v.
func uniform(w, h int, v float64) *Image {
	m := &Image{Width: w, Height: h, Pix: make([]float64, w*h)}
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

// gradient builds a w x h brightness image with per-pixel variation.
func gradient(w, h int) *Image {
	m := &Image{Width: w, Height: h, Pix: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Pix[y*w+x] = float64(x+y) / float64(w+h-2)
		}
	}
	return m
}

func TestLoadValueChannel(t *testing.T) {
	t.Parallel()

	t.Run("keeps the HSV value channel scaled to [0,1]", func(t *testing.T) {
		t.Parallel()
		src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 4; x++ {
				src.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
			}
		}
		src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
		src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})

		path := filepath.Join(t.TempDir(), "img.png")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, src))
		require.NoError(t, f.Close())

		m, err := LoadValueChannel(path)
		require.NoError(t, err)
		assert.Equal(t, 4, m.Width)
		assert.Equal(t, 2, m.Height)
		assert.InDelta(t, 1.0, m.at(0, 0), 1e-12)
		assert.InDelta(t, 0.0, m.at(1, 0), 1e-12)
		assert.InDelta(t, 30.0/255.0, m.at(2, 0), 1e-12)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadValueChannel(filepath.Join(t.TempDir(), "absent.png"))
		assert.Error(t, err)
	})
}

func TestMSE(t *testing.T) {
	t.Parallel()

	t.Run("zero against itself", func(t *testing.T) {
		t.Parallel()
		a := gradient(8, 8)
		mse, err := MSE(a, a)
		require.NoError(t, err)
		assert.Zero(t, mse)
	})

	t.Run("mean of squared differences", func(t *testing.T) {
		t.Parallel()
		mse, err := MSE(uniform(8, 8, 0), uniform(8, 8, 0.5))
		require.NoError(t, err)
		assert.InDelta(t, 0.25, mse, 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		t.Parallel()
		a := gradient(8, 8)
		b := uniform(8, 8, 0.3)
		ab, err := MSE(a, b)
		require.NoError(t, err)
		ba, err := MSE(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	})

	t.Run("rejects dimension mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := MSE(uniform(8, 8, 0), uniform(8, 9, 0))
		assert.Error(t, err)
	})
}

func TestSSIM(t *testing.T) {
	t.Parallel()

	t.Run("exactly one against itself", func(t *testing.T) {
		t.Parallel()
		a := gradient(16, 12)
		ssim, err := SSIM(a, a)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, ssim, 1e-9)
	})

	t.Run("below one for differing images", func(t *testing.T) {
		t.Parallel()
		ssim, err := SSIM(uniform(8, 8, 0.5), uniform(8, 8, 0.6))
		require.NoError(t, err)
		assert.Less(t, ssim, 1.0)
		assert.Greater(t, ssim, 0.0)
	})

	t.Run("rejects dimension mismatch", func(t *testing.T) {
		t.Parallel()
		_, err := SSIM(uniform(8, 8, 0), uniform(9, 8, 0))
		assert.Error(t, err)
	})

	t.Run("rejects images smaller than the window", func(t *testing.T) {
		t.Parallel()
		_, err := SSIM(uniform(6, 6, 0), uniform(6, 6, 0))
		assert.Error(t, err)
	})
}
