// Package imgmetrics compares rendered reference images. Images are reduced
// to their HSV value channel normalised to [0,1] and scored with
// mean-squared-error and the structural similarity index.
package imgmetrics

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Image is a single-channel brightness image with values in [0,1], row-major.
type Image struct {
	Width  int
	Height int
	Pix    []float64
}

// at returns the brightness at column x, row y.
func (m *Image) at(x, y int) float64 {
	return m.Pix[y*m.Width+x]
}

// LoadValueChannel decodes the image at path and keeps only the HSV value
// channel: max(R,G,B) per pixel, divided by 255.
func LoadValueChannel(path string) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}

	// imaging.Clone normalises any decoded image to NRGBA with a
	// zero-origin bounds, so the pixel buffer can be walked directly.
	img := imaging.Clone(src)
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	m := &Image{Width: w, Height: h, Pix: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			r := row[x*4]
			g := row[x*4+1]
			b := row[x*4+2]
			v := max(r, g, b)
			m.Pix[y*w+x] = float64(v) / 255.0
		}
	}
	return m, nil
}

// MSE returns the mean of squared per-pixel differences between a and b.
// The images must have identical dimensions.
func MSE(a, b *Image) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("mse: dimension mismatch %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	var sum float64
	for i := range a.Pix {
		d := a.Pix[i] - b.Pix[i]
		sum += d * d
	}
	return sum / float64(len(a.Pix)), nil
}

// SSIM window parameters: a 7x7 uniform window over data range 1.0 with the
// standard K1/K2 stabilisation constants, sample (N-1) normalisation for
// variance and covariance, and the window slid only over fully interior
// positions.
const (
	ssimWindow = 7
	ssimK1     = 0.01
	ssimK2     = 0.03
)

// SSIM returns the mean structural similarity index between a and b over data
// range [0,1]. The images must have identical dimensions of at least 7x7.
// Comparing an image with itself yields exactly 1.
func SSIM(a, b *Image) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("ssim: dimension mismatch %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	if a.Width < ssimWindow || a.Height < ssimWindow {
		return 0, fmt.Errorf("ssim: image %dx%d smaller than %dx%d window", a.Width, a.Height, ssimWindow, ssimWindow)
	}

	const (
		c1 = ssimK1 * ssimK1 // data range 1.0
		c2 = ssimK2 * ssimK2
	)
	n := float64(ssimWindow * ssimWindow)
	covNorm := n / (n - 1)

	var total float64
	var windows int
	for wy := 0; wy+ssimWindow <= a.Height; wy++ {
		for wx := 0; wx+ssimWindow <= a.Width; wx++ {
			var sumA, sumB, sumAA, sumBB, sumAB float64
			for y := wy; y < wy+ssimWindow; y++ {
				for x := wx; x < wx+ssimWindow; x++ {
					pa := a.at(x, y)
					pb := b.at(x, y)
					sumA += pa
					sumB += pb
					sumAA += pa * pa
					sumBB += pb * pb
					sumAB += pa * pb
				}
			}
			ua := sumA / n
			ub := sumB / n
			va := (sumAA/n - ua*ua) * covNorm
			vb := (sumBB/n - ub*ub) * covNorm
			vab := (sumAB/n - ua*ub) * covNorm

			s := ((2*ua*ub + c1) * (2*vab + c2)) /
				((ua*ua + ub*ub + c1) * (va + vb + c2))
			total += s
			windows++
		}
	}
	return total / float64(windows), nil
}
