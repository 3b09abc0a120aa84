package augment

// #region imports
import (
	"image"
	"math"
	"math/rand"
)

// #endregion

// Each enhancer draws factor = 1 + U[-diffLimit, +diffLimit] and blends the
// original with a degenerate image: out = degenerate + factor * (original -
// degenerate). Factor 1 reproduces the original; level 0 makes diffLimit 0.

// #region brightness

// Brightness scales pixel intensity; the degenerate image is black.
type Brightness struct {
	diffLimit float64
}

// NewBrightness builds a brightness enhancer with diff_limit = level / 30 * 0.9.
func NewBrightness(level int) *Brightness {
	return &Brightness{diffLimit: float64(level) / levelRange * 0.9}
}

func (t *Brightness) Name() string { return "brightness" }
func (t *Brightness) Mode() Mode   { return ModeTrain }

func (t *Brightness) Params() map[string]float64 {
	return map[string]float64{"diff_limit": t.diffLimit}
}

func (t *Brightness) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	factor := 1 + uniform(rng, -t.diffLimit, t.diffLimit)
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clampByte(float64(out.Pix[i+c]) * factor)
		}
	}
	return out
}

// #endregion

// #region contrast

// Contrast blends against a solid gray at the mean grayscale intensity.
type Contrast struct {
	diffLimit float64
}

// NewContrast builds a contrast enhancer with diff_limit = level / 30 * 0.9.
func NewContrast(level int) *Contrast {
	return &Contrast{diffLimit: float64(level) / levelRange * 0.9}
}

func (t *Contrast) Name() string { return "contrast" }
func (t *Contrast) Mode() Mode   { return ModeTrain }

func (t *Contrast) Params() map[string]float64 {
	return map[string]float64{"diff_limit": t.diffLimit}
}

func (t *Contrast) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	factor := 1 + uniform(rng, -t.diffLimit, t.diffLimit)
	sum := 0.0
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		sum += grayLuma(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		n++
	}
	mean := math.Floor(sum/float64(n) + 0.5)
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clampByte(mean + factor*(float64(out.Pix[i+c])-mean))
		}
	}
	return out
}

// #endregion

// #region color

// Color blends against the grayscale rendition of the image.
type Color struct {
	diffLimit float64
}

// NewColor builds a color enhancer with diff_limit = level / 30 * 0.9.
func NewColor(level int) *Color {
	return &Color{diffLimit: float64(level) / levelRange * 0.9}
}

func (t *Color) Name() string { return "color" }
func (t *Color) Mode() Mode   { return ModeTrain }

func (t *Color) Params() map[string]float64 {
	return map[string]float64{"diff_limit": t.diffLimit}
}

func (t *Color) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	factor := 1 + uniform(rng, -t.diffLimit, t.diffLimit)
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		gray := math.Floor(grayLuma(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clampByte(gray + factor*(float64(img.Pix[i+c])-gray))
		}
	}
	return out
}

// #endregion

// #region sharpness

// Sharpness blends against a smoothed rendition of the image.
type Sharpness struct {
	diffLimit float64
}

// NewSharpness builds a sharpness enhancer with diff_limit = level / 30 * 0.9.
func NewSharpness(level int) *Sharpness {
	return &Sharpness{diffLimit: float64(level) / levelRange * 0.9}
}

func (t *Sharpness) Name() string { return "sharpness" }
func (t *Sharpness) Mode() Mode   { return ModeTrain }

func (t *Sharpness) Params() map[string]float64 {
	return map[string]float64{"diff_limit": t.diffLimit}
}

func (t *Sharpness) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	factor := 1 + uniform(rng, -t.diffLimit, t.diffLimit)
	smooth := smoothFilter(img)
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			base := float64(smooth.Pix[i+c])
			out.Pix[i+c] = clampByte(base + factor*(float64(img.Pix[i+c])-base))
		}
	}
	return out
}

// smoothFilter applies the 3x3 smoothing kernel (1 1 1 / 1 5 1 / 1 1 1) / 13
// to the interior; the one-pixel border is copied through unchanged.
func smoothFilter(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := clone(img)
	if w < 3 || h < 3 {
		return out
	}
	kernel := [9]float64{1, 1, 1, 1, 5, 1, 1, 1, 1}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for c := 0; c < 3; c++ {
				acc := 0.0
				k := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						acc += kernel[k] * float64(img.Pix[(y+dy)*img.Stride+(x+dx)*4+c])
						k++
					}
				}
				out.Pix[y*img.Stride+x*4+c] = clampByte(acc / 13)
			}
		}
	}
	return out
}

// #endregion

// #region gray

// grayLuma is the ITU-R 601-2 luma transform used for grayscale conversion.
func grayLuma(r, g, b uint8) float64 {
	return (299*float64(r) + 587*float64(g) + 114*float64(b)) / 1000
}

// #endregion
