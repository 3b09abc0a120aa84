package augment

// #region imports
import (
	"image"
	"math/rand"
)

// #endregion

// #region autocontrast

// AutoContrast stretches each channel's histogram to span the full [0, 255]
// range. Parameterless: the level does not change its behavior.
type AutoContrast struct{}

func NewAutoContrast(level int) *AutoContrast { return &AutoContrast{} }

func (t *AutoContrast) Name() string               { return "autocontrast" }
func (t *AutoContrast) Mode() Mode                 { return ModeTrain }
func (t *AutoContrast) Params() map[string]float64 { return nil }

func (t *AutoContrast) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	out := clone(img)
	for c := 0; c < 3; c++ {
		h := channelHistogram(img, c)
		lo, hi := -1, -1
		for v := 0; v < 256; v++ {
			if h[v] > 0 {
				if lo < 0 {
					lo = v
				}
				hi = v
			}
		}
		if lo < 0 || hi <= lo {
			continue
		}
		scale := 255.0 / float64(hi-lo)
		offset := -float64(lo) * scale
		var lut [256]uint8
		for v := 0; v < 256; v++ {
			s := int(float64(v)*scale + offset)
			if s < 0 {
				s = 0
			}
			if s > 255 {
				s = 255
			}
			lut[v] = uint8(s)
		}
		applyLUT(out, c, &lut)
	}
	return out
}

// #endregion

// #region equalize

// Equalize flattens each channel's histogram. Parameterless, like AutoContrast.
type Equalize struct{}

func NewEqualize(level int) *Equalize { return &Equalize{} }

func (t *Equalize) Name() string               { return "equalize" }
func (t *Equalize) Mode() Mode                 { return ModeTrain }
func (t *Equalize) Params() map[string]float64 { return nil }

func (t *Equalize) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	out := clone(img)
	for c := 0; c < 3; c++ {
		h := channelHistogram(img, c)
		total := 0
		for _, n := range h {
			total += n
		}
		step := (total - h[255]) / 255
		if step == 0 {
			continue
		}
		var lut [256]uint8
		n := step / 2
		for v := 0; v < 256; v++ {
			s := n / step
			if s > 255 {
				s = 255
			}
			lut[v] = uint8(s)
			n += h[v]
		}
		applyLUT(out, c, &lut)
	}
	return out
}

// #endregion

// #region lut-helpers

func channelHistogram(img *image.NRGBA, c int) [256]int {
	var h [256]int
	for i := c; i < len(img.Pix); i += 4 {
		h[img.Pix[i]]++
	}
	return h
}

func applyLUT(img *image.NRGBA, c int, lut *[256]uint8) {
	for i := c; i < len(img.Pix); i += 4 {
		img.Pix[i] = lut[img.Pix[i]]
	}
}

// #endregion
