package augment

// #region imports
import (
	"image"
	"math"
	"math/rand"
)

// #endregion

// #region posterize

// Posterize reduces the color depth of each channel, keeping
// 8 - round(U[0, bitLossLimit]) bits per channel.
type Posterize struct {
	bitLossLimit float64
}

// NewPosterize builds a posterization with bit_loss_limit = level / 30 * 7.
func NewPosterize(level int) *Posterize {
	return &Posterize{bitLossLimit: float64(level) / levelRange * 7.0}
}

func (t *Posterize) Name() string { return "posterize" }
func (t *Posterize) Mode() Mode   { return ModeTrain }

func (t *Posterize) Params() map[string]float64 {
	return map[string]float64{"bit_loss_limit": t.bitLossLimit}
}

func (t *Posterize) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	bits := t.bitsToKeep(rng)
	mask := ^uint8(0xff >> bits)
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] &= mask
		out.Pix[i+1] &= mask
		out.Pix[i+2] &= mask
	}
	return out
}

// bitsToKeep draws the per-apply depth. Always in [0, 8], whatever the level.
func (t *Posterize) bitsToKeep(rng *rand.Rand) int {
	bits := 8 - int(math.Round(uniform(rng, 0, t.bitLossLimit)))
	if bits < 0 {
		bits = 0
	}
	if bits > 8 {
		bits = 8
	}
	return bits
}

// #endregion

// #region solarize

// Solarize inverts every channel value at or above a threshold drawn as
// 256 - round(U[0, lossLimit]).
type Solarize struct {
	lossLimit float64
}

// NewSolarize builds a solarization with loss_limit = level / 30 * 256.
func NewSolarize(level int) *Solarize {
	return &Solarize{lossLimit: float64(level) / levelRange * 256.0}
}

func (t *Solarize) Name() string { return "solarize" }
func (t *Solarize) Mode() Mode   { return ModeTrain }

func (t *Solarize) Params() map[string]float64 {
	return map[string]float64{"loss_limit": t.lossLimit}
}

func (t *Solarize) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	threshold := 256 - int(math.Round(uniform(rng, 0, t.lossLimit)))
	return solarizeAt(img, threshold)
}

func solarizeAt(img *image.NRGBA, threshold int) *image.NRGBA {
	out := clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			if int(out.Pix[i+c]) >= threshold {
				out.Pix[i+c] = 255 - out.Pix[i+c]
			}
		}
	}
	return out
}

// #endregion
