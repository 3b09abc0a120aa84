// Package augment implements the image-augmentation transform set and the
// fixed pipeline stages of the composed policy. Magnitudes are deterministic
// functions of the augmentation level; only the per-apply draw is random, and
// every draw comes from an explicitly passed *rand.Rand.
package augment

// #region imports
import (
	"image"
	"math/rand"
)

// #endregion

// #region mode

// Mode tags a pipeline step with its applicability: train-split only, or all splits.
type Mode string

const (
	ModeTrain Mode = "train"
	ModeAll   Mode = "all"
)

// #endregion

// #region level

// Level bounds for the augmentation strength knob. Transforms accept level 0
// (all magnitudes degenerate to identity); the search itself runs on [1, 30].
const (
	MinLevel = 0
	MaxLevel = 30
)

const levelRange = 30.0

// #endregion

// #region transform-interface

// Transform is one image-space augmentation step. Apply must not mutate its
// input and must return an image of the same size as the input.
type Transform interface {
	Name() string
	Mode() Mode
	// Params returns the level-derived magnitude parameters, keyed by name.
	// Deterministic per transform instance; nil for parameterless transforms.
	Params() map[string]float64
	Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA
}

// #endregion

// #region tensor

// Tensor is a float32 image tensor produced by the normalization stage.
// Layout is "hwc" until the channel transpose converts it to "chw".
type Tensor struct {
	Layout string
	C      int
	H      int
	W      int
	Data   []float32
}

// At reads one element regardless of layout.
func (t *Tensor) At(c, y, x int) float32 {
	if t.Layout == "chw" {
		return t.Data[(c*t.H+y)*t.W+x]
	}
	return t.Data[(y*t.W+x)*t.C+c]
}

// TensorTransform is one tensor-space step applied after normalization.
type TensorTransform interface {
	Name() string
	Mode() Mode
	Params() map[string]float64
	Apply(t *Tensor, rng *rand.Rand) *Tensor
}

// #endregion

// #region helpers

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clone(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Bounds())
	copy(dst.Pix, img.Pix)
	return dst
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// FromRGB builds an NRGBA image from packed uint8 HWC RGB pixels.
func FromRGB(pixels []byte, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			si := (y*width + x) * 3
			di := y*img.Stride + x*4
			img.Pix[di+0] = pixels[si+0]
			img.Pix[di+1] = pixels[si+1]
			img.Pix[di+2] = pixels[si+2]
			img.Pix[di+3] = 255
		}
	}
	return img
}

// ToRGB packs an NRGBA image into uint8 HWC RGB pixels, dropping alpha.
func ToRGB(img *image.NRGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			di := (y*w + x) * 3
			pi := y*img.Stride + x*4
			out[di+0] = img.Pix[pi+0]
			out[di+1] = img.Pix[pi+1]
			out[di+2] = img.Pix[pi+2]
		}
	}
	return out
}

// #endregion
