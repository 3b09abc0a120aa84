package augment

// #region imports
import (
	"image"
	"math/rand"
)

// #endregion

// #region pad

// Pad reflection-pads the image (mirror without repeating the edge row) so it
// is at least minWidth x minHeight. Always fires; train split only.
type Pad struct {
	minWidth  int
	minHeight int
}

func NewPad(minWidth, minHeight int) *Pad {
	return &Pad{minWidth: minWidth, minHeight: minHeight}
}

func (t *Pad) Name() string { return "pad" }
func (t *Pad) Mode() Mode   { return ModeTrain }

func (t *Pad) Params() map[string]float64 {
	return map[string]float64{
		"min_width":  float64(t.minWidth),
		"min_height": float64(t.minHeight),
	}
}

func (t *Pad) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= t.minWidth && h >= t.minHeight {
		return clone(img)
	}
	outW, outH := w, h
	if outW < t.minWidth {
		outW = t.minWidth
	}
	if outH < t.minHeight {
		outH = t.minHeight
	}
	left := (outW - w) / 2
	top := (outH - h) / 2
	out := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	for y := 0; y < outH; y++ {
		sy := reflect101(y-top, h)
		for x := 0; x < outW; x++ {
			sx := reflect101(x-left, w)
			si := sy*img.Stride + sx*4
			di := y*out.Stride + x*4
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}

// reflect101 maps an out-of-range coordinate back inside [0, n) by mirroring
// about the border pixel without repeating it.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

// #endregion

// #region random-crop

// RandomCrop cuts a width x height window at a uniformly drawn offset.
type RandomCrop struct {
	width  int
	height int
}

func NewRandomCrop(width, height int) *RandomCrop {
	return &RandomCrop{width: width, height: height}
}

func (t *RandomCrop) Name() string { return "random_crop" }
func (t *RandomCrop) Mode() Mode   { return ModeTrain }

func (t *RandomCrop) Params() map[string]float64 {
	return map[string]float64{
		"width":  float64(t.width),
		"height": float64(t.height),
	}
}

func (t *RandomCrop) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= t.width && h <= t.height {
		return clone(img)
	}
	x0 := 0
	if w > t.width {
		x0 = rng.Intn(w - t.width + 1)
	}
	y0 := 0
	if h > t.height {
		y0 = rng.Intn(h - t.height + 1)
	}
	out := image.NewNRGBA(image.Rect(0, 0, t.width, t.height))
	for y := 0; y < t.height; y++ {
		si := (y+y0)*img.Stride + x0*4
		di := y * out.Stride
		copy(out.Pix[di:di+t.width*4], img.Pix[si:si+t.width*4])
	}
	return out
}

// #endregion

// #region horizontal-flip

// HorizontalFlip mirrors the image left to right.
type HorizontalFlip struct{}

func NewHorizontalFlip() *HorizontalFlip { return &HorizontalFlip{} }

func (t *HorizontalFlip) Name() string               { return "horizontal_flip" }
func (t *HorizontalFlip) Mode() Mode                 { return ModeTrain }
func (t *HorizontalFlip) Params() map[string]float64 { return nil }

func (t *HorizontalFlip) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := y*img.Stride + x*4
			di := y*out.Stride + (w-1-x)*4
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}

// #endregion

// #region normalize

// Normalize converts uint8 RGB to a float32 HWC tensor with per-channel
// standardization: (v/255 - mean) / std. Applies to every split.
type Normalize struct {
	mean [3]float64
	std  [3]float64
}

func NewNormalize(mean, std [3]float64) *Normalize {
	return &Normalize{mean: mean, std: std}
}

func (t *Normalize) Name() string { return "normalize" }
func (t *Normalize) Mode() Mode   { return ModeAll }

func (t *Normalize) Params() map[string]float64 {
	return map[string]float64{
		"mean_r": t.mean[0], "mean_g": t.mean[1], "mean_b": t.mean[2],
		"std_r": t.std[0], "std_g": t.std[1], "std_b": t.std[2],
	}
}

func (t *Normalize) Apply(img *image.NRGBA) *Tensor {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Tensor{Layout: "hwc", C: 3, H: h, W: w, Data: make([]float32, h*w*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pi := y*img.Stride + x*4
			di := (y*w + x) * 3
			for c := 0; c < 3; c++ {
				v := float64(img.Pix[pi+c]) / 255.0
				out.Data[di+c] = float32((v - t.mean[c]) / t.std[c])
			}
		}
	}
	return out
}

// #endregion

// #region coarse-dropout

// CoarseDropout zeroes up to maxHoles rectangular regions of the tensor.
// Runs after normalization, so the fill value 0 is the standardized mean-ish
// gray rather than black.
type CoarseDropout struct {
	maxHoles  int
	maxHeight int
	maxWidth  int
	fill      float32
}

func NewCoarseDropout(maxHoles, maxHeight, maxWidth int) *CoarseDropout {
	return &CoarseDropout{maxHoles: maxHoles, maxHeight: maxHeight, maxWidth: maxWidth}
}

func (t *CoarseDropout) Name() string { return "coarse_dropout" }
func (t *CoarseDropout) Mode() Mode   { return ModeTrain }

func (t *CoarseDropout) Params() map[string]float64 {
	return map[string]float64{
		"max_holes":  float64(t.maxHoles),
		"max_height": float64(t.maxHeight),
		"max_width":  float64(t.maxWidth),
	}
}

func (t *CoarseDropout) Apply(in *Tensor, rng *rand.Rand) *Tensor {
	out := &Tensor{Layout: in.Layout, C: in.C, H: in.H, W: in.W,
		Data: append([]float32(nil), in.Data...)}
	for hole := 0; hole < t.maxHoles; hole++ {
		hh := t.maxHeight
		if hh > out.H {
			hh = out.H
		}
		hw := t.maxWidth
		if hw > out.W {
			hw = out.W
		}
		y0 := rng.Intn(out.H - hh + 1)
		x0 := rng.Intn(out.W - hw + 1)
		for y := y0; y < y0+hh; y++ {
			for x := x0; x < x0+hw; x++ {
				base := (y*out.W + x) * out.C
				for c := 0; c < out.C; c++ {
					out.Data[base+c] = t.fill
				}
			}
		}
	}
	return out
}

// #endregion

// #region channel-transpose

// ChannelTranspose reorders the tensor from HWC to CHW. Applies to every split.
type ChannelTranspose struct{}

func NewChannelTranspose() *ChannelTranspose { return &ChannelTranspose{} }

func (t *ChannelTranspose) Name() string               { return "channel_transpose" }
func (t *ChannelTranspose) Mode() Mode                 { return ModeAll }
func (t *ChannelTranspose) Params() map[string]float64 { return nil }

func (t *ChannelTranspose) Apply(in *Tensor, rng *rand.Rand) *Tensor {
	out := &Tensor{Layout: "chw", C: in.C, H: in.H, W: in.W,
		Data: make([]float32, len(in.Data))}
	for y := 0; y < in.H; y++ {
		for x := 0; x < in.W; x++ {
			for c := 0; c < in.C; c++ {
				out.Data[(c*in.H+y)*in.W+x] = in.Data[(y*in.W+x)*in.C+c]
			}
		}
	}
	return out
}

// #endregion
