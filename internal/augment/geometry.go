package augment

// #region imports
import (
	"image"
	"math"
	"math/rand"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// #endregion

// #region rotate

// Rotate rotates by an angle drawn uniformly from [-degree, +degree] about
// the image center, keeping the canvas size. Uncovered corners fill black.
type Rotate struct {
	degree float64
}

// NewRotate builds a rotation with degree = level * 3.
func NewRotate(level int) *Rotate {
	return &Rotate{degree: float64(level) * 3.0}
}

func (t *Rotate) Name() string { return "rotate" }
func (t *Rotate) Mode() Mode   { return ModeTrain }

func (t *Rotate) Params() map[string]float64 {
	return map[string]float64{"degree": t.degree}
}

func (t *Rotate) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	angle := uniform(rng, -t.degree, t.degree)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rad := angle * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx, cy := float64(w)/2, float64(h)/2
	m := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}

// #endregion

// #region shear

// ShearX shears horizontally by a factor drawn uniformly from [-coef, +coef].
// The canvas is widened so nothing is clipped, then resized back.
type ShearX struct {
	coef float64
}

// NewShearX builds a horizontal shear with coef = level / 30 * 0.5.
func NewShearX(level int) *ShearX {
	return &ShearX{coef: float64(level) / levelRange * 0.5}
}

func (t *ShearX) Name() string { return "shear_x" }
func (t *ShearX) Mode() Mode   { return ModeTrain }

func (t *ShearX) Params() map[string]float64 {
	return map[string]float64{"coef": t.coef}
}

func (t *ShearX) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	s := uniform(rng, -t.coef, t.coef)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	xshift := int(math.Round(math.Abs(s) * float64(w)))
	// src -> dst: x' = x - s*y - c, where c shifts positive shears into view.
	c := 0.0
	if s > 0 {
		c = -float64(xshift)
	}
	m := f64.Aff3{
		1, -s, -c,
		0, 1, 0,
	}
	sheared := image.NewNRGBA(image.Rect(0, 0, w+xshift, h))
	draw.CatmullRom.Transform(sheared, m, img, b, draw.Src, nil)
	return resizeTo(sheared, w, h)
}

// ShearY is the vertical counterpart of ShearX.
type ShearY struct {
	coef float64
}

// NewShearY builds a vertical shear with coef = level / 30 * 0.5.
func NewShearY(level int) *ShearY {
	return &ShearY{coef: float64(level) / levelRange * 0.5}
}

func (t *ShearY) Name() string { return "shear_y" }
func (t *ShearY) Mode() Mode   { return ModeTrain }

func (t *ShearY) Params() map[string]float64 {
	return map[string]float64{"coef": t.coef}
}

func (t *ShearY) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	s := uniform(rng, -t.coef, t.coef)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	yshift := int(math.Round(math.Abs(s) * float64(h)))
	c := 0.0
	if s > 0 {
		c = -float64(yshift)
	}
	m := f64.Aff3{
		1, 0, 0,
		-s, 1, -c,
	}
	sheared := image.NewNRGBA(image.Rect(0, 0, w, h+yshift))
	draw.CatmullRom.Transform(sheared, m, img, b, draw.Src, nil)
	return resizeTo(sheared, w, h)
}

// #endregion

// #region translate

// TranslateX shifts horizontally by a displacement drawn uniformly from
// [-limit, +limit] pixels. The canvas stays fixed; vacated pixels fill black.
type TranslateX struct {
	limit float64
}

// NewTranslateX builds a horizontal translation with limit = level / 30 * height / 3.
// CIFAR inputs are square, so the height-derived limit serves both axes.
func NewTranslateX(level int, height int) *TranslateX {
	return &TranslateX{limit: float64(level) / levelRange * float64(height) / 3.0}
}

func (t *TranslateX) Name() string { return "translate_x" }
func (t *TranslateX) Mode() Mode   { return ModeTrain }

func (t *TranslateX) Params() map[string]float64 {
	return map[string]float64{"limit": t.limit}
}

func (t *TranslateX) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	d := uniform(rng, -t.limit, t.limit)
	return translate(img, d, 0)
}

// TranslateY is the vertical counterpart of TranslateX.
type TranslateY struct {
	limit float64
}

// NewTranslateY builds a vertical translation with limit = level / 30 * height / 3.
func NewTranslateY(level int, height int) *TranslateY {
	return &TranslateY{limit: float64(level) / levelRange * float64(height) / 3.0}
}

func (t *TranslateY) Name() string { return "translate_y" }
func (t *TranslateY) Mode() Mode   { return ModeTrain }

func (t *TranslateY) Params() map[string]float64 {
	return map[string]float64{"limit": t.limit}
}

func (t *TranslateY) Apply(img *image.NRGBA, rng *rand.Rand) *image.NRGBA {
	d := uniform(rng, -t.limit, t.limit)
	return translate(img, 0, d)
}

func translate(img *image.NRGBA, dx, dy float64) *image.NRGBA {
	b := img.Bounds()
	m := f64.Aff3{
		1, 0, dx,
		0, 1, dy,
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.CatmullRom.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}

// #endregion

// #region resize

func resizeTo(img *image.NRGBA, w, h int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// #endregion
