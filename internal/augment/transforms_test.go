package augment

import (
	"image"
	"math/rand"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// gradientImage fills a w x h image with a deterministic pixel pattern.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			img.Pix[i+0] = uint8((x * 255) / (w - 1))
			img.Pix[i+1] = uint8((y * 255) / (h - 1))
			img.Pix[i+2] = uint8(((x + y) * 255) / (w + h - 2))
			img.Pix[i+3] = 255
		}
	}
	return img
}

func solidImage(w, h int, r, g, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
	return img
}

func samePixels(t *testing.T, a, b *image.NRGBA) bool {
	t.Helper()
	if a.Bounds() != b.Bounds() {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestMagnitudes_ScaleWithLevel(t *testing.T) {
	cases := []struct {
		name  string
		param string
		build func(level int) Transform
	}{
		{"rotate", "degree", func(l int) Transform { return NewRotate(l) }},
		{"posterize", "bit_loss_limit", func(l int) Transform { return NewPosterize(l) }},
		{"solarize", "loss_limit", func(l int) Transform { return NewSolarize(l) }},
		{"sharpness", "diff_limit", func(l int) Transform { return NewSharpness(l) }},
		{"contrast", "diff_limit", func(l int) Transform { return NewContrast(l) }},
		{"color", "diff_limit", func(l int) Transform { return NewColor(l) }},
		{"brightness", "diff_limit", func(l int) Transform { return NewBrightness(l) }},
		{"shear_x", "coef", func(l int) Transform { return NewShearX(l) }},
		{"shear_y", "coef", func(l int) Transform { return NewShearY(l) }},
		{"translate_x", "limit", func(l int) Transform { return NewTranslateX(l, 32) }},
		{"translate_y", "limit", func(l int) Transform { return NewTranslateY(l, 32) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := -1.0
			for level := MinLevel; level <= MaxLevel; level++ {
				params := tc.build(level).Params()
				mag, ok := params[tc.param]
				if !ok {
					t.Fatalf("level %d: missing param %q in %v", level, tc.param, params)
				}
				if level == 0 && mag != 0 {
					t.Errorf("level 0: magnitude = %g, want 0", mag)
				}
				if mag < prev {
					t.Errorf("level %d: magnitude %g below level %d's %g", level, mag, level-1, prev)
				}
				prev = mag
			}
		})
	}
}

func TestMagnitudes_KnownValues(t *testing.T) {
	if got := NewRotate(30).Params()["degree"]; got != 90 {
		t.Errorf("rotate level 30 degree = %g, want 90", got)
	}
	if got := NewPosterize(30).Params()["bit_loss_limit"]; got != 7 {
		t.Errorf("posterize level 30 bit_loss_limit = %g, want 7", got)
	}
	if got := NewSolarize(30).Params()["loss_limit"]; got != 256 {
		t.Errorf("solarize level 30 loss_limit = %g, want 256", got)
	}
	if got := NewBrightness(30).Params()["diff_limit"]; got != 0.9 {
		t.Errorf("brightness level 30 diff_limit = %g, want 0.9", got)
	}
	if got := NewShearX(30).Params()["coef"]; got != 0.5 {
		t.Errorf("shear level 30 coef = %g, want 0.5", got)
	}
	want := 32.0 / 3.0
	if got := NewTranslateX(30, 32).Params()["limit"]; got != want {
		t.Errorf("translate level 30 limit = %g, want %g", got, want)
	}
}

func TestLevelZero_IsIdentity(t *testing.T) {
	img := gradientImage(32, 32)
	transforms := []Transform{
		NewRotate(0),
		NewPosterize(0),
		NewSolarize(0),
		NewBrightness(0),
		NewContrast(0),
		NewColor(0),
		NewSharpness(0),
	}
	for _, tr := range transforms {
		out := tr.Apply(img, newTestRand())
		if !samePixels(t, img, out) {
			t.Errorf("%s at level 0 changed pixels", tr.Name())
		}
	}
}

func TestTransforms_DoNotMutateInput(t *testing.T) {
	img := gradientImage(32, 32)
	orig := clone(img)
	transforms := []Transform{
		NewRotate(25),
		NewAutoContrast(25),
		NewEqualize(25),
		NewPosterize(25),
		NewSolarize(25),
		NewBrightness(25),
		NewContrast(25),
		NewColor(25),
		NewSharpness(25),
		NewShearX(25),
		NewShearY(25),
		NewTranslateX(25, 32),
		NewTranslateY(25, 32),
	}
	rng := newTestRand()
	for _, tr := range transforms {
		tr.Apply(img, rng)
		if !samePixels(t, img, orig) {
			t.Fatalf("%s mutated its input", tr.Name())
		}
	}
}

func TestTransforms_PreserveSize(t *testing.T) {
	img := gradientImage(32, 32)
	transforms := []Transform{
		NewRotate(30),
		NewShearX(30),
		NewShearY(30),
		NewTranslateX(30, 32),
		NewTranslateY(30, 32),
	}
	rng := newTestRand()
	for _, tr := range transforms {
		for i := 0; i < 20; i++ {
			out := tr.Apply(img, rng)
			if out.Bounds().Dx() != 32 || out.Bounds().Dy() != 32 {
				t.Fatalf("%s produced %v, want 32x32", tr.Name(), out.Bounds())
			}
		}
	}
}

func TestPosterize_BitsAlwaysInRange(t *testing.T) {
	rng := newTestRand()
	for level := MinLevel; level <= MaxLevel; level++ {
		tr := NewPosterize(level)
		for i := 0; i < 200; i++ {
			bits := tr.bitsToKeep(rng)
			if bits < 0 || bits > 8 {
				t.Fatalf("level %d: bits_to_keep = %d, outside [0, 8]", level, bits)
			}
		}
	}
}

func TestPosterize_MasksLowBits(t *testing.T) {
	img := solidImage(4, 4, 0xb7, 0x6c, 0x1f)
	// Level 30 can draw bit loss up to 7; whatever it draws, output channels
	// must keep only high bits of the input.
	tr := NewPosterize(30)
	out := tr.Apply(img, newTestRand())
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			in, got := img.Pix[i+c], out.Pix[i+c]
			if got&^in != 0 {
				t.Fatalf("channel %d: output %08b sets bits absent from input %08b", c, got, in)
			}
		}
	}
}

func TestSolarize_InvertsAboveThreshold(t *testing.T) {
	img := gradientImage(16, 16)
	out := solarizeAt(img, 128)
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			in, got := img.Pix[i+c], out.Pix[i+c]
			want := in
			if in >= 128 {
				want = 255 - in
			}
			if got != want {
				t.Fatalf("channel value %d: got %d, want %d", in, got, want)
			}
		}
	}

	// Threshold 256 is unreachable by any uint8, so nothing inverts.
	if !samePixels(t, img, solarizeAt(img, 256)) {
		t.Error("threshold 256 should leave the image untouched")
	}
	// Threshold 0 inverts everything.
	inverted := solarizeAt(img, 0)
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			if inverted.Pix[i+c] != 255-img.Pix[i+c] {
				t.Fatal("threshold 0 should invert every channel")
			}
		}
	}
}
