package policy

import (
	"encoding/json"
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/augtune-dev/augtune/internal/augment"
)

func TestFireProbability_AtLeastOneFires(t *testing.T) {
	cases := []struct {
		n int
		p float64
	}{
		{1, 0.5},
		{2, 0.9},
		{13, 0.99},
		{13, 0.5},
		{50, 0.999},
	}
	for _, tc := range cases {
		q := FireProbability(tc.n, tc.p)
		if q <= 0 || q >= 1 {
			t.Fatalf("n=%d p=%g: q = %g outside (0, 1)", tc.n, tc.p, q)
		}
		// P(at least one fires) = 1 - (1-q)^n must equal p.
		got := 1 - math.Pow(1-q, float64(tc.n))
		if math.Abs(got-tc.p) > 1e-12 {
			t.Errorf("n=%d p=%g: combined probability = %g", tc.n, tc.p, got)
		}
	}
	// One transform degenerates to q = p.
	if q := FireProbability(1, 0.99); math.Abs(q-0.99) > 1e-12 {
		t.Errorf("n=1: q = %g, want 0.99", q)
	}
}

func TestBuild_StepOrder(t *testing.T) {
	pol, err := Build(12)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"pad", "random_crop", "horizontal_flip",
		"rotate", "autocontrast", "equalize", "posterize", "solarize",
		"sharpness", "contrast", "color", "brightness",
		"shear_x", "shear_y", "translate_x", "translate_y",
		"normalize", "coarse_dropout", "channel_transpose",
	}
	got := pol.StepNames()
	if len(got) != len(want) {
		t.Fatalf("step names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuild_StepProbabilitiesAndModes(t *testing.T) {
	pol, err := Build(8)
	if err != nil {
		t.Fatal(err)
	}
	q := FireProbability(NumLevelTransforms, TargetProbability)

	levelTransforms := map[string]bool{
		"rotate": true, "autocontrast": true, "equalize": true,
		"posterize": true, "solarize": true, "sharpness": true,
		"contrast": true, "color": true, "brightness": true,
		"shear_x": true, "shear_y": true, "translate_x": true, "translate_y": true,
	}
	nLevel := 0
	for _, s := range pol.Steps() {
		switch {
		case levelTransforms[s.Name]:
			nLevel++
			if s.Probability != q {
				t.Errorf("%s: probability = %g, want %g", s.Name, s.Probability, q)
			}
			if s.Mode != augment.ModeTrain {
				t.Errorf("%s: mode = %q, want train", s.Name, s.Mode)
			}
		case s.Name == "horizontal_flip":
			if s.Probability != 0.5 {
				t.Errorf("horizontal_flip: probability = %g, want 0.5", s.Probability)
			}
		case s.Name == "normalize" || s.Name == "channel_transpose":
			if s.Mode != augment.ModeAll {
				t.Errorf("%s: mode = %q, want all", s.Name, s.Mode)
			}
			if s.Probability != 1 {
				t.Errorf("%s: probability = %g, want 1", s.Name, s.Probability)
			}
		default:
			if s.Probability != 1 {
				t.Errorf("%s: probability = %g, want 1", s.Name, s.Probability)
			}
		}
	}
	if nLevel != NumLevelTransforms {
		t.Errorf("found %d level transforms, want %d", nLevel, NumLevelTransforms)
	}
}

func TestBuild_RejectsOutOfRangeLevels(t *testing.T) {
	for _, level := range []int{-1, 31, 100} {
		if _, err := Build(level); err == nil {
			t.Errorf("level %d: want error", level)
		}
	}
	for _, level := range []int{0, 1, 30} {
		if _, err := Build(level); err != nil {
			t.Errorf("level %d: unexpected error %v", level, err)
		}
	}
}

func TestApply_TrainProducesCHW32(t *testing.T) {
	pol, err := Build(20)
	if err != nil {
		t.Fatal(err)
	}
	img := testImage(32, 32)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 20; i++ {
		tensor, err := pol.Apply(img, augment.ModeTrain, rng)
		if err != nil {
			t.Fatal(err)
		}
		if tensor.Layout != "chw" || tensor.C != 3 || tensor.H != InputSize || tensor.W != InputSize {
			t.Fatalf("run %d: tensor = %+v", i, tensor)
		}
		if len(tensor.Data) != 3*InputSize*InputSize {
			t.Fatalf("run %d: %d values", i, len(tensor.Data))
		}
	}
}

func TestApply_EvalSkipsTrainOnlyStages(t *testing.T) {
	pol, err := Build(30)
	if err != nil {
		t.Fatal(err)
	}
	img := testImage(32, 32)

	// Eval mode keeps only normalize + transpose, so two runs with different
	// seeds must agree exactly even at the strongest level.
	a, err := pol.Apply(img, augment.ModeAll, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := pol.Apply(img, augment.ModeAll, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	if a.Layout != "chw" {
		t.Fatalf("layout = %q", a.Layout)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatal("eval pipeline must be deterministic")
		}
	}
}

func TestApply_SameSeedIsReproducible(t *testing.T) {
	pol, err := Build(18)
	if err != nil {
		t.Fatal(err)
	}
	img := testImage(32, 32)

	a, err := pol.Apply(img, augment.ModeTrain, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := pol.Apply(img, augment.ModeTrain, rand.New(rand.NewSource(123)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatal("identical seeds must produce identical tensors")
		}
	}
}

func TestStep_ParamsJSON(t *testing.T) {
	pol, err := Build(15)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range pol.Steps() {
		raw := s.ParamsJSON()
		var decoded map[string]float64
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			t.Errorf("%s: params %q is not valid JSON: %v", s.Name, raw, err)
		}
		if s.Name == "rotate" && decoded["degree"] != 45 {
			t.Errorf("rotate params = %q, want degree 45", raw)
		}
	}
}

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			img.Pix[i+0] = uint8(x * 8)
			img.Pix[i+1] = uint8(y * 8)
			img.Pix[i+2] = uint8((x ^ y) * 8)
			img.Pix[i+3] = 255
		}
	}
	return img
}
