// Package policy composes the per-level augmentation pipeline: fixed
// preprocessing stages around the thirteen level-scaled transforms, with an
// independent Bernoulli firing draw per transform.
package policy

// #region imports
import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/augtune-dev/augtune/internal/augment"
)

// #endregion

// #region constants

const (
	// TargetProbability is the chance that at least one of the level
	// transforms fires on a given sample.
	TargetProbability = 0.99

	// NumLevelTransforms is the size of the level-scaled transform set.
	NumLevelTransforms = 13

	// InputSize is the post-crop image side length.
	InputSize = 32

	padSize         = 40
	flipProbability = 0.5
)

// CIFAR-10 channel statistics.
var (
	normalizeMean = [3]float64{0.4914, 0.4822, 0.4465}
	normalizeStd  = [3]float64{0.2471, 0.2435, 0.2616}
)

// #endregion

// #region fire-probability

// FireProbability returns the independent per-transform firing probability q
// such that, with n transforms each firing with probability q, the chance
// that at least one fires equals p.
func FireProbability(n int, p float64) float64 {
	return 1 - math.Exp(math.Log(1-p)/float64(n))
}

// #endregion

// #region step

// Step is one stage of the composed policy. Exactly one of Image, Norm and
// Tensor is set; Probability 1 means the stage always runs.
type Step struct {
	Name        string
	Mode        augment.Mode
	Probability float64
	Image       augment.Transform
	Norm        *augment.Normalize
	Tensor      augment.TensorTransform
}

// ParamsJSON renders the stage's magnitude parameters as a JSON object,
// or "{}" for parameterless stages.
func (s Step) ParamsJSON() string {
	var params map[string]float64
	switch {
	case s.Image != nil:
		params = s.Image.Params()
	case s.Norm != nil:
		params = s.Norm.Params()
	case s.Tensor != nil:
		params = s.Tensor.Params()
	}
	if len(params) == 0 {
		return "{}"
	}
	b, err := json.Marshal(params)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// #endregion

// #region policy

// Policy is the composed pipeline for one augmentation level.
type Policy struct {
	level int
	steps []Step
}

// Build validates the level and composes the full pipeline for it.
func Build(level int) (*Policy, error) {
	if level < augment.MinLevel || level > augment.MaxLevel {
		return nil, fmt.Errorf("policy: level %d outside [%d, %d]",
			level, augment.MinLevel, augment.MaxLevel)
	}
	q := FireProbability(NumLevelTransforms, TargetProbability)
	transforms := []augment.Transform{
		augment.NewRotate(level),
		augment.NewAutoContrast(level),
		augment.NewEqualize(level),
		augment.NewPosterize(level),
		augment.NewSolarize(level),
		augment.NewSharpness(level),
		augment.NewContrast(level),
		augment.NewColor(level),
		augment.NewBrightness(level),
		augment.NewShearX(level),
		augment.NewShearY(level),
		augment.NewTranslateX(level, InputSize),
		augment.NewTranslateY(level, InputSize),
	}

	steps := make([]Step, 0, len(transforms)+6)
	steps = append(steps,
		imageStep(augment.NewPad(padSize, padSize), 1),
		imageStep(augment.NewRandomCrop(InputSize, InputSize), 1),
		imageStep(augment.NewHorizontalFlip(), flipProbability),
	)
	for _, t := range transforms {
		steps = append(steps, imageStep(t, q))
	}
	norm := augment.NewNormalize(normalizeMean, normalizeStd)
	steps = append(steps,
		Step{Name: norm.Name(), Mode: norm.Mode(), Probability: 1, Norm: norm},
		tensorStep(augment.NewCoarseDropout(1, 8, 8), 1),
		tensorStep(augment.NewChannelTranspose(), 1),
	)
	return &Policy{level: level, steps: steps}, nil
}

func imageStep(t augment.Transform, p float64) Step {
	return Step{Name: t.Name(), Mode: t.Mode(), Probability: p, Image: t}
}

func tensorStep(t augment.TensorTransform, p float64) Step {
	return Step{Name: t.Name(), Mode: t.Mode(), Probability: p, Tensor: t}
}

// Level returns the level the policy was built for.
func (p *Policy) Level() int { return p.level }

// Steps returns the pipeline stages in application order.
func (p *Policy) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// StepNames returns the stage names in application order.
func (p *Policy) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name
	}
	return names
}

// #endregion

// #region apply

// Apply runs the pipeline on one image and returns the CHW tensor. Stages
// tagged train-only are skipped unless mode is ModeTrain. The input image is
// never mutated; all randomness comes from rng.
func (p *Policy) Apply(img *image.NRGBA, mode augment.Mode, rng *rand.Rand) (*augment.Tensor, error) {
	var tensor *augment.Tensor
	cur := img
	for _, s := range p.steps {
		if s.Mode == augment.ModeTrain && mode != augment.ModeTrain {
			continue
		}
		if s.Probability < 1 && rng.Float64() >= s.Probability {
			continue
		}
		switch {
		case s.Image != nil:
			if tensor != nil {
				return nil, fmt.Errorf("policy: image stage %q after normalization", s.Name)
			}
			cur = s.Image.Apply(cur, rng)
		case s.Norm != nil:
			tensor = s.Norm.Apply(cur)
		case s.Tensor != nil:
			if tensor == nil {
				return nil, fmt.Errorf("policy: tensor stage %q before normalization", s.Name)
			}
			tensor = s.Tensor.Apply(tensor, rng)
		}
	}
	if tensor == nil {
		return nil, fmt.Errorf("policy: pipeline produced no tensor")
	}
	return tensor, nil
}

// ApplyImage runs only the image-space stages and returns the transformed
// image before normalization. Used by the preview tool.
func (p *Policy) ApplyImage(img *image.NRGBA, mode augment.Mode, rng *rand.Rand) *image.NRGBA {
	cur := img
	for _, s := range p.steps {
		if s.Image == nil {
			continue
		}
		if s.Mode == augment.ModeTrain && mode != augment.ModeTrain {
			continue
		}
		if s.Probability < 1 && rng.Float64() >= s.Probability {
			continue
		}
		cur = s.Image.Apply(cur, rng)
	}
	return cur
}

// #endregion
