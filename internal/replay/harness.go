// Package replay re-runs a recorded search deterministically: the engine is
// driven against a level-to-accuracy table instead of live training runs, so
// a past search can be verified step for step without a GPU.
package replay

// #region imports
import (
	"context"
	"fmt"

	"github.com/augtune-dev/augtune/internal/search"
)

// #endregion

// #region types

// Result captures the outcome of replaying one recorded score table.
type Result struct {
	Evaluations []search.Evaluation
	BestLevel   int
	BestScore   float64
}

// Divergence is one mismatch between a replay and its fixture's expectations.
type Divergence struct {
	Field string
	Want  string
	Got   string
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s: want %s, got %s", d.Field, d.Want, d.Got)
}

// #endregion types

// #region replay

// Replay runs the search engine against a recorded score function. Operates
// entirely in-memory; the score function is never treated as fallible.
func Replay(lowerBound, upperBound, trials int, score func(level int) float64) (Result, error) {
	eng, err := search.New(search.Config{
		LowerBound: lowerBound,
		UpperBound: upperBound,
		Trials:     trials,
	}, func(ctx context.Context, level int) (float64, error) {
		return score(level), nil
	})
	if err != nil {
		return Result{}, err
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		return Result{}, err
	}
	return Result{
		Evaluations: res.Evaluations,
		BestLevel:   res.BestLevel,
		BestScore:   res.BestScore,
	}, nil
}

// ReplayFixture replays a fixture's score table with its own bounds and budget.
func ReplayFixture(f *Fixture) (Result, error) {
	return Replay(f.LowerBound, f.UpperBound, f.Trials, f.Score)
}

// #endregion replay

// #region compare

// Compare checks a replay result against a fixture's expectations and
// returns every divergence found. An empty slice means the replay matched.
func Compare(f *Fixture, res Result) []Divergence {
	var out []Divergence
	if len(res.Evaluations) != len(f.ExpectedEvaluations) {
		out = append(out, Divergence{
			Field: "evaluation_count",
			Want:  fmt.Sprintf("%d", len(f.ExpectedEvaluations)),
			Got:   fmt.Sprintf("%d", len(res.Evaluations)),
		})
	}
	n := len(res.Evaluations)
	if len(f.ExpectedEvaluations) < n {
		n = len(f.ExpectedEvaluations)
	}
	for i := 0; i < n; i++ {
		want, got := f.ExpectedEvaluations[i], res.Evaluations[i]
		if want.Level != got.Level {
			out = append(out, Divergence{
				Field: fmt.Sprintf("evaluation[%d].level", i),
				Want:  fmt.Sprintf("%d", want.Level),
				Got:   fmt.Sprintf("%d", got.Level),
			})
		}
		if want.Score != got.Score {
			out = append(out, Divergence{
				Field: fmt.Sprintf("evaluation[%d].score", i),
				Want:  fmt.Sprintf("%g", want.Score),
				Got:   fmt.Sprintf("%g", got.Score),
			})
		}
	}
	if res.BestLevel != f.ExpectedBestLevel {
		out = append(out, Divergence{
			Field: "best_level",
			Want:  fmt.Sprintf("%d", f.ExpectedBestLevel),
			Got:   fmt.Sprintf("%d", res.BestLevel),
		})
	}
	if res.BestScore != f.ExpectedBestScore {
		out = append(out, Divergence{
			Field: "best_score",
			Want:  fmt.Sprintf("%g", f.ExpectedBestScore),
			Got:   fmt.Sprintf("%g", res.BestScore),
		})
	}
	return out
}

// #endregion compare
