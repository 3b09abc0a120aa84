package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a recorded
// level-to-accuracy table plus the search outcome observed when it was
// captured.
type Fixture struct {
	Description         string              `json:"description"`
	LowerBound          int                 `json:"lower_bound"`
	UpperBound          int                 `json:"upper_bound"`
	Trials              int                 `json:"trials"`
	DefaultScore        float64             `json:"default_score"`
	Scores              map[string]float64  `json:"scores"`
	ExpectedEvaluations []FixtureEvaluation `json:"expected_evaluations"`
	ExpectedBestLevel   int                 `json:"expected_best_level"`
	ExpectedBestScore   float64             `json:"expected_best_score"`
}

// FixtureEvaluation is one expected objective call, in order.
type FixtureEvaluation struct {
	Level int     `json:"level"`
	Score float64 `json:"score"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Score returns the recorded accuracy for a level, falling back to the
// fixture's default for levels the recorded run never visited.
func (f *Fixture) Score(level int) float64 {
	if s, ok := f.Scores[strconv.Itoa(level)]; ok {
		return s
	}
	return f.DefaultScore
}

// #endregion fixture-loader
