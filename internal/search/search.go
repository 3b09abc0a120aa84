// Package search implements integer golden-section search for maximizing an
// expensive black-box objective over a closed level interval. Every level is
// evaluated at most once: repeat probes hit a memo table instead of the
// objective.
package search

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"math"
)

// #endregion

// #region errors

var (
	// ErrInvalidInterval reports a lower bound at or above the upper bound.
	ErrInvalidInterval = errors.New("search: lower bound must be below upper bound")

	// ErrBudgetTooSmall reports a trial budget below the two evaluations the
	// initial bracket needs.
	ErrBudgetTooSmall = errors.New("search: trial budget must be at least 2")
)

// #endregion

// #region types

// Objective evaluates one level. Treated as expensive: the engine never calls
// it twice for the same level.
type Objective func(ctx context.Context, level int) (float64, error)

// Config bounds the search interval and the evaluation budget.
type Config struct {
	LowerBound int
	UpperBound int
	Trials     int
}

func (c Config) validate() error {
	if c.LowerBound >= c.UpperBound {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidInterval, c.LowerBound, c.UpperBound)
	}
	if c.Trials < 2 {
		return fmt.Errorf("%w: got %d", ErrBudgetTooSmall, c.Trials)
	}
	return nil
}

// Evaluation is one completed objective call.
type Evaluation struct {
	Level int
	Score float64
}

// Result is the outcome of a finished search.
type Result struct {
	BestLevel   int
	BestScore   float64
	Evaluations []Evaluation
}

// #endregion

// #region bracket

var (
	invphi  = (math.Sqrt(5) - 1) / 2
	invphi2 = (3 - math.Sqrt(5)) / 2
)

// Bracket is the search interval with its two interior probe levels. Values
// are immutable; Next returns the shrunk successor. Bounds stay floats while
// interior probes truncate to integer levels, and Width is scaled by the
// golden ratio each step rather than recomputed, so truncation does not
// compound.
type Bracket struct {
	Lo, Hi float64
	Width  float64
	C, D   int
	YC, YD float64
}

// NewBracket places the two initial interior probes inside [lo, hi].
func NewBracket(lo, hi int) Bracket {
	a, b := float64(lo), float64(hi)
	h := b - a
	return Bracket{
		Lo: a, Hi: b, Width: h,
		C: int(a + invphi2*h),
		D: int(a + invphi*h),
	}
}

// Next shrinks the bracket toward the better probe and returns the successor
// together with the fresh interior level to evaluate. The boolean is true
// when the fresh level is the successor's C probe, false for D. The caller
// fills in the corresponding score before the following step.
func (br Bracket) Next() (Bracket, int, bool) {
	next := br
	next.Width = invphi * br.Width
	if br.YC > br.YD {
		next.Hi = float64(br.D)
		next.D = br.C
		next.YD = br.YC
		next.C = int(next.Lo + invphi2*next.Width)
		return next, next.C, true
	}
	next.Lo = float64(br.C)
	next.C = br.D
	next.YC = br.YD
	next.D = int(next.Lo + invphi*next.Width)
	return next, next.D, false
}

// #endregion

// #region engine

// Engine runs one search to completion.
type Engine struct {
	cfg   Config
	obj   Objective
	memo  map[int]float64
	order []int
}

// New validates the configuration and builds an engine.
func New(cfg Config, obj Objective) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:  cfg,
		obj:  obj,
		memo: make(map[int]float64),
	}, nil
}

// Run drives the bracket until the trial budget is spent and returns the
// best level seen. Memo hits do not consume objective calls, so the number
// of Evaluations in the result can undercut the budget.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	br := NewBracket(e.cfg.LowerBound, e.cfg.UpperBound)
	yc, err := e.eval(ctx, br.C)
	if err != nil {
		return Result{}, err
	}
	br.YC = yc
	yd, err := e.eval(ctx, br.D)
	if err != nil {
		return Result{}, err
	}
	br.YD = yd

	for i := 0; i < e.cfg.Trials-2; i++ {
		next, level, freshIsC := br.Next()
		y, err := e.eval(ctx, level)
		if err != nil {
			return Result{}, err
		}
		if freshIsC {
			next.YC = y
		} else {
			next.YD = y
		}
		br = next
	}
	return e.result(), nil
}

// eval returns the memoized score for level, calling the objective only on
// first sight.
func (e *Engine) eval(ctx context.Context, level int) (float64, error) {
	if y, ok := e.memo[level]; ok {
		return y, nil
	}
	y, err := e.obj(ctx, level)
	if err != nil {
		return 0, fmt.Errorf("evaluate level %d: %w", level, err)
	}
	e.memo[level] = y
	e.order = append(e.order, level)
	return y, nil
}

// result picks the best score; ties break toward the smallest level.
func (e *Engine) result() Result {
	res := Result{Evaluations: make([]Evaluation, len(e.order))}
	first := true
	for i, level := range e.order {
		y := e.memo[level]
		res.Evaluations[i] = Evaluation{Level: level, Score: y}
		if first || y > res.BestScore || (y == res.BestScore && level < res.BestLevel) {
			res.BestLevel = level
			res.BestScore = y
			first = false
		}
	}
	return res
}

// #endregion
