package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// countingObjective records every real call so tests can assert memoization.
type countingObjective struct {
	calls []int
	f     func(level int) float64
}

func (c *countingObjective) objective() Objective {
	return func(_ context.Context, level int) (float64, error) {
		c.calls = append(c.calls, level)
		return c.f(level), nil
	}
}

func TestNew_Validation(t *testing.T) {
	obj := func(_ context.Context, level int) (float64, error) { return 0, nil }

	if _, err := New(Config{LowerBound: 5, UpperBound: 5, Trials: 7}, obj); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("equal bounds: want ErrInvalidInterval, got %v", err)
	}
	if _, err := New(Config{LowerBound: 10, UpperBound: 2, Trials: 7}, obj); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("inverted bounds: want ErrInvalidInterval, got %v", err)
	}
	if _, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 1}, obj); !errors.Is(err, ErrBudgetTooSmall) {
		t.Errorf("budget 1: want ErrBudgetTooSmall, got %v", err)
	}
	if _, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 2}, obj); err != nil {
		t.Errorf("budget 2: want success, got %v", err)
	}
}

func TestRun_ConvergesOnParabola(t *testing.T) {
	co := &countingObjective{f: func(level int) float64 {
		d := float64(level - 17)
		return -d * d
	}}
	eng, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 7}, co.objective())
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if res.BestLevel != 17 {
		t.Errorf("best level = %d, want 17", res.BestLevel)
	}
	if res.BestScore != 0 {
		t.Errorf("best score = %g, want 0", res.BestScore)
	}

	// First two calls probe distinct interior points.
	if len(co.calls) < 2 || co.calls[0] == co.calls[1] {
		t.Fatalf("first two probes should be distinct, got %v", co.calls)
	}
	// Every level is evaluated at most once, so a 7-trial budget can finish
	// in fewer real calls when the bracket revisits a level.
	seen := map[int]int{}
	for _, l := range co.calls {
		seen[l]++
		if seen[l] > 1 {
			t.Errorf("level %d evaluated %d times", l, seen[l])
		}
	}
	if len(co.calls) > 7 {
		t.Errorf("made %d objective calls, budget is 7", len(co.calls))
	}
}

func TestRun_ExactSequenceOnRecordedTable(t *testing.T) {
	table := map[int]float64{3: 0.5, 7: 0.6, 11: 0.9, 18: 0.8, 22: 0.55, 26: 0.4}
	co := &countingObjective{f: func(level int) float64 {
		if s, ok := table[level]; ok {
			return s
		}
		return 0.1
	}}
	eng, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 7}, co.objective())
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	wantCalls := []int{12, 18, 23, 16, 20, 17}
	if len(co.calls) != len(wantCalls) {
		t.Fatalf("calls = %v, want %v", co.calls, wantCalls)
	}
	for i := range wantCalls {
		if co.calls[i] != wantCalls[i] {
			t.Fatalf("calls = %v, want %v", co.calls, wantCalls)
		}
	}

	// The peak at 11 is never bracketed; the search settles on 18.
	if res.BestLevel != 18 {
		t.Errorf("best level = %d, want 18", res.BestLevel)
	}
	if res.BestScore != 0.8 {
		t.Errorf("best score = %g, want 0.8", res.BestScore)
	}
	if len(res.Evaluations) != 6 {
		t.Errorf("recorded %d evaluations, want 6", len(res.Evaluations))
	}
}

func TestRun_TieBreaksTowardSmallerLevel(t *testing.T) {
	co := &countingObjective{f: func(level int) float64 { return 0.5 }}
	eng, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 7}, co.objective())
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	smallest := co.calls[0]
	for _, l := range co.calls {
		if l < smallest {
			smallest = l
		}
	}
	if res.BestLevel != smallest {
		t.Errorf("flat objective: best level = %d, want smallest evaluated %d", res.BestLevel, smallest)
	}
}

func TestRun_ObjectiveErrorAborts(t *testing.T) {
	boom := errors.New("trainer unreachable")
	calls := 0
	eng, err := New(Config{LowerBound: 1, UpperBound: 30, Trials: 7},
		func(_ context.Context, level int) (float64, error) {
			calls++
			if calls == 3 {
				return 0, boom
			}
			return float64(level), nil
		})
	if err != nil {
		t.Fatal(err)
	}
	_, err = eng.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped objective error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("objective called %d times after failure, want 3", calls)
	}
}

func TestBracket_Next(t *testing.T) {
	br := NewBracket(1, 30)
	if br.C != 12 || br.D != 18 {
		t.Fatalf("initial probes = (%d, %d), want (12, 18)", br.C, br.D)
	}

	// Left probe wins: the interval shrinks from the right.
	br.YC, br.YD = 1.0, 0.5
	next, fresh, freshIsC := br.Next()
	if !freshIsC {
		t.Error("left-probe win should introduce a fresh C")
	}
	if next.Hi != 18 {
		t.Errorf("Hi = %g, want 18", next.Hi)
	}
	if next.D != 12 || next.YD != 1.0 {
		t.Errorf("old C should become D: D=%d YD=%g", next.D, next.YD)
	}
	if fresh != next.C {
		t.Errorf("fresh level %d should be next.C %d", fresh, next.C)
	}

	// The receiver is untouched.
	if br.Hi != 30 || br.C != 12 || br.D != 18 {
		t.Errorf("Next mutated its receiver: %+v", br)
	}

	// Right probe wins: the interval shrinks from the left.
	br.YC, br.YD = 0.5, 1.0
	next, fresh, freshIsC = br.Next()
	if freshIsC {
		t.Error("right-probe win should introduce a fresh D")
	}
	if next.Lo != 12 {
		t.Errorf("Lo = %g, want 12", next.Lo)
	}
	if next.C != 18 || next.YC != 1.0 {
		t.Errorf("old D should become C: C=%d YC=%g", next.C, next.YC)
	}
	if fresh != next.D {
		t.Errorf("fresh level %d should be next.D %d", fresh, next.D)
	}
}

func TestRun_NarrowInterval(t *testing.T) {
	// Two adjacent levels: both interior probes truncate to the lower bound,
	// so the whole run collapses to a single real evaluation and the rest of
	// the budget is absorbed by the memo table.
	co := &countingObjective{f: func(level int) float64 { return float64(level) }}
	eng, err := New(Config{LowerBound: 4, UpperBound: 5, Trials: 5}, co.objective())
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.BestLevel != 4 {
		t.Errorf("best level = %d, want 4", res.BestLevel)
	}
	if len(co.calls) != 1 || co.calls[0] != 4 {
		t.Errorf("calls = %v, want [4]", co.calls)
	}
}

func ExampleEngine_Run() {
	eng, _ := New(Config{LowerBound: 1, UpperBound: 30, Trials: 7},
		func(_ context.Context, level int) (float64, error) {
			d := float64(level - 17)
			return -d * d, nil
		})
	res, _ := eng.Run(context.Background())
	fmt.Println(res.BestLevel)
	// Output: 17
}
