// Command replay re-runs a recorded level search deterministically and
// compares the evaluation sequence and outcome against the record. Two
// sources: a JSON fixture, or a run in the history database.
package main

// #region imports
import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/augtune-dev/augtune/internal/history"
	"github.com/augtune-dev/augtune/internal/replay"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to augtune_history.db (DB mode)")
	runID := flag.String("run", "", "run ID to replay (DB mode; default: latest run)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/augtune_history.db [--run RUN_ID]")
		fmt.Fprintln(os.Stderr, "       replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		exitCode = runDBMode(*dbPath, *runID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}
	res, err := replay.ReplayFixture(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	expected := make([]replay.FixtureEvaluation, len(f.ExpectedEvaluations))
	copy(expected, f.ExpectedEvaluations)
	return printComparison(expected, f.ExpectedBestLevel, f.ExpectedBestScore, res)
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, runID string) int {
	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	var run history.RunRecord
	if runID != "" {
		run, err = store.GetRun(runID)
	} else {
		run, err = store.LatestRun()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load run: %v\n", err)
		return 2
	}
	if !run.Finished {
		fmt.Fprintf(os.Stderr, "run %s never finished; nothing to replay against\n", run.RunID)
		return 2
	}

	evals, err := store.RunEvaluations(run.RunID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load evaluations: %v\n", err)
		return 2
	}
	if len(evals) == 0 {
		fmt.Fprintf(os.Stderr, "run %s recorded no evaluations\n", run.RunID)
		return 2
	}

	scores := make(map[int]float64, len(evals))
	expected := make([]replay.FixtureEvaluation, len(evals))
	for i, ev := range evals {
		scores[ev.Level] = ev.Accuracy
		expected[i] = replay.FixtureEvaluation{Level: ev.Level, Score: ev.Accuracy}
	}

	res, err := replay.Replay(run.LowerBound, run.UpperBound, run.Trials, func(level int) float64 {
		return scores[level]
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}
	return printComparison(expected, run.BestLevel, run.BestAccuracy, res)
}

// #endregion db-mode

// #region output

// printComparison outputs a comparison table and returns the exit code:
// 0 when the replay matches the record, 1 when it diverges.
func printComparison(expected []replay.FixtureEvaluation, bestLevel int, bestScore float64, res replay.Result) int {
	fmt.Printf("%-8s| %-18s| %-18s| %s\n", "Step", "Recorded", "Replayed", "Match")
	fmt.Printf("%-8s+%-19s+%-19s+%s\n", "--------", "-------------------", "-------------------", "------")

	n := len(expected)
	if len(res.Evaluations) > n {
		n = len(res.Evaluations)
	}
	matches := 0
	for i := 0; i < n; i++ {
		want, got := "-", "-"
		if i < len(expected) {
			want = fmt.Sprintf("level %d @ %g", expected[i].Level, expected[i].Score)
		}
		if i < len(res.Evaluations) {
			got = fmt.Sprintf("level %d @ %g", res.Evaluations[i].Level, res.Evaluations[i].Score)
		}
		match := want == got
		if match {
			matches++
		}
		fmt.Printf("%-8s| %-18s| %-18s| %v\n", strconv.Itoa(i+1), want, got, match)
	}

	want := fmt.Sprintf("level %d @ %g", bestLevel, bestScore)
	got := fmt.Sprintf("level %d @ %g", res.BestLevel, res.BestScore)
	bestMatch := want == got
	fmt.Printf("%-8s| %-18s| %-18s| %v\n", "best", want, got, bestMatch)

	if matches == n && bestMatch && len(expected) == len(res.Evaluations) {
		fmt.Printf("\n%d/%d steps match; replay is faithful\n", matches, n)
		return 0
	}
	fmt.Printf("\n%d/%d steps match; replay diverged\n", matches, n)
	return 1
}

// #endregion output
