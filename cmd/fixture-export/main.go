// Command fixture-export turns a recorded search run from the history
// database into a replay fixture JSON, so the run can be re-verified
// anywhere without the database.
package main

// #region imports
import (
	"encoding/json"
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
	dbPath := flag.String("db", "", "path to augtune_history.db")
	runID := flag.String("run", "", "run ID to export (default: latest run)")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *dbPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --out path/to/fixture.json [--run id]")
		os.Exit(2)
	}

	if err := run(*dbPath, *runID, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, runID, outPath string) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	var rec history.RunRecord
	if runID != "" {
		rec, err = store.GetRun(runID)
	} else {
		rec, err = store.LatestRun()
	}
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}
	if !rec.Finished {
		return fmt.Errorf("run %s never finished; refusing to export", rec.RunID)
	}

	evals, err := store.RunEvaluations(rec.RunID)
	if err != nil {
		return fmt.Errorf("load evaluations: %w", err)
	}
	if len(evals) == 0 {
		return fmt.Errorf("run %s recorded no evaluations", rec.RunID)
	}

	f := replay.Fixture{
		Description: fmt.Sprintf("exported from run %s", rec.RunID),
		LowerBound:  rec.LowerBound,
		UpperBound:  rec.UpperBound,
		Trials:      rec.Trials,
		Scores:      make(map[string]float64, len(evals)),
	}
	for _, ev := range evals {
		f.Scores[strconv.Itoa(ev.Level)] = ev.Accuracy
		f.ExpectedEvaluations = append(f.ExpectedEvaluations,
			replay.FixtureEvaluation{Level: ev.Level, Score: ev.Accuracy})
	}
	f.ExpectedBestLevel = rec.BestLevel
	f.ExpectedBestScore = rec.BestAccuracy

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("exported %d evaluations from run %s to %s\n", len(evals), rec.RunID, outPath)
	return nil
}

// #endregion export
