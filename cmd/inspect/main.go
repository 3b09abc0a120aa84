// Command inspect dumps search runs and their evaluations from the history
// database, as a table or as JSON.
package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/augtune-dev/augtune/internal/history"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to augtune_history.db")
	runID := flag.String("run", "", "show one run's evaluations (default: latest run)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/augtune_history.db [--run id] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *runID, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(store *history.Store, runID string, jsonOut bool) error {
	var rec history.RunRecord
	var err error
	if runID != "" {
		rec, err = store.GetRun(runID)
	} else {
		rec, err = store.LatestRun()
	}
	if err != nil {
		return err
	}
	evals, err := store.RunEvaluations(rec.RunID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(rec, evals)
	}
	printTable(rec, evals)
	return nil
}

// #endregion main

// #region output

type runJSON struct {
	Run         history.RunRecord          `json:"run"`
	Evaluations []history.EvaluationRecord `json:"evaluations"`
}

func printJSON(rec history.RunRecord, evals []history.EvaluationRecord) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runJSON{Run: rec, Evaluations: evals})
}

func printTable(rec history.RunRecord, evals []history.EvaluationRecord) {
	fmt.Printf("run %s\n", rec.RunID)
	fmt.Printf("  interval [%d, %d], %d trials, %d epochs per evaluation\n",
		rec.LowerBound, rec.UpperBound, rec.Trials, rec.Epochs)
	fmt.Printf("  started  %s\n", rec.StartedAt.Format(time.RFC3339))
	if rec.Finished {
		fmt.Printf("  finished %s, best level %d @ %g\n",
			rec.FinishedAt.Format(time.RFC3339), rec.BestLevel, rec.BestAccuracy)
	} else {
		fmt.Println("  finished -")
	}

	fmt.Printf("\n%-6s| %-7s| %-10s| %-11s| %s\n", "Step", "Level", "Accuracy", "Best Epoch", "Checkpoint")
	fmt.Printf("%-6s+%-8s+%-11s+%-12s+%s\n", "------", "--------", "-----------", "------------", "----------")
	for i, ev := range evals {
		fmt.Printf("%-6d| %-7d| %-10g| %-11d| %s\n", i+1, ev.Level, ev.Accuracy, ev.BestEpoch, ev.CheckpointPath)
	}
}

// #endregion output
