// Command search runs the augmentation-level search: golden-section search
// over [a, b] with a fixed budget of full training runs, each scored by its
// best held-out accuracy.
package main

// #region imports
import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/augtune-dev/augtune/internal/history"
	"github.com/augtune-dev/augtune/internal/search"
	"github.com/augtune-dev/augtune/internal/trainer"
)

// #endregion

// #region main

func main() {
	lower := flag.Int("a", 1, "lower bound of the level interval")
	upper := flag.Int("b", 30, "upper bound of the level interval")
	trials := flag.Int("trials", 7, "total evaluation budget")
	epochs := flag.Int("epochs", trainer.DefaultEpochs, "training epochs per evaluation")
	batchSize := flag.Int("batch-size", trainer.DefaultBatchSize, "training batch size")
	addr := flag.String("addr", envOr("TRAINER_ADDR", "localhost:50051"), "trainer service address")
	dbPath := flag.String("db", envOr("AUGTUNE_DB", "augtune_history.db"), "path to the history database")
	saveDir := flag.String("save-dir", "", "checkpoint directory (default: fresh temp dir)")
	flag.Parse()

	if err := run(*lower, *upper, *trials, *epochs, *batchSize, *addr, *dbPath, *saveDir); err != nil {
		log.Fatalf("search failed: %v", err)
	}
}

func run(lower, upper, trials, epochs, batchSize int, addr, dbPath, saveDir string) error {
	if saveDir == "" {
		dir, err := os.MkdirTemp("", "augtune-ckpt-")
		if err != nil {
			return fmt.Errorf("create checkpoint dir: %w", err)
		}
		saveDir = dir
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	client, err := trainer.NewClient(addr)
	if err != nil {
		return fmt.Errorf("connect trainer at %s: %w", addr, err)
	}
	defer client.Close()

	runRec, err := store.CreateRun(lower, upper, trials, epochs)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	log.Printf("[SEARCH] run %s: levels [%d, %d], %d trials, %d epochs each",
		runRec.RunID, lower, upper, trials, epochs)

	objective := client.Objective(trainer.EvaluationRequest{
		Epochs:    epochs,
		BatchSize: batchSize,
		SaveDir:   saveDir,
		RunID:     runRec.RunID,
	}, func(ev trainer.Evaluation) {
		rec := history.EvaluationRecord{
			RunID:          runRec.RunID,
			Level:          ev.Level,
			Accuracy:       ev.BestAccuracy,
			BestEpoch:      ev.BestEpoch,
			CheckpointPath: ev.CheckpointPath,
		}
		if err := store.RecordEvaluation(rec); err != nil {
			log.Printf("[SEARCH] record evaluation: %v", err)
		}
	})

	engine, err := search.New(search.Config{
		LowerBound: lower,
		UpperBound: upper,
		Trials:     trials,
	}, objective)
	if err != nil {
		return err
	}

	res, err := engine.Run(context.Background())
	if err != nil {
		return err
	}
	if err := store.FinishRun(runRec.RunID, res.BestLevel, res.BestScore); err != nil {
		log.Printf("[SEARCH] finish run: %v", err)
	}

	fmt.Printf("best level is %d, best accuracy is %v\n", res.BestLevel, res.BestScore)
	return nil
}

// #endregion main

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
