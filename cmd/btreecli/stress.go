package main

import (
	"log/slog"
	"math/rand"
	"sync"

	bplus "cbtree/bplustree"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	stressWorkers int
	stressOps     int
)

// stressCmd launches a fleet of goroutines hammering a shared in-memory tree
// with random insert/find/remove calls, then saves the result. It is not
// meant to preserve specific data, only to exercise the latch-crabbing paths
// concurrently; every run is tagged with a UUID so its log lines can be
// told apart across repeated invocations.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Hammer a fresh in-memory tree with concurrent random operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.New().String()
		log := slog.Default().With("run_id", runID)

		tr, err := bplus.New[int32](order, bplus.WithLogger[int32](log))
		if err != nil {
			return err
		}

		log.Info("stress run starting", "workers", stressWorkers, "ops_per_worker", stressOps)

		var wg sync.WaitGroup
		wg.Add(stressWorkers)
		for w := 0; w < stressWorkers; w++ {
			go func(seed int64) {
				defer wg.Done()
				rng := rand.New(rand.NewSource(seed))
				for i := 0; i < stressOps; i++ {
					key := int32(rng.Intn(10000))
					switch rng.Intn(3) {
					case 0:
						tr.Insert(key, uint64(rng.Int63()))
					case 1:
						tr.Find(key)
					case 2:
						tr.Remove(key)
					}
				}
			}(int64(w) + 1)
		}
		wg.Wait()

		log.Info("stress run complete")
		return save(tr, dbPath)
	},
}

func init() {
	stressCmd.Flags().IntVar(&stressWorkers, "workers", 8, "number of concurrent goroutines")
	stressCmd.Flags().IntVar(&stressOps, "ops", 5000, "operations per worker")
}
