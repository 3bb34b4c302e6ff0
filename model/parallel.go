package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// StepMany advances each board by the given number of generations and
// returns the results in matching order. The boards are independent
// simulations sharing no state, so they are split across NumCPU
// workers; each individual board still steps synchronously through
// Next.
func StepMany(boards []Board, steps int) []Board {
	out := make([]Board, len(boards))

	var (
		eg              errgroup.Group
		numWorkers      = runtime.NumCPU()
		boardsPerWorker = (len(boards) + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			start = i * boardsPerWorker
			end   = min(start+boardsPerWorker, len(boards))
		)
		if start >= len(boards) {
			break
		}

		eg.Go(func() error {
			for j := start; j < end; j++ {
				b := boards[j]
				for s := 0; s < steps; s++ {
					b = b.Next()
				}
				out[j] = b
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = eg.Wait()

	return out
}
