package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gol/life/model"
	"github.com/go-gol/life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if config.Simulations > 1 {
		if err := runBatch(config); err != nil {
			fmt.Fprintf(os.Stderr, "batch run failed: %+v\n", err)
			os.Exit(1)
		}
		return
	}

	board, err := buildBoard(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build starting board: %+v\n", err)
		os.Exit(1)
	}

	runLoop(config, board)
}

// runLoop renders the board and advances one generation per frame
// until the generation limit, extinction, stagnation, or Ctrl+C.
func runLoop(config utils.Config, board model.Board) {
	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()
	history := &model.History{}

	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for config.Generations <= 0 || generation < config.Generations {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			displayFinalStats(generation, stats)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		population := board.Population()
		stats.Update(generation, population, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if history.Stagnant(board) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		history.Push(board)

		displayGameStatus(generation, population, board, stats, stagnantCount)
		renderer.Display(board)

		if population == 0 {
			fmt.Println("\nExtinct.")
			break
		}
		if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
			fmt.Printf("\nStagnant for %d generations, stopping.\n", stagnantCount)
			break
		}

		board = board.Next()
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}

	displayFinalStats(generation, stats)
}
