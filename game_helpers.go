package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/go-gol/life/model"
	"github.com/go-gol/life/utils"
)

// buildBoard constructs the starting board from the configuration:
// a pattern file, a named preset, or a random board.
func buildBoard(config utils.Config) (model.Board, error) {
	pattern, err := startingPattern(config)
	if err != nil {
		return model.Board{}, err
	}

	// Give the pattern room to evolve when the configured world is
	// larger, centering it inside a dead board.
	if config.Width > pattern.Width() && config.Height > pattern.Height() {
		world, err := model.New(config.Width, config.Height, nil)
		if err != nil {
			return model.Board{}, err
		}
		return world.Add(pattern,
			(config.Width-pattern.Width())/2,
			(config.Height-pattern.Height())/2)
	}

	return pattern, nil
}

func startingPattern(config utils.Config) (model.Board, error) {
	if config.PatternFile != "" {
		data, err := os.ReadFile(config.PatternFile)
		if err != nil {
			return model.Board{}, errors.Wrapf(err,
				"[startingPattern] failed to read pattern file: %+v", config.PatternFile)
		}
		return model.Parse(string(data))
	}

	switch strings.ToLower(config.Pattern) {
	case "blinker":
		return model.Blinker(), nil
	case "gosper":
		return model.Gosper(), nil
	case "":
		return model.Random(config.Width, config.Height, config.RandomDensity)
	default:
		return model.Board{}, errors.Errorf("[startingPattern] unknown pattern: %+v", config.Pattern)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board model.Board) {
	pattern := config.Pattern
	if config.PatternFile != "" {
		pattern = config.PatternFile
	}
	if pattern == "" {
		pattern = "random"
	}

	fmt.Printf("Pattern: %s | Board: %dx%d | Initial living cells: %d\n",
		pattern, board.Width(), board.Height(), board.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, population int, board model.Board, stats *utils.Stats, stagnantCount int) {
	density := float64(population) / float64(board.Width()*board.Height()) * 100

	status := "Active"
	if stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
	}
	if population == 0 {
		status = "Extinct"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

func displayFinalStats(generation int, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		generation, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runBatch steps several independent random boards in parallel and
// reports their final populations.
func runBatch(config utils.Config) error {
	boards := make([]model.Board, config.Simulations)
	for i := range boards {
		b, err := model.Random(config.Width, config.Height, config.RandomDensity)
		if err != nil {
			return err
		}
		boards[i] = b
	}

	fmt.Printf("Stepping %d random %dx%d boards for %d generations...\n",
		config.Simulations, config.Width, config.Height, config.Generations)

	start := time.Now()
	results := model.StepMany(boards, config.Generations)
	elapsed := time.Since(start)

	for i, b := range results {
		fmt.Printf("Simulation %d: %d -> %d living cells\n",
			i, boards[i].Population(), b.Population())
	}
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())

	return nil
}
