package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Simulation,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	sim, err := model.NewSimulation(config, pool)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create simulation")
	}
	if err = sim.Restart(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed board")
	}

	renderer := model.NewTerminalRenderer()
	stats := utils.NewStats()

	return sim, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, sim *model.Simulation) {
	fmt.Printf("Engine: %s | Memory Pool: %v | Tick: %v\n",
		config.Engine, config.UseMemoryPool, config.TickInterval())
	fmt.Printf("Board: %dx%d | Initial living cells: %d\n",
		sim.Size().W, sim.Size().H, sim.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	sim *model.Simulation,
	renderer *model.TerminalRenderer,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	births, deaths := renderer.Sync(sim.Engine())
	stats.RecordChanges(births, deaths)

	livingCells := renderer.Frame().CountLivingCells()
	density := float64(livingCells) / float64(sim.Size().Cells()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(sim.Generation(), livingCells, frameDuration)

	// Check for stagnation before recording the current state
	isStagnant := sim.IsStagnant()
	sim.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", sim.Generation())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	livingCells int,
	density float64,
	status string,
	sim *model.Simulation,
	stats *utils.Stats,
	totalGenerations int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		sim.Generation(), livingCells, density, status)
	fmt.Printf("Births: %d | Deaths: %d\n", stats.Births, stats.Deaths)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if totalGenerations > sim.Generation() {
		fmt.Printf("Total generations: %d\n", totalGenerations)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board with fresh patterns
func restartGame(sim *model.Simulation, renderer *model.TerminalRenderer) error {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	if err := sim.Restart(); err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed board")
	}
	renderer.Reset()

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", sim.Population())
	time.Sleep(2 * time.Second)

	return nil
}

// render draws the renderer's frame to stdout
func render(renderer *model.TerminalRenderer) {
	if err := renderer.Display(os.Stdout); err != nil {
		fmt.Println("Error rendering board:", err)
	}
}
