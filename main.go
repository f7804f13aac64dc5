package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("invalid configuration: %+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Initialize game
	sim, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}
	displayGameInfo(config, sim)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(config.TickInterval())
	defer ticker.Stop()

	var (
		totalGenerations = 0
		stagnantCount    = 0
		lastFrameTime    = time.Now()
	)

	for {
		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(sim, renderer, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(livingCells, density, status, sim, stats, totalGenerations)
		render(renderer)

		// Check for max generations limit
		if config.MaxGenerations > 0 && totalGenerations >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, sim.Generation(), config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			if err = restartGame(sim, renderer); err != nil {
				log.Fatalf("failed to restart: %+v", err)
			}
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			sim.InjectRandomLife(config.InjectionCount)
		}

		// Calculate next generation
		sim.Step()
		totalGenerations++

		// Wait before next frame
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				totalGenerations, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case <-ticker.C:
		}
	}
}
