package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/lifegrid/utils"
)

const defaultConfigFile = "config.json"

func main() {
	var (
		configFile  = flag.String("config", defaultConfigFile, "path to the JSON configuration file")
		patternFile = flag.String("pattern", "", "seed the grid from a text notation file")
		screen      = flag.Bool("screen", false, "draw with a full-screen terminal UI")
		generations = flag.Int("generations", -1, "stop after this many generations, 0 for no limit")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if *patternFile != "" {
		config.PatternFile = *patternFile
	}
	if *screen {
		config.Screen = true
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatalf("initializing game: %+v", err)
	}
	if !config.Screen {
		displayGameInfo(config, g)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	run(g, config, sigChan)
	g.renderer.Close()

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d births, %d deaths\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Births, g.stats.Deaths)
}

// run drives the animation loop until a signal arrives, the renderer quits or the
// generation limit is reached
func run(g *game, config utils.Config, sigChan <-chan os.Signal) {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			return
		case <-g.renderer.Done():
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(g, generation, lastFrameTime)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		g.renderer.Draw(g.grid,
			statusLines(generation, livingCells, density, status, g, lastRestartGen))

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			return
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			if err := restartGame(g, config, restartReason, generation); err != nil {
				log.Printf("restart failed: %+v", err)
				return
			}
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			g.grid = injectLife(g.grid, g.rng, config.InjectionCount)
		}

		advance(g)
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
