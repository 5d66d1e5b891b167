package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifegrid/model"
	"github.com/sheikhrachel/lifegrid/utils"
)

// periodicRefresh restarts long-running games every this many generations.
const periodicRefresh = 200

// game bundles the state owned by the animation loop
type game struct {
	grid     *model.Grid
	engine   model.Engine
	renderer renderer
	stats    *utils.Stats
	history  *utils.History
	rng      model.RandSource
	// event is the most recent restart notice, shown in the status lines.
	event string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	engine, err := model.NewEngine(config.Strategy, config.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to select engine")
	}

	rng := utils.NewRNG(config.Seed)
	grid, err := seedGrid(config, rng)
	if err != nil {
		return nil, err
	}

	var r renderer
	if config.Screen {
		if r, err = newScreenRenderer(); err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to open screen")
		}
	} else {
		r = newTextRenderer(os.Stdout)
	}

	return &game{
		grid:     grid,
		engine:   engine,
		renderer: r,
		stats:    utils.NewStats(),
		history:  &utils.History{},
		rng:      rng,
	}, nil
}

// seedGrid builds the first generation from the pattern file when one is configured,
// otherwise from random noise
func seedGrid(config utils.Config, rng model.RandSource) (*model.Grid, error) {
	if config.PatternFile != "" {
		return loadPattern(config.PatternFile)
	}
	return seedRandom(config, rng)
}

// loadPattern reads a grid in text notation from filename
func loadPattern(filename string) (*model.Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] failed to read file: %+v", filename)
	}
	grid, err := model.ParseString(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadPattern] failed to parse file: %+v", filename)
	}
	return grid, nil
}

// seedRandom fills a grid with random life, optionally stamping some well known patterns on top
func seedRandom(config utils.Config, rng model.RandSource) (*model.Grid, error) {
	grid, err := model.Random(config.Width, config.Height, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[seedRandom] failed to build grid")
	}
	if !config.UsePatterns {
		return grid, nil
	}
	return addInterestingPatterns(grid)
}

// addInterestingPatterns stamps gliders and blinkers onto grids large enough to hold them
func addInterestingPatterns(grid *model.Grid) (*model.Grid, error) {
	glider, err := model.Pattern("glider")
	if err != nil {
		return nil, err
	}
	blinker, err := model.Pattern("blinker")
	if err != nil {
		return nil, err
	}

	width, height := grid.GetWidth(), grid.GetHeight()
	if width < 10 || height < 10 {
		return grid, nil
	}

	// Add some gliders
	grid = model.Stamp(grid, glider, model.At(5, 5))
	if width >= 20 && height >= 15 {
		grid = model.Stamp(grid, glider, model.At(5, width-8))
	}

	// Add oscillators
	grid = model.Stamp(grid, blinker, model.At(height/4, width/4))
	if width >= 30 {
		grid = model.Stamp(grid, blinker, model.At(3*height/4, 3*width/4))
	}
	return grid, nil
}

// injectLife returns a copy of grid with count random cells switched on
func injectLife(grid *model.Grid, rng model.RandSource, count int) *model.Grid {
	dot, err := model.FromStates([][]model.CellState{{model.Alive}})
	if err != nil {
		return grid
	}
	for range count {
		at := model.At(rng.IntN(grid.GetHeight()), rng.IntN(grid.GetWidth()))
		grid = model.Stamp(grid, dot, at)
	}
	return grid
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	strategy := config.Strategy
	if strategy == "" {
		strategy = model.StrategySnapshot
	}
	fmt.Printf("Strategy: %s | Workers: %d | Patterns: %v\n", strategy, config.Workers, config.UsePatterns)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		g.grid.GetWidth(), g.grid.GetHeight(), g.grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	g *game,
	generation int,
	lastFrameTime time.Time,
) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.Len()) * 100

	// Update performance stats
	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// Check for stagnation against earlier generations, then record this one
	hash := g.grid.GetGridHash()
	isStagnant := g.history.IsStagnant(hash)
	g.history.Push(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// statusLines formats the current game status
func statusLines(
	generation, livingCells int,
	density float64,
	status string,
	g *game,
	lastRestartGen int,
) []string {
	lines := []string{
		fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells",
			generation, livingCells, density, status, g.grid.GetBoundingBoxSize()),
		fmt.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Births: %d | Deaths: %d | Runtime: %.1fs",
			g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Births, g.stats.Deaths,
			g.stats.Runtime().Seconds()),
	}

	// Show time since last restart
	if generation > lastRestartGen {
		lines = append(lines, fmt.Sprintf("Generations since restart: %d", generation-lastRestartGen))
	}
	if g.event != "" {
		lines = append(lines, g.event)
	}
	return lines
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the grid with random life and forgets the stagnation history
func restartGame(g *game, config utils.Config, reason string, generation int) error {
	grid, err := seedRandom(config, g.rng)
	if err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed")
	}
	g.grid = grid
	g.history.Reset()
	g.event = fmt.Sprintf("Restarted at generation %d due to %s (living cells: %d)",
		generation, reason, grid.CountLivingCells())
	return nil
}

// advance moves the game one generation forward and records births and deaths
func advance(g *game) {
	next := g.engine.Advance(g.grid)
	births, deaths := model.CompareGenerations(g.grid, next)
	g.stats.RecordTransition(births, deaths)
	g.grid = next
}
