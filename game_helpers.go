package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// driver owns a grid through its lifecycle: construct, randomize, then one
// tick per frame
type driver struct {
	config utils.Config
	grid   *model.Grid
	rng    *rand.Rand
	stats  *utils.Stats

	generation    int
	stagnantCount int
	lastFrameTime time.Time
	event         string
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*driver, error) {
	columns, rows := config.GridSize()
	grid, err := model.NewGrid(columns, rows, config.Resolution)
	if err != nil {
		return nil, err
	}

	rng := utils.NewRNG(config.Seed)
	grid.Randomize(rng)

	return &driver{
		config:        config,
		grid:          grid,
		rng:           rng,
		stats:         utils.NewStats(),
		lastFrameTime: time.Now(),
	}, nil
}

// tick advances the game by one generation. It reports false once the run
// has reached its generation limit.
func (d *driver) tick() (bool, error) {
	if d.config.MaxGenerations > 0 && d.generation >= d.config.MaxGenerations {
		return false, nil
	}

	next, err := d.grid.Evolve()
	if err != nil {
		return false, err
	}
	d.generation++

	livingCells := next.Living()
	frameStart := time.Now()
	d.stats.Update(d.generation, livingCells, next.Len(), frameStart.Sub(d.lastFrameTime))
	d.lastFrameTime = frameStart

	if d.grid.IsStagnant() {
		d.stagnantCount++
	} else {
		d.stagnantCount = 0
	}
	d.grid.UpdateHistory()

	d.event = ""
	shouldRestart, reason := checkRestartConditions(livingCells, d.stagnantCount, d.config)
	if shouldRestart && d.config.AutoRestart {
		d.restartGame(reason)
	}
	return true, nil
}

// status summarises the current generation for display
func (d *driver) status() model.Status {
	livingCells := d.grid.CountLivingCells()
	state := "Active"
	switch {
	case d.event != "":
		state = fmt.Sprintf("Restarted (%s)", d.event)
	case livingCells == 0:
		state = "Extinct"
	case d.stagnantCount > 0:
		state = fmt.Sprintf("Stagnant (%d)", d.stagnantCount)
	}
	return model.Status{
		Generation: d.generation,
		Living:     livingCells,
		Density:    float64(livingCells) / float64(d.grid.Columns()*d.grid.Rows()) * 100,
		State:      state,
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame re-randomizes the grid in place
func (d *driver) restartGame(reason string) {
	d.grid.Randomize(d.rng)
	d.stagnantCount = 0
	d.event = reason
	d.stats.Restarted()
}
