package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Columns = 12
	config.Rows = 8
	config.Seed = 5
	config.FrameRate = time.Millisecond
	return config
}

func TestInitializeGame(t *testing.T) {
	d, err := initializeGame(testConfig())
	require.NoError(t, err)
	require.True(t, d.grid.Populated())
	require.Equal(t, 12, d.grid.Columns())
	require.Equal(t, 8, d.grid.Rows())
	require.Equal(t, 10, d.grid.CellSize())
}

func TestTickStopsAtMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3
	d, err := initializeGame(config)
	require.NoError(t, err)

	for range 3 {
		more, err := d.tick()
		require.NoError(t, err)
		require.True(t, more)
	}
	more, err := d.tick()
	require.NoError(t, err)
	require.False(t, more)
	require.Equal(t, 3, d.generation)
	require.Equal(t, 3, d.stats.TotalGenerations)
}

func TestTickRestartsExtinctGrid(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true
	d, err := initializeGame(config)
	require.NoError(t, err)
	d.grid.Clear()

	more, err := d.tick()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, "extinction", d.event)
	require.Positive(t, d.grid.CountLivingCells())
	require.Equal(t, "Restarted (extinction)", d.status().State)
	require.Equal(t, 1, d.stats.Restarts)
}

func TestStatusReportsExtinction(t *testing.T) {
	d, err := initializeGame(testConfig())
	require.NoError(t, err)
	d.grid.Clear()

	_, err = d.tick()
	require.NoError(t, err)
	status := d.status()
	require.Equal(t, "Extinct", status.State)
	require.Zero(t, status.Living)
	require.Zero(t, status.Density)
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()

	restart, reason := checkRestartConditions(0, 0, config)
	require.True(t, restart)
	require.Equal(t, "extinction", reason)

	restart, reason = checkRestartConditions(10, config.StagnationThreshold, config)
	require.True(t, restart)
	require.Equal(t, "stagnation detected", reason)

	restart, _ = checkRestartConditions(10, config.StagnationThreshold-1, config)
	require.False(t, restart)
}

func TestRunTerminalLoopStopsAtMaxGenerations(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	config := testConfig()
	config.MaxGenerations = 4
	d, err := initializeGame(config)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runTerminalLoop(ctx, d, screen))
	require.Equal(t, 4, d.generation)
}

func TestRunTerminalLoopQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	config := testConfig()
	config.FrameRate = time.Hour
	d, err := initializeGame(config)
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, runTerminalLoop(ctx, d, screen))
	require.Zero(t, d.generation)
	require.NoError(t, ctx.Err())
}

func TestRunTerminalLoopStopsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	config := testConfig()
	config.FrameRate = time.Hour
	d, err := initializeGame(config)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, runTerminalLoop(ctx, d, screen))
}
