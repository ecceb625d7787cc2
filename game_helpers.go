package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/utils"
)

const panStep = 2

type command int

const (
	cmdQuit command = iota
	cmdReset
	cmdZoomIn
	cmdZoomOut
	cmdPanUp
	cmdPanDown
	cmdPanLeft
	cmdPanRight
	cmdPause
	cmdStep
	cmdResize
)

// game owns the live world and everything that drives it between frames
type game struct {
	config   utils.Config
	logger   *slog.Logger
	original *model.World
	world    *model.World
	history  model.History
	stats    *utils.Stats
	viewport model.Viewport

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastStep       time.Time
	paused         bool
	runID          string
}

// worldPath resolves a pattern name to its configuration file
func worldPath(config utils.Config) string {
	return filepath.Join(config.WorldsDir, config.Pattern+".txt")
}

// loadWorld parses the configured pattern into the initial world
func loadWorld(config utils.Config) (*model.World, error) {
	dead, alive, err := config.Sentinels()
	if err != nil {
		return nil, err
	}
	return model.LoadConfiguration(worldPath(config), dead, alive)
}

// newGame sets up the initial game state around a parsed world
func newGame(config utils.Config, original *model.World, logger *slog.Logger) *game {
	g := &game{
		config:   config,
		logger:   logger,
		original: original,
		world:    original.Clone(),
		stats:    utils.NewStats(),
		viewport: model.NewViewport(config.Width, config.Height, config.CellSize),
		lastStep: time.Now(),
		runID:    uuid.NewString(),
	}
	g.history.Record(g.world)
	g.logger.Info("world loaded",
		"run_id", g.runID,
		"pattern", config.Pattern,
		"population", g.world.Population(),
		"frontier", g.world.FrontierSize(),
	)
	return g
}

// advance steps the world one generation and applies the restart policy.
// It reports whether the generation limit has been reached.
func (g *game) advance() bool {
	stepStart := time.Now()
	g.world.Step()
	g.generation++

	population := g.world.Population()
	g.stats.Update(g.generation, population, g.world.FrontierSize(), stepStart.Sub(g.lastStep))
	g.lastStep = stepStart

	if g.history.IsStagnant(g.world) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(g.world)

	g.logger.Debug("generation advanced",
		"run_id", g.runID,
		"generation", g.generation,
		"population", population,
		"frontier", g.world.FrontierSize(),
	)

	if restart, reason := checkRestartConditions(population, g.stagnantCount, g.config); restart && g.config.AutoRestart {
		g.reset(reason)
	}

	return g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// reset drops the live world back to the loaded configuration
func (g *game) reset(reason string) {
	g.world = g.original.Clone()
	g.history.Reset()
	g.history.Record(g.world)
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.runID = uuid.NewString()
	g.logger.Info("world reset",
		"run_id", g.runID,
		"reason", reason,
		"generation", g.generation,
	)
}

// apply executes a user command and reports whether the game should stop
func (g *game) apply(cmd command) bool {
	switch cmd {
	case cmdQuit:
		return true
	case cmdReset:
		g.reset("requested")
	case cmdZoomIn:
		g.viewport.ZoomIn()
	case cmdZoomOut:
		g.viewport.ZoomOut()
	case cmdPanUp:
		g.viewport.Pan(panStep, 0)
	case cmdPanDown:
		g.viewport.Pan(-panStep, 0)
	case cmdPanLeft:
		g.viewport.Pan(0, panStep)
	case cmdPanRight:
		g.viewport.Pan(0, -panStep)
	case cmdPause:
		g.paused = !g.paused
	case cmdStep:
		if g.paused {
			return g.advance()
		}
	}
	return false
}

// commandForKey maps a key press to a command
func commandForKey(ev *tcell.EventKey) (command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, true
	case tcell.KeyUp:
		return cmdPanUp, true
	case tcell.KeyDown:
		return cmdPanDown, true
	case tcell.KeyLeft:
		return cmdPanLeft, true
	case tcell.KeyRight:
		return cmdPanRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return cmdQuit, true
		case 'r', 'R':
			return cmdReset, true
		case '+', '=':
			return cmdZoomIn, true
		case '-', '_':
			return cmdZoomOut, true
		case ' ':
			return cmdPause, true
		case 'n', 'N':
			return cmdStep, true
		}
	}
	return 0, false
}

// statusLine summarises the current game state
func (g *game) statusLine() string {
	status := "Active"
	switch {
	case g.paused:
		status = "Paused"
	case g.world.Population() == 0:
		status = "Extinct"
	case g.stagnantCount > 0:
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	return fmt.Sprintf("%s | Gen: %d (+%d since reset) | Living: %d | Frontier: %d | %.1f gen/sec | Zoom: %d | %s",
		g.config.Pattern,
		g.generation,
		g.generation-g.lastRestartGen,
		g.world.Population(),
		g.world.FrontierSize(),
		g.stats.GenerationsPerSecond,
		g.viewport.CellSize,
		status,
	)
}

// logSummary records the final stats of a run
func (g *game) logSummary() {
	g.logger.Info("game stopped",
		"run_id", g.runID,
		"generations", g.generation,
		"runtime", g.stats.Runtime(),
		"gen_per_sec", g.stats.GenerationsPerSecond,
		"avg_population", g.stats.AveragePopulation,
	)
}
