package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Game drives a Simulation from terminal input.
type Game struct {
	sim      *Simulation
	screen   *ui.Screen
	renderer *ui.Renderer
	state    RunState
	running  bool
}

// New creates a simulation from cfg and attaches it to the terminal.
func New(ctx context.Context, cfg Config, actors *gamedata.ActorsFile) (*Game, error) {
	sim, err := NewSimulation(ctx, cfg, actors)
	if err != nil {
		return nil, err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s, sim)
}

// NewWithScreen attaches sim to an existing tcell screen.
func NewWithScreen(s tcell.Screen, sim *Simulation) (*Game, error) {
	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Game{
		sim:      sim,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    RunStateRunning,
		running:  true,
	}, nil
}

// Simulation returns the driven simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.state
}

// Run executes the main loop until the player quits. The first pass ticks
// once so the opening frame already shows the player's field of view.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.state == RunStateRunning {
			g.sim.Step(ctx)
			g.state = RunStatePaused
		}

		g.renderer.Render(g.sim.Map, g.sim.World, g.status())

		g.handleInput()
	}
	return nil
}

func (g *Game) status() string {
	pos := g.sim.PlayerPos
	return fmt.Sprintf("Turn %d  (%d,%d)  arrows/hjklyubn move, q quits", g.sim.Turn, pos.X, pos.Y)
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleCommand(CommandForKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

func (g *Game) handleCommand(cmd Command) {
	switch cmd.Action {
	case ActionQuit:
		g.running = false
	case ActionMove:
		// A blocked move does not spend a turn.
		if g.sim.TryMovePlayer(cmd.DX, cmd.DY) {
			g.state = RunStateRunning
			return
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"dx":        cmd.DX,
			"dy":        cmd.DY,
		}).Debug("Move blocked.")
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
