// Package game drives a single character from terminal input: it owns the
// controller, the input loop and the redraw after every event.
package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/stancewalk/internal/entity"
	"github.com/samdwyer/stancewalk/internal/gamedata"
	"github.com/samdwyer/stancewalk/internal/telemetry"
	"github.com/samdwyer/stancewalk/internal/ui"
)

// Game holds the screen, the character controller and loop state.
type Game struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	controller *Controller
	tracer     trace.Tracer
	buttons    []ui.Button
	mouseDown  bool
	running    bool
}

// New creates a game on the controlling terminal.
func New(cfg Config) (*Game, error) {
	return open(ui.NewScreen, cfg)
}

// open builds a game on the screen newScreen returns, finalizing that screen
// again if the game cannot be built.
func open(newScreen func() (*ui.Screen, error), cfg Config) (*Game, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(screen, cfg)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an already initialized screen.
func NewWithScreen(screen *ui.Screen, cfg Config) (*Game, error) {
	if cfg.Viewport < 0 {
		return nil, fmt.Errorf("viewport %d must not be negative", cfg.Viewport)
	}

	theme := cfg.Theme
	if theme == nil {
		var err error
		theme, err = gamedata.LoadTheme()
		if err != nil {
			return nil, fmt.Errorf("load theme: %w", err)
		}
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		screen:     screen,
		renderer:   ui.NewRenderer(screen, theme, cfg.Viewport),
		controller: NewController(WithTracer(tracer)),
		tracer:     tracer,
		running:    true,
	}, nil
}

// Controller exposes the character controller, mainly for inspection.
func (g *Game) Controller() *Controller {
	return g.controller
}

// Run executes the main loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	start := g.controller.Snapshot()
	initSpan.SetAttributes(
		attribute.Int("character.x", start.X),
		attribute.Int("character.y", start.Y),
		attribute.String("character.stance", start.Stance.String()),
	)
	initSpan.End()

	// Wake the blocking poll when the context ends
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			g.screen.Interrupt()
		case <-done:
		}
	}()

	for g.running && ctx.Err() == nil {
		g.buttons = g.renderer.Render(g.controller.Snapshot())

		// Blocks until the next event
		g.handleInput(ctx)
	}

	close(done)
	<-stopped
	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		g.running = false
	case nil:
		// Screen finalized underneath us
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.controller.Move(ctx, entity.DirUp)
	case tcell.KeyRight:
		g.controller.Move(ctx, entity.DirRight)
	case tcell.KeyDown:
		g.controller.Move(ctx, entity.DirDown)
	case tcell.KeyLeft:
		g.controller.Move(ctx, entity.DirLeft)

	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			g.running = false
			return
		}
		g.controller.Dispatch(ctx, ev.Rune())
	}
}

// handleMouseEvent fires a button on the press edge of the left button so a
// held or dragged click counts once.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := g.mouseDown
	g.mouseDown = pressed
	if !pressed || wasDown {
		return
	}

	x, y := ev.Position()
	for _, b := range g.buttons {
		if b.Contains(x, y) && b.Enabled {
			g.press(ctx, b.ID)
			return
		}
	}
}

// press runs the operation bound to a panel button.
func (g *Game) press(ctx context.Context, id string) {
	switch id {
	case gamedata.ButtonRest:
		g.controller.Rest(ctx)
	case gamedata.ButtonCrouch, gamedata.ButtonStand:
		g.controller.ToggleCrouch(ctx)
	case gamedata.ButtonLeft:
		g.controller.Move(ctx, entity.DirLeft)
	case gamedata.ButtonUp:
		g.controller.Move(ctx, entity.DirUp)
	case gamedata.ButtonDown:
		g.controller.Move(ctx, entity.DirDown)
	case gamedata.ButtonRight:
		g.controller.Move(ctx, entity.DirRight)
	}
}
