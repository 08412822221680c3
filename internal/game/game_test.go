package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/stancewalk/internal/entity"
	"github.com/samdwyer/stancewalk/internal/telemetry"
	"github.com/samdwyer/stancewalk/internal/ui"
)

// Button cells in the default layout (see ui.Renderer).
const (
	restX, stanceRowY  = 2, 1
	toggleX            = 9
	leftX, upX, moveRY = 2, 9, 4
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)

	g, err := NewWithScreen(screen, Config{Viewport: 3, Tracer: telemetry.NoopTracer()})
	require.NoError(t, err)
	return g, sim
}

func click(sim tcell.SimulationScreen, x, y int) {
	sim.InjectMouse(x, y, tcell.Button1, tcell.ModNone)
	sim.InjectMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func runKeys(sim tcell.SimulationScreen, keys string) {
	for _, r := range keys {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

func TestRunDispatchesKeys(t *testing.T) {
	g, sim := newTestGame(t)

	runKeys(sim, "xxx")
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, entity.Character{Actions: 3, Stance: entity.StanceRest}, g.Controller().Snapshot())
}

func TestRunArrowKeysMove(t *testing.T) {
	g, sim := newTestGame(t)

	runKeys(sim, "xxx")
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)    // stand up
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone) // spend 1
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t,
		entity.Character{Actions: 2, Stance: entity.StanceMove, Position: entity.Position{Y: 1}},
		g.Controller().Snapshot())
}

func TestRunIgnoresUnboundKeys(t *testing.T) {
	g, sim := newTestGame(t)

	runKeys(sim, "kW1")
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, entity.NewCharacter(), g.Controller().Snapshot())
}

func TestRunMouseButtons(t *testing.T) {
	g, sim := newTestGame(t)

	click(sim, restX, stanceRowY) // Stand -> Crouch
	click(sim, restX, stanceRowY) // Crouch -> Rest, +1
	click(sim, leftX, moveRY)     // Rest -> Stand
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, entity.Character{Actions: 1, Stance: entity.StanceStand}, g.Controller().Snapshot())
}

func TestRunMovePanelDisabledWithoutActions(t *testing.T) {
	g, sim := newTestGame(t)

	click(sim, toggleX, stanceRowY) // Stand -> Crouch
	click(sim, upX, moveRY)         // disabled: no stand-up
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, entity.Character{Stance: entity.StanceCrouch}, g.Controller().Snapshot())
}

func TestRunHeldMouseCountsOnce(t *testing.T) {
	g, sim := newTestGame(t)

	sim.InjectMouse(restX, stanceRowY, tcell.Button1, tcell.ModNone)
	sim.InjectMouse(restX+1, stanceRowY, tcell.Button1, tcell.ModNone) // drag
	sim.InjectMouse(restX+1, stanceRowY, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run(context.Background()))
	assert.Equal(t, entity.Character{Stance: entity.StanceCrouch}, g.Controller().Snapshot())
}

func TestPressUnknownButtonIsIgnored(t *testing.T) {
	g, _ := newTestGame(t)

	g.press(context.Background(), "jump")
	assert.Equal(t, entity.NewCharacter(), g.Controller().Snapshot())
}

func TestRunStopsWhenContextEnds(t *testing.T) {
	g, _ := newTestGame(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, g.Run(ctx))
	assert.Equal(t, entity.NewCharacter(), g.Controller().Snapshot())
}

// finiRecorder notes whether the screen was finalized.
type finiRecorder struct {
	tcell.SimulationScreen
	finalized bool
}

func (f *finiRecorder) Fini() {
	f.finalized = true
	f.SimulationScreen.Fini()
}

func TestOpenClosesScreenOnError(t *testing.T) {
	rec := &finiRecorder{SimulationScreen: tcell.NewSimulationScreen("")}
	newScreen := func() (*ui.Screen, error) {
		return ui.NewScreenFrom(rec)
	}

	g, err := open(newScreen, Config{Viewport: -1, Tracer: telemetry.NoopTracer()})
	require.Error(t, err)
	assert.Nil(t, g)
	assert.True(t, rec.finalized, "screen must be restored when the game cannot be built")
}

func TestOpenKeepsScreenOnSuccess(t *testing.T) {
	rec := &finiRecorder{SimulationScreen: tcell.NewSimulationScreen("")}
	newScreen := func() (*ui.Screen, error) {
		return ui.NewScreenFrom(rec)
	}

	g, err := open(newScreen, Config{Viewport: 2, Tracer: telemetry.NoopTracer()})
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.False(t, rec.finalized)

	rec.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, g.Run(context.Background()))
	assert.True(t, rec.finalized)
}
