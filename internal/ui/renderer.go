package ui

import (
	"encoding/json"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/stancewalk/internal/entity"
	"github.com/samdwyer/stancewalk/internal/gamedata"
)

// Layout rows and columns of the control panels.
const (
	panelX        = 1
	stanceLegendY = 0
	stanceRowY    = 1
	moveLegendY   = 3
	moveRowY      = 4
	helpY         = 6
	snapshotY     = 8
	mapX          = 34
	mapY          = 1
)

// Button is a clickable label drawn on screen.
type Button struct {
	ID      string // One of the gamedata.Button* identifiers
	Label   string
	X, Y    int
	Width   int
	Enabled bool
}

// Contains reports whether the cell (x, y) falls on the button.
func (b Button) Contains(x, y int) bool {
	return y == b.Y && x >= b.X && x < b.X+b.Width
}

// Renderer handles drawing the character panels to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
	radius int
}

// NewRenderer creates a renderer. radius is the number of cells drawn on each
// side of the character in the map view.
func NewRenderer(screen *Screen, theme *gamedata.Theme, radius int) *Renderer {
	return &Renderer{screen: screen, theme: theme, radius: radius}
}

// Render draws the full frame for c and returns the buttons it drew, in
// drawing order.
func (r *Renderer) Render(c entity.Character) []Button {
	r.screen.Clear()

	var buttons []Button

	// Stance panel
	legend := r.theme.Legend("stance", "Stance") + ": " + r.theme.StanceLabel(c.Stance.String())
	r.screen.DrawText(panelX, stanceLegendY, legend, r.style("legend"))

	toggleLabel := r.theme.Button(gamedata.ButtonStand, "Stand")
	if c.Stance == entity.StanceStand {
		toggleLabel = r.theme.Button(gamedata.ButtonCrouch, "Crouch")
	}
	x := panelX
	for _, b := range []Button{
		{ID: gamedata.ButtonRest, Label: r.theme.Button(gamedata.ButtonRest, "Rest"), Enabled: true},
		{ID: gamedata.ButtonCrouch, Label: toggleLabel, Enabled: true},
	} {
		b = r.drawButton(b, x, stanceRowY)
		buttons = append(buttons, b)
		x += b.Width + 1
	}

	// Move panel, disabled while there is nothing to spend
	enabled := c.Actions > 0
	legendStyle := r.style("legend")
	if !enabled {
		legendStyle = r.style("disabled")
	}
	r.screen.DrawText(panelX, moveLegendY, r.theme.Legend("move", "Move"), legendStyle)

	x = panelX
	for _, b := range []Button{
		{ID: gamedata.ButtonLeft, Label: r.theme.Button(gamedata.ButtonLeft, "Left"), Enabled: enabled},
		{ID: gamedata.ButtonUp, Label: r.theme.Button(gamedata.ButtonUp, "Up"), Enabled: enabled},
		{ID: gamedata.ButtonDown, Label: r.theme.Button(gamedata.ButtonDown, "Down"), Enabled: enabled},
		{ID: gamedata.ButtonRight, Label: r.theme.Button(gamedata.ButtonRight, "Right"), Enabled: enabled},
	} {
		b = r.drawButton(b, x, moveRowY)
		buttons = append(buttons, b)
		x += b.Width + 1
	}

	r.screen.DrawText(panelX, helpY, r.theme.Help, r.style("disabled"))

	r.drawSnapshot(c)
	r.drawMap(c)

	r.screen.Show()
	return buttons
}

// drawButton draws b as "[Label]" at (x, y) and returns it with its hit box set.
func (r *Renderer) drawButton(b Button, x, y int) Button {
	style := r.style("button").Bold(true)
	if !b.Enabled {
		style = r.style("disabled")
	}
	end := r.screen.DrawText(x, y, "["+b.Label+"]", style)

	b.X, b.Y, b.Width = x, y, end-x
	return b
}

// drawSnapshot prints the state as indented JSON below the panels.
func (r *Renderer) drawSnapshot(c entity.Character) {
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		// Character has only ints; this cannot happen.
		return
	}
	for i, line := range strings.Split(string(content), "\n") {
		r.screen.DrawText(panelX, snapshotY+i, line, r.style("snapshot"))
	}
}

// drawMap draws the grid around the character. World y grows upward, so
// rows are flipped.
func (r *Renderer) drawMap(c entity.Character) {
	for dy := -r.radius; dy <= r.radius; dy++ {
		for dx := -r.radius; dx <= r.radius; dx++ {
			wx, wy := c.X+dx, c.Y-dy
			sx, sy := mapX+(dx+r.radius)*2, mapY+dy+r.radius

			switch {
			case dx == 0 && dy == 0:
				r.screen.SetContent(sx, sy, '@', r.style("character").Bold(true))
			case wx == 0 && wy == 0:
				r.screen.SetContent(sx, sy, '+', r.style("origin"))
			default:
				r.screen.SetContent(sx, sy, '.', r.style("grid"))
			}
		}
	}
}

func (r *Renderer) style(name string) tcell.Style {
	return tcell.StyleDefault.Foreground(r.theme.Color(name))
}
