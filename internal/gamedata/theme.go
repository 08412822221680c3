package gamedata

import "github.com/gdamore/tcell/v2"

// Button identifiers used as keys in theme.json.
const (
	ButtonRest   = "rest"
	ButtonCrouch = "crouch"
	ButtonStand  = "stand"
	ButtonLeft   = "left"
	ButtonUp     = "up"
	ButtonDown   = "down"
	ButtonRight  = "right"
)

// Theme holds the labels and colors the renderer draws with.
type Theme struct {
	Legends map[string]string `json:"legends"` // Panel legends ("stance", "move")
	Stances map[string]string `json:"stances"` // Keyed by stance name
	Buttons map[string]string `json:"buttons"` // Keyed by Button* identifiers
	Help    string            `json:"help"`    // One-line key reference
	Colors  map[string]string `json:"colors"`  // Hex colors by element name
}

// LoadTheme loads the embedded theme.json.
func LoadTheme() (*Theme, error) {
	theme, err := Load[Theme]("theme.json")
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

// Legend returns the legend for a panel, or fallback when unset.
func (t *Theme) Legend(id, fallback string) string {
	return lookup(t.Legends, id, fallback)
}

// StanceLabel returns the display label for a stance name. Unknown names are
// shown as-is.
func (t *Theme) StanceLabel(name string) string {
	return lookup(t.Stances, name, name)
}

// Button returns the label for a button, or fallback when unset.
func (t *Theme) Button(id, fallback string) string {
	return lookup(t.Buttons, id, fallback)
}

// Color returns the named color, or tcell.ColorDefault when the entry is
// missing or malformed.
func (t *Theme) Color(name string) tcell.Color {
	hex, ok := t.Colors[name]
	if !ok {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

func lookup(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return fallback
}
