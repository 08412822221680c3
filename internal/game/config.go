package game

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/stancewalk/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// Viewport is the number of map cells drawn on each side of the character.
	Viewport int

	// Theme supplies labels and colors. Nil loads the embedded theme.
	Theme *gamedata.Theme

	// Tracer records operation spans. Nil uses the global provider.
	Tracer trace.Tracer
}
