package game

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/stancewalk/internal/entity"
	"github.com/samdwyer/stancewalk/internal/telemetry"
)

// Observer is notified with the post-operation snapshot after every call.
type Observer func(entity.Character)

// Controller is the single writer for one character. Each operation runs to
// completion under the lock before the next one starts.
type Controller struct {
	mu        sync.Mutex
	character entity.Character
	tracer    trace.Tracer
	observers []Observer
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) ControllerOption {
	return func(c *Controller) {
		c.tracer = tracer
	}
}

// WithObserver registers an observer. Observers run in registration order.
func WithObserver(o Observer) ControllerOption {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// NewController creates a controller holding a fresh character.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		character: entity.NewCharacter(),
		tracer:    telemetry.Tracer("controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() entity.Character {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.character
}

// ToggleCrouch flips between Crouch and Stand.
func (c *Controller) ToggleCrouch(ctx context.Context) entity.Character {
	return c.apply(ctx, "character.toggle_crouch", func(ch *entity.Character) []attribute.KeyValue {
		ch.ToggleCrouch()
		return nil
	})
}

// Rest settles the character one step and regains actions once crouched.
func (c *Controller) Rest(ctx context.Context) entity.Character {
	return c.apply(ctx, "character.rest", func(ch *entity.Character) []attribute.KeyValue {
		ch.Rest()
		return nil
	})
}

// Move steps the character in dir, or stands it up from Rest/Crouch.
func (c *Controller) Move(ctx context.Context, dir entity.Direction) entity.Character {
	return c.apply(ctx, "character.move", func(ch *entity.Character) []attribute.KeyValue {
		ch.Move(dir)
		return []attribute.KeyValue{attribute.String("character.direction", dir.String())}
	})
}

// Dispatch routes an input key to its operation. Unbound keys leave the state
// alone but still notify observers, so every input event yields one snapshot.
func (c *Controller) Dispatch(ctx context.Context, key rune) entity.Character {
	return c.apply(ctx, "character.dispatch", func(ch *entity.Character) []attribute.KeyValue {
		bound := ch.Dispatch(key)
		return []attribute.KeyValue{
			attribute.String("input.key", string(key)),
			attribute.Bool("input.bound", bound),
		}
	})
}

// apply runs op against the character under the lock, records a span with the
// before/after state plus whatever op reports, and then notifies observers
// outside the lock.
func (c *Controller) apply(ctx context.Context, name string, op func(*entity.Character) []attribute.KeyValue) entity.Character {
	_, span := c.tracer.Start(ctx, name)
	defer span.End()

	c.mu.Lock()
	before := c.character
	extra := op(&c.character)
	after := c.character
	c.mu.Unlock()

	span.SetAttributes(extra...)
	span.SetAttributes(
		attribute.Bool("character.accepted", before != after),
		attribute.String("character.stance.before", before.Stance.String()),
		attribute.String("character.stance.after", after.Stance.String()),
		attribute.Int("character.actions.before", before.Actions),
		attribute.Int("character.actions.after", after.Actions),
		attribute.Int("character.x", after.X),
		attribute.Int("character.y", after.Y),
	)

	for _, o := range c.observers {
		o(after)
	}
	return after
}
