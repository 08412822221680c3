// Package entity provides the controllable character and its stance rules.
package entity

// Stance is the character's posture. It gates which operations are available
// and what moving costs.
type Stance int

const (
	StanceRest Stance = iota
	StanceStand
	StanceCrouch
	StanceMove
)

// String returns the stance label.
func (s Stance) String() string {
	switch s {
	case StanceRest:
		return "Rest"
	case StanceStand:
		return "Stand"
	case StanceCrouch:
		return "Crouch"
	case StanceMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Direction is a cardinal move direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the direction label.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Position is an unbounded grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Character is the full controller state. It is a comparable value, so two
// snapshots can be diffed with ==.
type Character struct {
	Actions int    `json:"actions"` // Never negative
	Stance  Stance `json:"stance"`

	// Embedded so x and y encode at the top level.
	Position
}

// NewCharacter returns the initial state: no actions, standing at the origin.
func NewCharacter() Character {
	return Character{
		Actions: 0,
		Stance:  StanceStand,
	}
}

// ToggleCrouch flips between Crouch and Stand. Any stance other than Crouch
// becomes Crouch.
func (c *Character) ToggleCrouch() {
	if c.Stance == StanceCrouch {
		c.Stance = StanceStand
	} else {
		c.Stance = StanceCrouch
	}
}

// Rest settles the character one step further: Stand/Move -> Crouch -> Rest.
// Crouching into Rest grants 1 action, resting while at Rest grants 2.
func (c *Character) Rest() {
	switch c.Stance {
	case StanceRest:
		c.Actions += 2
	case StanceCrouch:
		c.Actions++
		c.Stance = StanceRest
	default:
		c.Stance = StanceCrouch
	}
}

// MoveCost returns the actions a move costs from the given stance, or 0 when
// a move from that stance only stands the character up.
func MoveCost(s Stance) int {
	switch s {
	case StanceStand:
		return 1
	case StanceMove:
		return 2
	default:
		return 0
	}
}

// Move steps the character in dir. From Rest or Crouch it only stands up.
// From Stand or Move it spends the stance's cost and moves that many cells;
// when the pool cannot cover the cost nothing changes.
func (c *Character) Move(dir Direction) {
	switch c.Stance {
	case StanceStand, StanceMove:
		cost := MoveCost(c.Stance)
		if c.Actions < cost {
			return
		}
		delta := min(cost, c.Actions)
		c.Actions -= delta

		// Right shares Up's axis and nothing increments X.
		switch dir {
		case DirUp:
			c.Y += delta
		case DirRight:
			c.Y += delta
		case DirDown:
			c.Y -= delta
		case DirLeft:
			c.X -= delta
		}

		if c.Stance == StanceStand {
			c.Stance = StanceMove
		}
	default:
		c.Stance = StanceStand
	}
}

// Dispatch routes an input key to an operation. It reports whether the key
// is bound; unbound keys are ignored.
func (c *Character) Dispatch(key rune) bool {
	switch key {
	case 'w':
		c.Move(DirUp)
	case 'd':
		c.Move(DirRight)
	case 's':
		c.Move(DirDown)
	case 'a':
		c.Move(DirLeft)
	case 'z':
		c.ToggleCrouch()
	case 'x':
		c.Rest()
	default:
		return false
	}
	return true
}
