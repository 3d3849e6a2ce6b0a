package animations

// Direction selects the sprite sheet row and the axis of displacement.
// The values follow the row order of the sheet.
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Held is the set of directional keys held during one evaluation.
type Held struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one directional key is held.
func (h Held) Any() bool {
	return h.Up || h.Down || h.Left || h.Right
}

// Has reports whether the key for d is held.
func (h Held) Has(d Direction) bool {
	switch d {
	case Up:
		return h.Up
	case Down:
		return h.Down
	case Left:
		return h.Left
	case Right:
		return h.Right
	default:
		return false
	}
}
