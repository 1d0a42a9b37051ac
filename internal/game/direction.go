package game

// Direction is one of the four note lanes. The constant order is also the
// left-to-right lane order on the play field.
type Direction uint8

const (
	Left Direction = iota
	Up
	Down
	Right
)

// NumLanes is the number of directions and play field lanes.
const NumLanes = 4

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "unknown"
}
