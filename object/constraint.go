package object

// Constraint is a recursive predicate tree evaluated against
// (world, x, y). Schemas keep these as data rather than closures so
// the catalogue stays inspectable and could be serialized, per the
// design notes' preference for a tagged variant over function values.
type Constraint struct {
	kind     constraintKind
	names    []string
	children []Constraint
}

type constraintKind int

const (
	kindInRoom constraintKind = iota
	kindAdjacentObstacle
	kindCloseToObstacle
	kindInsideOf
	kindInRoomNamed
	kindWorldHas
	kindAnd
	kindOr
)

// InRoom matches any cell that belongs to a room.
func InRoom() Constraint { return Constraint{kind: kindInRoom} }

// AdjacentObstacle matches a room cell with a negative (non-room)
// neighbour on at least one of the four cardinal directions.
func AdjacentObstacle() Constraint { return Constraint{kind: kindAdjacentObstacle} }

// CloseToObstacle matches a room cell with a negative neighbour two
// cells away on an axis.
func CloseToObstacle() Constraint { return Constraint{kind: kindCloseToObstacle} }

// InsideOf matches a cell occupied by a container object named one of
// names that still has spare capacity.
func InsideOf(names ...string) Constraint {
	return Constraint{kind: kindInsideOf, names: names}
}

// InRoomNamed matches a room cell whose room name is one of names.
func InRoomNamed(names ...string) Constraint {
	return Constraint{kind: kindInRoomNamed, names: names}
}

// WorldHas matches unconditionally (independent of x, y) if any
// already-placed object has a name in names.
func WorldHas(names ...string) Constraint {
	return Constraint{kind: kindWorldHas, names: names}
}

// And matches iff every child constraint matches.
func And(children ...Constraint) Constraint {
	return Constraint{kind: kindAnd, children: children}
}

// Or matches iff at least one child constraint matches.
func Or(children ...Constraint) Constraint {
	return Constraint{kind: kindOr, children: children}
}

// Check evaluates the constraint at (x, y) in world.
func (c Constraint) Check(w WorldView, x, y int) bool {
	switch c.kind {
	case kindInRoom:
		return w.CellAt(x, y) >= 0
	case kindAdjacentObstacle:
		if !InRoom().Check(w, x, y) {
			return false
		}
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := x+d[0], y+d[1]
			if nx >= 0 && ny >= 0 && nx < w.Width() && ny < w.Height() && w.CellAt(nx, ny) < 0 {
				return true
			}
		}
		return false
	case kindCloseToObstacle:
		if !InRoom().Check(w, x, y) {
			return false
		}
		for _, d := range [][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			nx, ny := x+d[0], y+d[1]
			if nx >= 0 && ny >= 0 && nx < w.Width() && ny < w.Height() && w.CellAt(nx, ny) < 0 {
				return true
			}
		}
		return false
	case kindAnd:
		for _, child := range c.children {
			if !child.Check(w, x, y) {
				return false
			}
		}
		return true
	case kindOr:
		for _, child := range c.children {
			if child.Check(w, x, y) {
				return true
			}
		}
		return false
	case kindInsideOf:
		for _, o := range w.Objects() {
			if containsName(c.names, o.Name) && o.X == x && o.Y == y && o.HasRoom() {
				return true
			}
		}
		return false
	case kindInRoomNamed:
		name, ok := w.RoomName(x, y)
		return ok && containsName(c.names, name)
	case kindWorldHas:
		for _, o := range w.Objects() {
			if containsName(c.names, o.Name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
