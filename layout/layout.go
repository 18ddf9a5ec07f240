// Package layout generates the grid: a seeded concave shell, BSP-carved
// rooms, a spanning tree of doorways, and named regions, as a pipeline
// of small, independently testable steps all reseeded from the same
// input seed.
package layout

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Layout is the generator's grid output: dimensions, a row-major cell
// buffer, and one name per room id.
type Layout struct {
	Width     int
	Height    int
	Cells     []Cell
	RoomNames []string
}

// RoomCount returns the number of named regions in the layout.
func (l *Layout) RoomCount() int { return len(l.RoomNames) }

// At returns the cell at (x, y). Callers are expected to have already
// bounds-checked; use InBounds first if that isn't guaranteed.
func (l *Layout) At(x, y int) Cell { return l.Cells[y*l.Width+x] }

// InBounds reports whether (x, y) lies on the grid.
func (l *Layout) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// RoomName returns the name of the room occupying (x, y), or ("",
// false) if the cell isn't a room cell.
func (l *Layout) RoomName(x, y int) (string, bool) {
	c := l.At(x, y)
	if c < 0 || int(c) >= len(l.RoomNames) {
		return "", false
	}
	return l.RoomNames[c], true
}

// ToggleDoor flood-fills the entire contiguous doorway strip
// containing (x, y) from its current state to the opposite one. It is
// a no-op if (x, y) isn't a door cell.
func (l *Layout) ToggleDoor(x, y int) {
	cur := l.At(x, y)
	var to Cell
	switch cur {
	case ClosedDoor:
		to = OpenDoor
	case OpenDoor:
		to = ClosedDoor
	default:
		return
	}
	FloodFill(l.Cells, l.Width, l.Height, x, y, to)
}

// Generate runs the full pipeline: shell -> BSP carve -> labels ->
// doors -> collapsed cell buffer -> room names. Each phase reseeds its
// own rng.Source from the same seed, so phases are independently
// reproducible the way the PRNG contract in the design notes requires.
func Generate(width, height, maxRooms int, seed uint64, log logrus.FieldLogger) (*Layout, error) {
	if width < 2*minThickCells || height < 2*minThickCells {
		return nil, fmt.Errorf("layout: width and height must each be at least %d: got %dx%d", 2*minThickCells, width, height)
	}
	if maxRooms < 1 {
		return nil, fmt.Errorf("layout: max_rooms must be at least 1: got %d", maxRooms)
	}

	shell := makeConcaveShell(width, height, seed)
	log.WithFields(logrus.Fields{"width": width, "height": height, "seed": seed}).Debug("layout: shell carved")

	regions, wallMask := carveBSP(shell, maxRooms, seed, width, height, log)
	log.WithField("rooms", len(regions)).Info("layout: rooms split")

	labels := buildLabels(regions, width, height)
	doorMask := carveDoors(labels, wallMask, shell, seed, width, height, log)
	log.Info("layout: doors carved")

	cells := make([]Cell, width*height)
	for i := range cells {
		switch {
		case !shell[i]:
			cells[i] = OUTSIDE
		case wallMask[i]:
			cells[i] = WALL
		case doorMask[i]:
			cells[i] = ClosedDoor
		default:
			cells[i] = labels[i]
		}
	}

	names := assignRoomNames(len(regions), seed)

	return &Layout{Width: width, Height: height, Cells: cells, RoomNames: names}, nil
}
