package sim

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/tidyroom/apterr"
	"chosenoffset.com/tidyroom/layout"
	"chosenoffset.com/tidyroom/object"
	"chosenoffset.com/tidyroom/world"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newTestWorld(t *testing.T, seed uint64) (*world.World, *object.Catalogue) {
	t.Helper()
	cat := object.DefaultCatalogue()
	w, err := world.Generate(world.GenOpts{Seed: seed, MaxRooms: 6, Width: 30, Height: 20, MaxObjects: 40}, cat, discardLogger())
	require.NoError(t, err)
	return w, cat
}

func firstRoomCell(w *world.World) (int, int) {
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.CellAt(x, y) >= 0 {
				return x, y
			}
		}
	}
	panic("no room cell found")
}

func TestNewRejectsInvalidStart(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	_, err := New(w, cat, -1, -1, discardLogger())
	require.Error(t, err)
	require.True(t, errors.Is(err, apterr.ErrInvalidStart))
}

// TestS3MoveReversibility is scenario S3: up then down either both
// succeed and restore position, or the first fails; the agent never
// ends up on an obstacle.
func TestS3MoveReversibility(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	x, y := firstRoomCell(w)
	s, err := New(w, cat, x, y, discardLogger())
	require.NoError(t, err)

	startX, startY := s.AgentPosition()
	errUp := s.Move(Up)
	if errUp == nil {
		errDown := s.Move(Down)
		if errDown == nil {
			endX, endY := s.AgentPosition()
			require.Equal(t, startX, endX)
			require.Equal(t, startY, endY)
		}
	}
	ax, ay := s.AgentPosition()
	require.False(t, layout.IsObstacle(w.CellAt(ax, ay)))
}

// TestS4DoorToggleInvolution is scenario S4/invariant 9: the first
// interact opens the door cell it targets, and a second interact on the
// same door restores the whole layout.
func TestS4DoorToggleInvolution(t *testing.T) {
	w, cat := newTestWorld(t, 1)

	var doorX, doorY = -1, -1
outer:
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.CellAt(x, y) == layout.ClosedDoor {
				doorX, doorY = x, y
				break outer
			}
		}
	}
	require.NotEqual(t, -1, doorX, "expected at least one closed door")

	before := append([]layout.Cell(nil), w.Layout.Cells...)

	// place the agent adjacent to the door and interact toward it
	adjX, adjY := findAdjacentRoomCell(w, doorX, doorY)
	s, err := New(w, cat, adjX, adjY, discardLogger())
	require.NoError(t, err)

	dir := directionTo(adjX, adjY, doorX, doorY)
	require.NoError(t, s.Interact(dir))
	require.Equal(t, layout.OpenDoor, w.CellAt(doorX, doorY))

	require.NoError(t, s.Interact(dir))
	require.Equal(t, before, w.Layout.Cells)
}

func findAdjacentRoomCell(w *world.World, x, y int) (int, int) {
	for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && ny >= 0 && nx < w.Width() && ny < w.Height() && w.CellAt(nx, ny) >= 0 {
			return nx, ny
		}
	}
	panic("door has no adjacent room cell")
}

func directionTo(fromX, fromY, toX, toY int) Direction {
	switch {
	case toX == fromX && toY == fromY-1:
		return Up
	case toX == fromX && toY == fromY+1:
		return Down
	case toX == fromX-1 && toY == fromY:
		return Left
	default:
		return Right
	}
}

// TestS5PickUpDropRoundTrip is scenario S5/invariant 8: PickUp on a
// pickable object's own cell holds that object (same id) and removes it
// from the object list, and Drop puts it back, restoring the count.
func TestS5PickUpDropRoundTrip(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	var targetID object.ID
	var tx, ty int
	found := false
	for _, o := range w.Objects() {
		if o.Pickable {
			targetID, tx, ty = o.ID, o.X, o.Y
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one pickable object")

	s, err := New(w, cat, tx, ty, discardLogger())
	require.NoError(t, err)

	before := len(w.Objects())
	require.NoError(t, s.PickUp())

	held, ok := s.Holding()
	require.True(t, ok)
	require.Equal(t, targetID, held.ID)
	require.Equal(t, before-1, len(w.Objects()))

	require.NoError(t, s.Drop())
	_, holding := s.Holding()
	require.False(t, holding)
	require.Equal(t, before, len(w.Objects()))
}

// TestS6PlacementLegality is scenario S6/invariant 7: every generated
// object satisfies its own schema's placement constraint.
func TestS6PlacementLegality(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	for _, o := range w.Objects() {
		require.True(t, w.CheckPlacement(cat, o), "object %s at (%d,%d) fails its own constraint", o.Name, o.X, o.Y)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	// A one-row strip of room cells, so every step left up to the grid
	// edge is open; a generated world's outer ring is always walled.
	lay := &layout.Layout{Width: 3, Height: 1, Cells: []layout.Cell{0, 0, 0}, RoomNames: []string{"Hallway"}}
	w, cat := &world.World{Layout: lay}, object.DefaultCatalogue()
	s, err := New(w, cat, 2, 0, discardLogger())
	require.NoError(t, err)

	for s.AgentX > 0 {
		require.NoError(t, s.Move(Left))
	}
	err = s.Move(Left)
	if err != nil {
		require.True(t, errors.Is(err, apterr.ErrOutOfBounds) || errors.Is(err, apterr.ErrHitObstacle))
	}
}

func TestPickUpAlreadyHolding(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	var tx, ty int
	found := false
	for _, o := range w.Objects() {
		if o.Pickable {
			tx, ty = o.X, o.Y
			found = true
			break
		}
	}
	require.True(t, found)

	s, err := New(w, cat, tx, ty, discardLogger())
	require.NoError(t, err)
	require.NoError(t, s.PickUp())

	err = s.PickUp()
	require.True(t, errors.Is(err, apterr.ErrAlreadyHolding))
}

func TestDropNotHolding(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	x, y := firstRoomCell(w)
	s, err := New(w, cat, x, y, discardLogger())
	require.NoError(t, err)

	err = s.Drop()
	require.True(t, errors.Is(err, apterr.ErrNotHolding))
}

func TestPlaceIntoInvalidTarget(t *testing.T) {
	w, cat := newTestWorld(t, 1)
	var tx, ty int
	found := false
	for _, o := range w.Objects() {
		if o.Pickable {
			tx, ty = o.X, o.Y
			found = true
			break
		}
	}
	require.True(t, found)

	s, err := New(w, cat, tx, ty, discardLogger())
	require.NoError(t, err)
	require.NoError(t, s.PickUp())

	err = s.PlaceInto(object.ID(999999))
	require.True(t, errors.Is(err, apterr.ErrInvalidTarget))
}
