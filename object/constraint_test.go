package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chosenoffset.com/tidyroom/layout"
)

// fakeWorld is a minimal WorldView for exercising constraints without
// a full generated layout.
type fakeWorld struct {
	width, height int
	cells         []layout.Cell
	names         []string
	objects       []Object
}

func (f *fakeWorld) Width() int  { return f.width }
func (f *fakeWorld) Height() int { return f.height }
func (f *fakeWorld) CellAt(x, y int) layout.Cell {
	return f.cells[y*f.width+x]
}
func (f *fakeWorld) RoomName(x, y int) (string, bool) {
	c := f.CellAt(x, y)
	if c < 0 || int(c) >= len(f.names) {
		return "", false
	}
	return f.names[c], true
}
func (f *fakeWorld) Objects() []Object { return f.objects }

func newFakeWorld(width, height int) *fakeWorld {
	cells := make([]layout.Cell, width*height)
	for i := range cells {
		cells[i] = layout.OUTSIDE
	}
	return &fakeWorld{width: width, height: height, cells: cells, names: []string{"Kitchen"}}
}

func TestInRoom(t *testing.T) {
	w := newFakeWorld(3, 3)
	w.cells[4] = 0 // center is room 0
	require.True(t, InRoom().Check(w, 1, 1))
	require.False(t, InRoom().Check(w, 0, 0))
}

func TestAdjacentObstacle(t *testing.T) {
	w := newFakeWorld(3, 3)
	for i := range w.cells {
		w.cells[i] = 0
	}
	w.cells[0] = layout.OUTSIDE // (0,0)
	require.False(t, AdjacentObstacle().Check(w, 2, 2))
	require.True(t, AdjacentObstacle().Check(w, 1, 0))
}

func TestCloseToObstacle(t *testing.T) {
	w := newFakeWorld(5, 1)
	for i := range w.cells {
		w.cells[i] = 0
	}
	w.cells[0] = layout.OUTSIDE
	require.True(t, CloseToObstacle().Check(w, 2, 0))
	require.False(t, CloseToObstacle().Check(w, 4, 0))
}

func TestInRoomNamed(t *testing.T) {
	w := newFakeWorld(1, 1)
	w.cells[0] = 0
	w.names = []string{"Kitchen"}
	require.True(t, InRoomNamed("Kitchen", "Bathroom").Check(w, 0, 0))
	require.False(t, InRoomNamed("Bathroom").Check(w, 0, 0))
}

func TestInsideOf(t *testing.T) {
	w := newFakeWorld(1, 1)
	w.cells[0] = 0
	w.objects = []Object{{ID: 0, Name: "Drawer", Capacity: 2, X: 0, Y: 0, Contents: []ID{1}}}
	require.True(t, InsideOf("Drawer").Check(w, 0, 0))

	w.objects[0].Contents = []ID{1, 2}
	require.False(t, InsideOf("Drawer").Check(w, 0, 0), "full container should not match InsideOf")
}

func TestWorldHas(t *testing.T) {
	w := newFakeWorld(1, 1)
	require.False(t, WorldHas("CoatRack").Check(w, 0, 0))
	w.objects = []Object{{Name: "CoatRack"}}
	require.True(t, WorldHas("CoatRack").Check(w, 0, 0))
}

func TestAndOr(t *testing.T) {
	w := newFakeWorld(1, 1)
	w.cells[0] = 0
	require.True(t, And(InRoom(), InRoom()).Check(w, 0, 0))
	require.False(t, And(InRoom(), WorldHas("x")).Check(w, 0, 0))
	require.True(t, Or(WorldHas("x"), InRoom()).Check(w, 0, 0))
}

func TestCatalogueOrderAndLookup(t *testing.T) {
	cat := DefaultCatalogue()
	require.Greater(t, cat.Len(), 0)
	all := cat.All()
	require.Equal(t, cat.Len(), len(all))
	require.NotNil(t, cat.Get(all[0].Name))
	require.Nil(t, cat.Get("NoSuchSchema"))
}
