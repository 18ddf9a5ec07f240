// Package world ties the layout generator and the placement engine
// together into the single top-level Generate entry point, and holds
// the resulting World: a layout plus its objects.
package world

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/tidyroom/layout"
	"chosenoffset.com/tidyroom/object"
	"chosenoffset.com/tidyroom/placement"
)

// World bundles a generated layout with the objects placed in it.
// Object order is insertion order and is itself part of the
// deterministic output, same as the generator's layout bytes.
type World struct {
	Layout  *layout.Layout
	objects []object.Object
}

// Width returns the layout width. Satisfies object.WorldView.
func (w *World) Width() int { return w.Layout.Width }

// Height returns the layout height. Satisfies object.WorldView.
func (w *World) Height() int { return w.Layout.Height }

// CellAt returns the cell at (x, y). Satisfies object.WorldView.
func (w *World) CellAt(x, y int) layout.Cell { return w.Layout.At(x, y) }

// RoomName returns the room name at (x, y), if any. Satisfies
// object.WorldView.
func (w *World) RoomName(x, y int) (string, bool) { return w.Layout.RoomName(x, y) }

// Objects returns the current object list. Satisfies object.WorldView.
func (w *World) Objects() []object.Object { return w.objects }

// ObjectAt returns the first object occupying (x, y), if any.
func (w *World) ObjectAt(x, y int) (object.Object, bool) {
	for _, o := range w.objects {
		if o.X == x && o.Y == y {
			return o, true
		}
	}
	return object.Object{}, false
}

// RoomAt returns the room id and name at (x, y), if the cell is a
// room cell.
func (w *World) RoomAt(x, y int) (id int, name string, ok bool) {
	c := w.Layout.At(x, y)
	if c < 0 {
		return 0, "", false
	}
	name, ok = w.Layout.RoomName(x, y)
	return int(c), name, ok
}

// ContentsOf returns the objects held by the container with id, in
// their stored order.
func (w *World) ContentsOf(id object.ID) ([]object.Object, bool) {
	for _, o := range w.objects {
		if o.ID != id {
			continue
		}
		out := make([]object.Object, 0, len(o.Contents))
		for _, cid := range o.Contents {
			if child, found := w.objectByID(cid); found {
				out = append(out, child)
			}
		}
		return out, true
	}
	return nil, false
}

func (w *World) objectByID(id object.ID) (object.Object, bool) {
	for _, o := range w.objects {
		if o.ID == id {
			return o, true
		}
	}
	return object.Object{}, false
}

// indexByID returns the slice index of the object with id, or -1.
func (w *World) indexByID(id object.ID) int {
	for i := range w.objects {
		if w.objects[i].ID == id {
			return i
		}
	}
	return -1
}

// CheckPlacement reports whether o currently satisfies its schema's
// placement constraint (used by tests and tooling, not by Generate
// itself, which already guarantees this at placement time).
func (w *World) CheckPlacement(cat *object.Catalogue, o object.Object) bool {
	schema := cat.Get(o.Name)
	if schema == nil {
		return false
	}
	return schema.Constraint.Check(w, o.X, o.Y)
}

// CheckTidy reports whether o currently satisfies its schema's target
// constraint — the tidiness predicate from the design notes.
func (w *World) CheckTidy(cat *object.Catalogue, o object.Object) bool {
	schema := cat.Get(o.Name)
	if schema == nil {
		return false
	}
	return schema.Target.Check(w, o.X, o.Y)
}

// AppendObject adds o to the world's object list. Used by the
// simulator when dropping or placing a held object back into play.
func (w *World) AppendObject(o object.Object) {
	w.objects = append(w.objects, o)
}

// RemoveObjectByID removes and returns the object with id, if present.
func (w *World) RemoveObjectByID(id object.ID) (object.Object, bool) {
	idx := w.indexByID(id)
	if idx < 0 {
		return object.Object{}, false
	}
	o := w.objects[idx]
	w.objects = append(w.objects[:idx], w.objects[idx+1:]...)
	return o, true
}

// FindPickableAt returns the id of a pickable object at (x, y), if any.
func (w *World) FindPickableAt(x, y int) (object.ID, bool) {
	for _, o := range w.objects {
		if o.X == x && o.Y == y && o.Pickable {
			return o.ID, true
		}
	}
	return 0, false
}

// FindContainerAt returns the id of a container object with spare
// capacity at (x, y), if any.
func (w *World) FindContainerAt(x, y int) (object.ID, bool) {
	for _, o := range w.objects {
		if o.X == x && o.Y == y && o.IsContainer() && o.HasRoom() {
			return o.ID, true
		}
	}
	return 0, false
}

// AnyObjectAt reports whether any object (container or not) occupies
// (x, y).
func (w *World) AnyObjectAt(x, y int) bool {
	_, ok := w.ObjectAt(x, y)
	return ok
}

// ObjectByIDMut returns a mutable pointer to the object with id, or
// ok=false if it doesn't exist. The caller is responsible for
// checking IsContainer/HasRoom before treating it as a container.
func (w *World) ObjectByIDMut(id object.ID) (*object.Object, bool) {
	idx := w.indexByID(id)
	if idx < 0 {
		return nil, false
	}
	return &w.objects[idx], true
}

// DetachFromAllContainers removes childID from every container's
// Contents list, wherever it appears.
func (w *World) DetachFromAllContainers(childID object.ID) {
	for i := range w.objects {
		contents := w.objects[i].Contents
		for j, cid := range contents {
			if cid == childID {
				w.objects[i].Contents = append(contents[:j], contents[j+1:]...)
				break
			}
		}
	}
}

// Generate runs the full pipeline: GenOpts -> layout -> placed
// objects -> World. log defaults to logrus.StandardLogger() if nil.
func Generate(opts GenOpts, cat *object.Catalogue, log logrus.FieldLogger) (*World, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lay, err := layout.Generate(opts.Width, opts.Height, opts.MaxRooms, opts.Seed, log)
	if err != nil {
		return nil, err
	}

	w := &World{Layout: lay}
	w.objects = placement.Place(lay, cat, opts.Seed, opts.MaxObjects, log)

	log.WithFields(logrus.Fields{
		"seed":    opts.Seed,
		"rooms":   lay.RoomCount(),
		"objects": len(w.objects),
	}).Info("world: generation complete")

	return w, nil
}
