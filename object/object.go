// Package object defines placeable objects, their static schemas, and
// the recursive constraint tree schemas use to describe where they may
// be placed and where they belong once tidy: a static catalogue of
// placeable definitions, each carrying a predicate tree rather than a
// flat tag list.
package object

import "chosenoffset.com/tidyroom/layout"

// ID is a stable, monotonically assigned object identifier.
type ID int

// Object is a placed instance of a Schema: its id, current position,
// and (for containers) the ids of whatever it holds. Objects never
// hold a parent pointer; containment is child-ids-only, looked up by
// scanning World.Objects() when needed.
type Object struct {
	ID          ID
	Name        string
	Capacity    int
	Pickable    bool
	Description string
	X, Y        int
	Contents    []ID
}

// IsContainer reports whether this object can hold others.
func (o *Object) IsContainer() bool { return o.Capacity > 0 }

// HasRoom reports whether this container has remaining capacity.
func (o *Object) HasRoom() bool { return len(o.Contents) < o.Capacity }

// WorldView is the read-only slice of World state the constraint DSL
// needs. World (in package world) implements this; object stays free
// of an import cycle back to world by depending only on this
// interface and on layout, which World is itself built from.
type WorldView interface {
	Width() int
	Height() int
	CellAt(x, y int) layout.Cell
	RoomName(x, y int) (string, bool)
	Objects() []Object
}
