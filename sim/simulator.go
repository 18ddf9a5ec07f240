// Package sim implements the stepwise agent simulator: a thin state
// machine over a generated world.World, with move, interact, pick up,
// drop, and place-into operations dispatched synchronously against a
// single agent position and held object.
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/tidyroom/apterr"
	"chosenoffset.com/tidyroom/layout"
	"chosenoffset.com/tidyroom/object"
	"chosenoffset.com/tidyroom/world"
)

// Simulator pairs a World with an agent position and an optional held
// object. While an object is held (see Holding), it is not a member of the
// world's object list and is not referenced from any container.
type Simulator struct {
	World   *world.World
	Cat     *object.Catalogue
	AgentX  int
	AgentY  int
	holding *object.Object

	log logrus.FieldLogger
}

// New constructs a Simulator with the agent at (startX, startY).
// Fails with apterr.ErrInvalidStart if the position is out of bounds
// or not a room cell.
func New(w *world.World, cat *object.Catalogue, startX, startY int, log logrus.FieldLogger) (*Simulator, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if startX < 0 || startY < 0 || startX >= w.Width() || startY >= w.Height() {
		return nil, apterr.New(apterr.KindInvalidStart, fmt.Sprintf("start position (%d,%d) out of bounds", startX, startY))
	}
	if w.CellAt(startX, startY) < 0 {
		return nil, apterr.New(apterr.KindInvalidStart, fmt.Sprintf("start position (%d,%d) is not navigable", startX, startY))
	}
	return &Simulator{World: w, Cat: cat, AgentX: startX, AgentY: startY, log: log}, nil
}

// AgentPosition returns the agent's current grid position.
func (s *Simulator) AgentPosition() (int, int) { return s.AgentX, s.AgentY }

// Holding returns the currently held object, if any.
func (s *Simulator) Holding() (object.Object, bool) {
	if s.holding == nil {
		return object.Object{}, false
	}
	return *s.holding, true
}

// Move attempts to step the agent one cell in dir.
func (s *Simulator) Move(dir Direction) error {
	dx, dy := dir.Delta()
	nx, ny := s.AgentX+dx, s.AgentY+dy
	if nx < 0 || ny < 0 || nx >= s.World.Width() || ny >= s.World.Height() {
		s.log.WithFields(logrus.Fields{"x": nx, "y": ny}).Warn("sim: move rejected, out of bounds")
		return apterr.ErrOutOfBounds
	}
	if layout.IsObstacle(s.World.CellAt(nx, ny)) {
		s.log.WithFields(logrus.Fields{"x": nx, "y": ny}).Warn("sim: move rejected, hit obstacle")
		return apterr.ErrHitObstacle
	}
	s.AgentX, s.AgentY = nx, ny
	s.log.WithFields(logrus.Fields{"x": nx, "y": ny}).Debug("sim: agent moved")
	return nil
}

// Interact performs the unified interact operation on the cell in
// dir: toggling a door, picking up a pickable object, placing the
// held object into a container, or dropping it on the floor.
func (s *Simulator) Interact(dir Direction) error {
	dx, dy := dir.Delta()
	tx, ty := s.AgentX+dx, s.AgentY+dy
	if tx < 0 || ty < 0 || tx >= s.World.Width() || ty >= s.World.Height() {
		return apterr.ErrOutOfBounds
	}

	cell := s.World.CellAt(tx, ty)
	switch cell {
	case layout.ClosedDoor:
		s.World.Layout.ToggleDoor(tx, ty)
		s.log.WithFields(logrus.Fields{"x": tx, "y": ty}).Debug("sim: door opened")
		return nil
	case layout.OpenDoor:
		s.World.Layout.ToggleDoor(tx, ty)
		s.log.WithFields(logrus.Fields{"x": tx, "y": ty}).Debug("sim: door closed")
		return nil
	}

	if cell < 0 {
		return apterr.ErrNotInteractable
	}

	if s.holding != nil {
		if containerID, ok := s.World.FindContainerAt(tx, ty); ok {
			return s.PlaceInto(containerID)
		}
		obj := *s.holding
		obj.X, obj.Y = tx, ty
		s.World.AppendObject(obj)
		s.holding = nil
		s.log.Debug("sim: dropped held object via interact")
		return nil
	}

	if id, ok := s.World.FindPickableAt(tx, ty); ok {
		obj, _ := s.World.RemoveObjectByID(id)
		s.World.DetachFromAllContainers(id)
		s.holding = &obj
		s.log.WithField("object", obj.Name).Debug("sim: picked up via interact")
		return nil
	}

	return apterr.ErrNothingToInteract
}

// PickUp picks up a pickable object at the agent's current cell.
func (s *Simulator) PickUp() error {
	if s.holding != nil {
		return apterr.ErrAlreadyHolding
	}
	id, ok := s.World.FindPickableAt(s.AgentX, s.AgentY)
	if !ok {
		return apterr.ErrNothingToPickUp
	}
	obj, _ := s.World.RemoveObjectByID(id)
	s.World.DetachFromAllContainers(id)
	s.holding = &obj
	return nil
}

// Drop places the held object on the floor at the agent's current cell.
func (s *Simulator) Drop() error {
	if s.holding == nil {
		return apterr.ErrNotHolding
	}
	obj := *s.holding
	obj.X, obj.Y = s.AgentX, s.AgentY
	s.World.AppendObject(obj)
	s.holding = nil
	return nil
}

// Layout returns the simulator's underlying layout.
func (s *Simulator) Layout() *layout.Layout { return s.World.Layout }

// Objects returns a defensive copy of the world's current object
// list; callers cannot mutate simulator state through the slice.
func (s *Simulator) Objects() []object.Object {
	src := s.World.Objects()
	out := make([]object.Object, len(src))
	copy(out, src)
	for i := range out {
		out[i].Contents = append([]object.ID(nil), src[i].Contents...)
	}
	return out
}

// IsTidy reports whether obj currently satisfies its schema's target
// (tidiness) constraint.
func (s *Simulator) IsTidy(obj object.Object) bool {
	return s.World.CheckTidy(s.Cat, obj)
}

// PlaceInto places the held object into the container with targetID.
func (s *Simulator) PlaceInto(targetID object.ID) error {
	if s.holding == nil {
		return apterr.ErrNotHolding
	}
	container, ok := s.World.ObjectByIDMut(targetID)
	if !ok || !container.IsContainer() {
		return apterr.ErrInvalidTarget
	}
	if !container.HasRoom() {
		return apterr.ErrContainerFull
	}
	obj := *s.holding
	obj.X, obj.Y = container.X, container.Y
	container.Contents = append(container.Contents, obj.ID)
	s.World.AppendObject(obj)
	s.holding = nil
	return nil
}
