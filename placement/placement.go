// Package placement implements the seeded object placement engine:
// iterate schemas in shuffled order, gather floor and container
// candidate sites, and place one object per schema until max_objects
// is reached or the catalogue is exhausted.
package placement

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/tidyroom/internal/rng"
	"chosenoffset.com/tidyroom/layout"
	"chosenoffset.com/tidyroom/object"
)

// buildState is the mutable WorldView the constraint DSL evaluates
// against while objects are still being placed. It satisfies
// object.WorldView so schema constraints can see already-placed
// objects immediately.
type buildState struct {
	lay     *layout.Layout
	objects []object.Object
}

func (b *buildState) Width() int                       { return b.lay.Width }
func (b *buildState) Height() int                      { return b.lay.Height }
func (b *buildState) CellAt(x, y int) layout.Cell       { return b.lay.At(x, y) }
func (b *buildState) RoomName(x, y int) (string, bool)  { return b.lay.RoomName(x, y) }
func (b *buildState) Objects() []object.Object          { return b.objects }

type site struct {
	x, y   int
	inside bool
}

// Place runs the placement engine over lay using cat, seeded by seed,
// placing at most maxObjects objects. The returned slice is in
// insertion order with ids assigned 0..k-1, which is itself part of
// the deterministic output contract.
func Place(lay *layout.Layout, cat *object.Catalogue, seed uint64, maxObjects int, log logrus.FieldLogger) []object.Object {
	r := rng.New(seed)
	state := &buildState{lay: lay}

	var floor []struct{ x, y int }
	for y := 0; y < lay.Height; y++ {
		for x := 0; x < lay.Width; x++ {
			if lay.At(x, y) >= 0 {
				floor = append(floor, struct{ x, y int }{x, y})
			}
		}
	}
	r.Shuffle(len(floor), func(i, j int) { floor[i], floor[j] = floor[j], floor[i] })

	schemas := cat.All()
	r.Shuffle(len(schemas), func(i, j int) { schemas[i], schemas[j] = schemas[j], schemas[i] })

	nextID := object.ID(0)
	for _, schema := range schemas {
		if int(nextID) >= maxObjects {
			break
		}

		if !targetReachable(state, schema, floor) {
			continue
		}

		candidates := gatherCandidates(state, schema, floor)
		if len(candidates) == 0 {
			continue
		}
		candidates = filterByClass(candidates, r)

		pick := candidates[r.Choice(len(candidates))]
		if pick.inside {
			for i := range state.objects {
				if state.objects[i].X == pick.x && state.objects[i].Y == pick.y && state.objects[i].HasRoom() {
					state.objects[i].Contents = append(state.objects[i].Contents, nextID)
					break
				}
			}
		}

		obj := object.Object{
			ID:          nextID,
			Name:        schema.Name,
			Capacity:    schema.Capacity,
			Pickable:    schema.Pickable,
			Description: schema.Description,
			X:           pick.x,
			Y:           pick.y,
			Contents:    nil,
		}
		state.objects = append(state.objects, obj)
		nextID++
	}

	log.WithField("placed", len(state.objects)).Info("placement: objects placed")
	return state.objects
}

// targetReachable mirrors the reference engine's upfront check: a
// schema whose target constraint can never be satisfied anywhere
// (no matching floor cell, no matching container) is skipped before
// spending a placement slot on it.
func targetReachable(state *buildState, schema *object.Schema, floor []struct{ x, y int }) bool {
	for _, f := range floor {
		if schema.Target.Check(state, f.x, f.y) && !occupied(state, f.x, f.y) {
			return true
		}
	}
	for _, p := range state.objects {
		if p.IsContainer() && schema.Target.Check(state, p.X, p.Y) {
			return true
		}
	}
	return false
}

func gatherCandidates(state *buildState, schema *object.Schema, floor []struct{ x, y int }) []site {
	var candidates []site
	for _, f := range floor {
		if schema.Constraint.Check(state, f.x, f.y) && !occupied(state, f.x, f.y) {
			candidates = append(candidates, site{x: f.x, y: f.y, inside: false})
		}
	}
	for _, p := range state.objects {
		if p.IsContainer() && schema.Constraint.Check(state, p.X, p.Y) && schema.Pickable {
			candidates = append(candidates, site{x: p.X, y: p.Y, inside: true})
		}
	}
	return candidates
}

func occupied(state *buildState, x, y int) bool {
	for _, o := range state.objects {
		if o.X == x && o.Y == y {
			return true
		}
	}
	return false
}

// filterByClass applies the fair-coin floor/inside partition: if both
// classes are present among candidates, flip a coin and keep only the
// chosen class; otherwise keep whichever single class is present.
func filterByClass(candidates []site, r *rng.Source) []site {
	hasInside, hasOutside := false, false
	for _, c := range candidates {
		if c.inside {
			hasInside = true
		} else {
			hasOutside = true
		}
	}
	if hasInside && hasOutside {
		pickInside := r.Bool()
		out := candidates[:0:0]
		for _, c := range candidates {
			if c.inside == pickInside {
				out = append(out, c)
			}
		}
		return out
	}
	return candidates
}
