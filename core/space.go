package core

import (
	"math"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/components"
	"github.com/automoto/coinhop/shared/gamemath"
	"github.com/automoto/coinhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// colliderSpace finds the static colliders near a rectangle. Colliders live in
// a resolv grid; a probe object sized to the query is moved into place and
// checked against the grid. Colliders that stick out of the grid are always
// returned.
type colliderSpace struct {
	space    *resolv.Space
	probe    *resolv.Object
	gridW    float64
	gridH    float64
	overflow []*donburi.Entry
	found    []collision.Collider
}

func newColliderSpace(width, height float64, cellSize int) *colliderSpace {
	cells := func(v float64) int {
		return int(math.Ceil(v/float64(cellSize))) + 1
	}
	cx, cy := cells(width), cells(height)
	space := resolv.NewSpace(cx*cellSize, cy*cellSize, cellSize, cellSize)

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)

	return &colliderSpace{
		space: space,
		probe: probe,
		gridW: float64(cx * cellSize),
		gridH: float64(cy * cellSize),
	}
}

// add registers a collider entity. Its ObjectData must already be set.
func (s *colliderSpace) add(entry *donburi.Entry) {
	obj := components.Object.Get(entry).Object
	obj.Data = entry

	if obj.X < 0 || obj.Y < 0 || obj.X+obj.W > s.gridW || obj.Y+obj.H > s.gridH {
		s.overflow = append(s.overflow, entry)
		return
	}
	s.space.Add(obj)
}

// query returns colliders that may overlap r. The slice is reused by the next
// call.
func (s *colliderSpace) query(r gamemath.Rect) []collision.Collider {
	s.found = s.found[:0]

	// One pixel of margin on every side covers resolv's far-edge cell rounding.
	s.probe.X, s.probe.Y = r.X-1, r.Y-1
	s.probe.W, s.probe.H = r.W+2, r.H+2
	s.probe.Update()

	if check := s.probe.Check(0, 0, tags.ResolvSolid); check != nil {
		for _, obj := range check.Objects {
			if entry, ok := obj.Data.(*donburi.Entry); ok {
				s.found = append(s.found, colliderOf(entry))
			}
		}
	}
	for _, entry := range s.overflow {
		s.found = append(s.found, colliderOf(entry))
	}
	return s.found
}

func colliderOf(entry *donburi.Entry) collision.Collider {
	c := components.Collider.Get(entry)
	out := collision.Collider{
		ID:   c.ID,
		Rect: components.Object.Get(entry).Rect(),
		Kind: c.Kind,
	}
	if entry.HasComponent(components.Block) {
		out.Hit = &components.Block.Get(entry).Hit
	}
	return out
}
