// Package collision resolves axis-aligned overlap between a moving body and
// static colliders. It has no dependencies on ebitengine, donburi, or resolv.
package collision

import (
	"sort"

	"github.com/automoto/coinhop/shared/gamemath"
)

// Kind tags level geometry. Renderers switch on it; the resolver only cares
// whether a collider is a block.
type Kind int

const (
	KindPlatform Kind = iota
	KindPipe
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindPipe:
		return "pipe"
	case KindBlock:
		return "block"
	default:
		return "platform"
	}
}

// Body is the moving part of an actor.
type Body struct {
	gamemath.Rect
	VX, VY   float64
	Grounded bool
	Facing   float64 // -1 or 1
}

// Collider is a static rectangle. Hit points at the owning block's flag and
// is nil for anything that cannot be bumped.
type Collider struct {
	ID   int
	Rect gamemath.Rect
	Kind Kind
	Hit  *bool
}

// EventKind identifies a side effect reported by the resolver.
type EventKind int

const (
	EventBlockHit EventKind = iota + 1
)

// Event is reported once per state transition the resolver caused.
type Event struct {
	Kind       EventKind
	ColliderID int
}

// Options tunes a single resolve call.
type Options struct {
	Epsilon       float64 // gap left between the body and a resolved face
	MotionEpsilon float64 // speeds within ±MotionEpsilon count as at rest
	MaxPasses     int
	CeilingKick   float64 // vy given to a body that bonks a ceiling while rising
	BumpBlocks    bool
}

// Result describes what a resolve call did to the body.
type Result struct {
	Collided bool
	Landed   bool
	Events   []Event
}

// ResolveX pushes the body out of every overlapping collider along X. Call it
// after integrating horizontal motion only.
func ResolveX(b *Body, colliders []Collider, opts Options) Result {
	var res Result
	order := byProximity(b.Rect, colliders)

	movingRight := b.VX > opts.MotionEpsilon
	movingLeft := b.VX < -opts.MotionEpsilon

	for pass := 0; pass < passes(opts); pass++ {
		moved := false
		for _, c := range order {
			if !b.Overlaps(c.Rect) {
				continue
			}
			moved = true

			switch {
			case movingRight:
				b.X = c.Rect.X - b.W - opts.Epsilon
			case movingLeft:
				b.X = c.Rect.Right() + opts.Epsilon
			default:
				pushLeft := b.Right() - c.Rect.X
				pushRight := c.Rect.Right() - b.X
				if pushLeft < pushRight {
					b.X -= pushLeft + opts.Epsilon
				} else {
					b.X += pushRight + opts.Epsilon
				}
			}
			b.VX = 0
		}
		if !moved {
			break
		}
		res.Collided = true
	}

	return res
}

// ResolveY pushes the body out of every overlapping collider along Y. It
// clears Grounded first; landing on a top face sets it again. Call it after
// integrating vertical motion only.
func ResolveY(b *Body, colliders []Collider, opts Options) Result {
	var res Result
	b.Grounded = false
	order := byProximity(b.Rect, colliders)

	movingDown := b.VY > opts.MotionEpsilon
	movingUp := b.VY < -opts.MotionEpsilon

	for pass := 0; pass < passes(opts); pass++ {
		moved := false
		for _, c := range order {
			if !b.Overlaps(c.Rect) {
				continue
			}
			moved = true

			switch {
			case movingDown:
				b.Y = c.Rect.Y - b.H - opts.Epsilon
				b.VY = 0
				b.Grounded = true
				res.Landed = true
			case movingUp:
				b.Y = c.Rect.Bottom() + opts.Epsilon
				if b.VY < 0 {
					b.VY = opts.CeilingKick
				}
				if opts.BumpBlocks && c.Kind == KindBlock && c.Hit != nil && !*c.Hit {
					*c.Hit = true
					res.Events = append(res.Events, Event{Kind: EventBlockHit, ColliderID: c.ID})
				}
			default:
				pushUp := b.Bottom() - c.Rect.Y
				pushDown := c.Rect.Bottom() - b.Y
				if pushUp < pushDown {
					b.Y -= pushUp + opts.Epsilon
				} else {
					b.Y += pushDown + opts.Epsilon
				}
			}
		}
		if !moved {
			break
		}
		res.Collided = true
	}

	return res
}

func passes(opts Options) int {
	if opts.MaxPasses < 1 {
		return 1
	}
	return opts.MaxPasses
}

// byProximity returns the colliders ordered nearest-center-first, with ties
// broken by ID so the order never depends on the input order.
func byProximity(r gamemath.Rect, colliders []Collider) []Collider {
	order := make([]Collider, len(colliders))
	copy(order, colliders)
	sort.SliceStable(order, func(i, j int) bool {
		di := r.CenterDistance(order[i].Rect)
		dj := r.CenterDistance(order[j].Rect)
		if di != dj {
			return di < dj
		}
		return order[i].ID < order[j].ID
	})
	return order
}
