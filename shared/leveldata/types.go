// Package leveldata describes level layouts and parses them from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/coinhop/collision"
	"github.com/automoto/coinhop/shared/gamemath"
)

var (
	ErrInvalidRect   = errors.New("invalid rectangle")
	ErrInvalidCoin   = errors.New("invalid coin")
	ErrNoPlayerSpawn = errors.New("no player spawn")
)

// Layout is everything needed to build a level. Slices keep file order, which
// is also the order entities are created in.
type Layout struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []Solid
	Blocks      []gamemath.Rect
	Coins       []Coin
	PlayerSpawn *SpawnPoint
	EnemySpawns []SpawnPoint
}

// Solid is static geometry that is never bumped. Kind is KindPlatform or KindPipe.
type Solid struct {
	Rect gamemath.Rect
	Kind collision.Kind
}

// Coin is a circular pickup centered at (X, Y).
type Coin struct {
	X, Y, R float64
}

// SpawnPoint is the top-left corner an actor starts at.
type SpawnPoint struct {
	X, Y float64
}

// Validate checks the layout for values the simulation cannot use.
func (l *Layout) Validate() error {
	if !(l.Width > 0 && l.Height > 0) {
		return fmt.Errorf("level %q size %vx%v: %w", l.Name, l.Width, l.Height, ErrInvalidRect)
	}
	for i, p := range l.Platforms {
		if !p.Rect.Valid() {
			return fmt.Errorf("level %q platform %d %+v: %w", l.Name, i, p.Rect, ErrInvalidRect)
		}
	}
	for i, b := range l.Blocks {
		if !b.Valid() {
			return fmt.Errorf("level %q block %d %+v: %w", l.Name, i, b, ErrInvalidRect)
		}
	}
	for i, c := range l.Coins {
		if !finite(c.X, c.Y, c.R) || c.R <= 0 {
			return fmt.Errorf("level %q coin %d %+v: %w", l.Name, i, c, ErrInvalidCoin)
		}
	}
	if l.PlayerSpawn == nil {
		return fmt.Errorf("level %q: %w", l.Name, ErrNoPlayerSpawn)
	}
	if !finite(l.PlayerSpawn.X, l.PlayerSpawn.Y) {
		return fmt.Errorf("level %q player spawn %+v: %w", l.Name, *l.PlayerSpawn, ErrInvalidRect)
	}
	for i, s := range l.EnemySpawns {
		if !finite(s.X, s.Y) {
			return fmt.Errorf("level %q enemy spawn %d %+v: %w", l.Name, i, s, ErrInvalidRect)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
