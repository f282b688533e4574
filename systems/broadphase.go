package systems

import (
	"sort"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Broadphase answers rectangle queries against the resolv space. The space
// only narrows candidates by cell; every result is confirmed with an exact
// rect overlap and returned in a stable order.
type Broadphase struct {
	world donburi.World
	space *resolv.Space
	query *resolv.Object
}

// NewBroadphase registers an untagged query object with space.
func NewBroadphase(w donburi.World, space *resolv.Space) *Broadphase {
	query := resolv.NewObject(0, 0, 1, 1)
	space.Add(query)
	return &Broadphase{world: w, space: space, query: query}
}

// Space returns the underlying resolv space.
func (b *Broadphase) Space() *resolv.Space {
	return b.space
}

func (b *Broadphase) candidates(r gamemath.Rect, tag string) []*donburi.Entry {
	// Padding by a unit keeps sub-unit overlaps on cell borders visible.
	b.query.X, b.query.Y = r.X-1, r.Y-1
	b.query.W, b.query.H = r.W+2, r.H+2
	b.query.Update()

	check := b.query.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool)
	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tag) {
		e, ok := obj.Data.(donburi.Entity)
		if !ok || seen[e] || !b.world.Valid(e) {
			continue
		}
		seen[e] = true
		out = append(out, b.world.Entry(e))
	}
	return out
}

// Overlapping returns the live entities registered under tag whose hitbox
// overlaps r, in spawn order.
func (b *Broadphase) Overlapping(r gamemath.Rect, tag string) []*donburi.Entry {
	var hits []*donburi.Entry
	for _, e := range b.candidates(r, tag) {
		if e.HasComponent(components.Death) {
			continue
		}
		if components.Object.Get(e).Rect().Overlaps(r) {
			hits = append(hits, e)
		}
	}
	sortBySerial(hits)
	return hits
}

// Obstacles returns the obstacle rects overlapping r ordered by obstacle
// index.
func (b *Broadphase) Obstacles(r gamemath.Rect) []gamemath.Rect {
	var found []*donburi.Entry
	for _, e := range b.candidates(r, tags.ResolvSolid) {
		if components.Object.Get(e).Rect().Overlaps(r) {
			found = append(found, e)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return components.Obstacle.Get(found[i]).Index < components.Obstacle.Get(found[j]).Index
	})
	rects := make([]gamemath.Rect, len(found))
	for i, e := range found {
		rects[i] = components.Object.Get(e).Rect()
	}
	return rects
}

// eacher is satisfied by donburi component and tag types.
type eacher interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// Snapshot collects the live entries of a type in spawn order. Systems
// iterate the snapshot so removal during a pass never skips a neighbour.
func Snapshot(w donburi.World, of eacher) []*donburi.Entry {
	var out []*donburi.Entry
	of.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			out = append(out, e)
		}
	})
	sortBySerial(out)
	return out
}

func sortBySerial(entries []*donburi.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return serialOf(entries[i]) < serialOf(entries[j])
	})
}

func serialOf(e *donburi.Entry) uint64 {
	if !e.HasComponent(components.Serial) {
		return 0
	}
	return components.Serial.Get(e).Value
}
