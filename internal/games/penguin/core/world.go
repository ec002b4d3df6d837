package core

import (
	"fmt"
	"math/rand"
)

// Input is the per-tick snapshot of player intents. The engine treats it
// as an opaque poll; how keys map onto it is the platform's business.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Push  bool
}

// Placement is one entity to create at level load, in grid coordinates
// already offset for the boundary wall margin.
type Placement struct {
	Kind Kind
	Col  int
	Row  int
}

// World is the whole simulation: the entity arena, the named entity sets,
// the score, and the RNG driving enemy decisions. All mutation happens
// inside Step, single-threaded, in a fixed phase order.
type World struct {
	tuning Tuning
	rng    *rand.Rand

	arena Arena
	sets  [setCount][]Handle

	player Handle
	score  int
	events []Event

	gridW, gridH int // tiles, including the boundary ring
	hunt         bool
	diamondLatch bool
}

// NewWorld creates an empty world with the given ruleset and RNG.
// The RNG is the only source of randomness in the simulation; callers
// seed it to make runs reproducible.
func NewWorld(tuning Tuning, rng *rand.Rand) *World {
	return &World{
		tuning: tuning,
		rng:    rng,
	}
}

// SetHunt forces every enemy, present and future, into chase behavior.
func (w *World) SetHunt(hunt bool) {
	w.hunt = hunt
	w.arena.Each(func(_ Handle, a *Actor) {
		if a.Kind == KindEnemy {
			a.Hunt = hunt
		}
	})
}

// Load populates a fresh world: a boundary wall ring around an innerW by
// innerH tile playfield, then the given placements. Exactly one player
// placement is required. Load fails fast; a world that loaded cleanly has
// no failure paths during Step.
func (w *World) Load(placements []Placement, innerW, innerH int, lives int) error {
	if innerW < 1 || innerH < 1 {
		return fmt.Errorf("load: playfield %dx%d is empty", innerW, innerH)
	}
	w.gridW = innerW + 2
	w.gridH = innerH + 2

	for x := 0; x < w.gridW; x++ {
		w.spawnWall(x, 0)
		w.spawnWall(x, w.gridH-1)
	}
	for y := 1; y < w.gridH-1; y++ {
		w.spawnWall(0, y)
		w.spawnWall(w.gridW-1, y)
	}

	for _, p := range placements {
		if p.Col < 1 || p.Col > innerW || p.Row < 1 || p.Row > innerH {
			return fmt.Errorf("load: %s placement at (%d, %d) outside the playfield", p.Kind, p.Col, p.Row)
		}
		switch p.Kind {
		case KindWall:
			w.spawnWall(p.Col, p.Row)
		case KindBlock, KindDiamond, KindEgg:
			w.spawnBlock(p.Kind, p.Col, p.Row)
		case KindPlayer:
			if !w.player.IsZero() {
				return fmt.Errorf("load: more than one player placement")
			}
			w.player = w.spawnPlayer(p.Col, p.Row, lives)
		case KindEnemy:
			w.spawnEnemy(p.Col, p.Row)
		default:
			return fmt.Errorf("load: kind %s cannot be placed", p.Kind)
		}
	}

	if w.player.IsZero() {
		return fmt.Errorf("load: no player placement")
	}
	return nil
}

// gridToWorld converts a grid coordinate to a pixel position.
func (w *World) gridToWorld(col, row int) Vec2 {
	return Vec2{float64(col) * w.tuning.TileSize, float64(row) * w.tuning.TileSize}
}

func (w *World) spawnWall(col, row int) Handle {
	h := w.arena.Alloc(Actor{
		Kind:   KindWall,
		Pos:    w.gridToWorld(col, row),
		Facing: DirDown,
	})
	w.addToSet(h, SetWalls)
	return h
}

func (w *World) spawnBlock(kind Kind, col, row int) Handle {
	h := w.arena.Alloc(Actor{
		Kind:      kind,
		Pos:       w.gridToWorld(col, row),
		Facing:    DirDown,
		StoppedBy: []SetID{SetWalls, SetBlocks},
	})
	w.addToSet(h, SetBlocks)
	if kind == KindDiamond {
		w.addToSet(h, SetDiamonds)
	}
	return h
}

func (w *World) spawnPlayer(col, row int, lives int) Handle {
	pos := w.gridToWorld(col, row)
	h := w.arena.Alloc(Actor{
		Kind:      KindPlayer,
		Pos:       pos,
		Spawn:     pos,
		Facing:    DirDown,
		StoppedBy: []SetID{SetWalls, SetBlocks},
		KilledBy:  []SetID{SetEnemies},
		Lives:     lives,
	})
	w.addToSet(h, SetPlayers)
	return h
}

func (w *World) spawnEnemy(col, row int) Handle {
	pos := w.gridToWorld(col, row)
	h := w.arena.Alloc(Actor{
		Kind:       KindEnemy,
		Pos:        pos,
		Spawn:      pos,
		Facing:     DirDown,
		Vel:        DirDown.Scale(w.tuning.EnemySpeed),
		StoppedBy:  []SetID{SetWalls, SetBlocks},
		KilledBy:   []SetID{SetMovingBlocks},
		PointValue: w.tuning.EnemyKillPoints,
		Hunt:       w.hunt,
	})
	w.addToSet(h, SetEnemies)
	return h
}

func (w *World) spawnMarker(pos Vec2, value int) Handle {
	return w.arena.Alloc(Actor{
		Kind:        KindMarker,
		Pos:         pos,
		Facing:      DirDown,
		MarkerValue: value,
	})
}

// Step advances the simulation by dt seconds, in a fixed phase order:
// player (input poll, push resolution), blocks, diamond formation check,
// enemies, score markers. The returned event slice is valid until the
// next Step call.
func (w *World) Step(in Input, dt float64) []Event {
	w.events = w.events[:0]

	if p := w.arena.Get(w.player); p != nil {
		w.updatePlayer(p, in, dt)
	}

	for _, h := range w.phaseHandles(KindBlock, KindDiamond, KindEgg) {
		if a := w.arena.Get(h); a != nil {
			w.updateBlock(h, a, dt)
		}
	}

	w.checkDiamondAlignment()

	for _, h := range w.phaseHandles(KindEnemy) {
		if a := w.arena.Get(h); a != nil {
			w.updateEnemy(h, a, dt)
		}
	}

	for _, h := range w.phaseHandles(KindMarker) {
		if a := w.arena.Get(h); a != nil {
			w.updateMarker(h, a, dt)
		}
	}

	return w.events
}

// phaseHandles snapshots the handles of the given kinds in slot order so
// a phase iterates a stable list even while entities spawn or die.
func (w *World) phaseHandles(kinds ...Kind) []Handle {
	var hs []Handle
	w.arena.Each(func(h Handle, a *Actor) {
		for _, k := range kinds {
			if a.Kind == k {
				hs = append(hs, h)
				return
			}
		}
	})
	return hs
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// addToSet adds the entity to a named set. Adding an entity already in
// the set is a no-op.
func (w *World) addToSet(h Handle, id SetID) {
	a := w.arena.Get(h)
	if a == nil || a.inSet(id) {
		return
	}
	w.sets[id] = append(w.sets[id], h)
	a.memberships = append(a.memberships, id)
}

// removeFromSet removes the entity from a named set, preserving the
// order of the remaining members.
func (w *World) removeFromSet(h Handle, id SetID) {
	a := w.arena.Get(h)
	if a == nil {
		return
	}
	members := w.sets[id]
	for i, m := range members {
		if m == h {
			w.sets[id] = append(members[:i], members[i+1:]...)
			break
		}
	}
	for i, m := range a.memberships {
		if m == id {
			a.memberships = append(a.memberships[:i], a.memberships[i+1:]...)
			break
		}
	}
}

// destroy detaches the entity from every set it belongs to and frees its
// arena slot. Handles held elsewhere turn stale and fail on lookup.
func (w *World) destroy(h Handle) {
	a := w.arena.Get(h)
	if a == nil {
		return
	}
	for len(a.memberships) > 0 {
		w.removeFromSet(h, a.memberships[len(a.memberships)-1])
	}
	w.arena.Free(h)
}

// Score returns the points accumulated inside this world.
func (w *World) Score() int {
	return w.score
}

// Player returns the player actor, or nil before Load.
func (w *World) Player() *Actor {
	return w.arena.Get(w.player)
}

// PlayerHandle returns the player's handle.
func (w *World) PlayerHandle() Handle {
	return w.player
}

// Get resolves any entity handle, or nil if it is stale.
func (w *World) Get(h Handle) *Actor {
	return w.arena.Get(h)
}

// Lookup resolves any entity handle or reports ErrStaleHandle.
func (w *World) Lookup(h Handle) (*Actor, error) {
	return w.arena.Lookup(h)
}

// Members returns a copy of the current members of a named set.
func (w *World) Members(id SetID) []Handle {
	return append([]Handle(nil), w.sets[id]...)
}

// InSet reports whether the entity currently belongs to the named set.
func (w *World) InSet(h Handle, id SetID) bool {
	a := w.arena.Get(h)
	return a != nil && a.inSet(id)
}

// Each visits every live entity in deterministic slot order.
func (w *World) Each(fn func(h Handle, a *Actor)) {
	w.arena.Each(fn)
}

// TotalEnemyDeaths sums the death counters of all enemies.
func (w *World) TotalEnemyDeaths() int {
	total := 0
	w.arena.Each(func(_ Handle, a *Actor) {
		if a.Kind == KindEnemy {
			total += a.Deaths
		}
	})
	return total
}

// GridSize returns the grid dimensions in tiles, boundary ring included.
func (w *World) GridSize() (int, int) {
	return w.gridW, w.gridH
}

// Tuning returns the ruleset this world runs under.
func (w *World) Tuning() Tuning {
	return w.tuning
}
