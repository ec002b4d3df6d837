package core

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// tick matches the 60 FPS frame time the platform drives the engine at.
const tick = 1.0 / 60

func newTestWorld(t *testing.T, seed int64, placements []Placement, innerW, innerH int) *World {
	t.Helper()
	w := NewWorld(DefaultTuning(), rand.New(rand.NewSource(seed)))
	if err := w.Load(placements, innerW, innerH, DefaultTuning().StartLives); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return w
}

func stepN(w *World, in Input, n int) {
	for i := 0; i < n; i++ {
		w.Step(in, tick)
	}
}

func hasEvent(events []Event, e Event) bool {
	for _, got := range events {
		if got == e {
			return true
		}
	}
	return false
}

func TestLoadBuildsBoundaryRing(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 2, Row: 2},
	}, 4, 3)

	gw, gh := w.GridSize()
	if gw != 6 || gh != 5 {
		t.Fatalf("grid = %dx%d, want 6x5", gw, gh)
	}

	// Perimeter of a 6x5 grid: 2*6 + 2*3 tiles.
	walls := w.Members(SetWalls)
	if len(walls) != 18 {
		t.Errorf("wall count = %d, want 18", len(walls))
	}

	// Corners must be present and sit at pixel positions on the tile grid.
	tile := w.Tuning().TileSize
	wallAt := make(map[Vec2]bool)
	for _, h := range walls {
		if a := w.Get(h); a != nil {
			wallAt[a.Pos] = true
		}
	}
	right := float64(gw-1) * tile
	bottom := float64(gh-1) * tile
	for _, corner := range []Vec2{{0, 0}, {right, 0}, {0, bottom}, {right, bottom}} {
		if !wallAt[corner] {
			t.Errorf("no wall tile at corner %v", corner)
		}
	}
}

func TestLoadRejectsBadLevels(t *testing.T) {
	player := Placement{Kind: KindPlayer, Col: 1, Row: 1}

	cases := []struct {
		name       string
		placements []Placement
		innerW     int
		innerH     int
		wantErr    string
	}{
		{
			name:    "empty playfield",
			innerW:  0,
			innerH:  3,
			wantErr: "is empty",
		},
		{
			name:       "no player",
			placements: []Placement{{Kind: KindBlock, Col: 1, Row: 1}},
			innerW:     3, innerH: 3,
			wantErr: "no player",
		},
		{
			name:       "two players",
			placements: []Placement{player, {Kind: KindPlayer, Col: 2, Row: 2}},
			innerW:     3, innerH: 3,
			wantErr: "more than one player",
		},
		{
			name:       "placement on the boundary ring",
			placements: []Placement{player, {Kind: KindBlock, Col: 0, Row: 1}},
			innerW:     3, innerH: 3,
			wantErr: "outside the playfield",
		},
		{
			name:       "placement past the far edge",
			placements: []Placement{player, {Kind: KindEnemy, Col: 4, Row: 2}},
			innerW:     3, innerH: 3,
			wantErr: "outside the playfield",
		},
		{
			name:       "unplaceable kind",
			placements: []Placement{player, {Kind: KindMarker, Col: 2, Row: 2}},
			innerW:     3, innerH: 3,
			wantErr: "cannot be placed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(DefaultTuning(), rand.New(rand.NewSource(1)))
			err := w.Load(tc.placements, tc.innerW, tc.innerH, 3)
			if err == nil {
				t.Fatalf("Load succeeded, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadPlacesEntitiesOnTheGrid(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 2, Row: 1},
		{Kind: KindDiamond, Col: 3, Row: 1},
		{Kind: KindEgg, Col: 1, Row: 2},
		{Kind: KindEnemy, Col: 3, Row: 3},
	}, 3, 3)

	tile := w.Tuning().TileSize

	p := w.Player()
	if p == nil {
		t.Fatal("no player after Load")
	}
	if p.Pos != (Vec2{tile, tile}) {
		t.Errorf("player pos = %v, want {%v %v}", p.Pos, tile, tile)
	}
	if p.Spawn != p.Pos {
		t.Errorf("player spawn anchor = %v, want the load position %v", p.Spawn, p.Pos)
	}
	if p.Lives != 3 {
		t.Errorf("player lives = %d, want 3", p.Lives)
	}

	if n := len(w.Members(SetBlocks)); n != 3 {
		t.Errorf("blocks set size = %d, want 3 (block, diamond, egg)", n)
	}
	if n := len(w.Members(SetDiamonds)); n != 1 {
		t.Errorf("diamonds set size = %d, want 1", n)
	}
	if n := len(w.Members(SetEnemies)); n != 1 {
		t.Errorf("enemies set size = %d, want 1", n)
	}
	if n := len(w.Members(SetMovingBlocks)); n != 0 {
		t.Errorf("moving blocks set size = %d, want 0 at load", n)
	}

	eh := w.Members(SetEnemies)[0]
	e := w.Get(eh)
	if e == nil {
		t.Fatal("enemy handle did not resolve")
	}
	if e.Vel != DirDown.Scale(w.Tuning().EnemySpeed) {
		t.Errorf("enemy initial velocity = %v, want downward patrol", e.Vel)
	}
	if e.PointValue != w.Tuning().EnemyKillPoints {
		t.Errorf("enemy point value = %d, want %d", e.PointValue, w.Tuning().EnemyKillPoints)
	}
}

func TestDestroyedEntityFailsLookup(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEgg, Col: 3, Row: 3},
	}, 3, 3)

	h := w.Members(SetBlocks)[0]
	w.destroy(h)

	if w.Get(h) != nil {
		t.Error("Get should return nil after destroy")
	}
	if _, err := w.Lookup(h); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Lookup error = %v, want ErrStaleHandle", err)
	}
	if n := len(w.Members(SetBlocks)); n != 0 {
		t.Errorf("blocks set size = %d after destroy, want 0", n)
	}
}

func TestSetMembershipRoundTrip(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 2, Row: 2},
	}, 3, 3)

	h := w.Members(SetBlocks)[0]

	// Adding twice keeps a single membership.
	w.addToSet(h, SetMovingBlocks)
	w.addToSet(h, SetMovingBlocks)
	if n := len(w.Members(SetMovingBlocks)); n != 1 {
		t.Errorf("moving blocks set size = %d after double add, want 1", n)
	}
	if !w.InSet(h, SetMovingBlocks) {
		t.Error("InSet should report the added membership")
	}

	w.removeFromSet(h, SetMovingBlocks)
	if w.InSet(h, SetMovingBlocks) {
		t.Error("InSet should report false after removal")
	}
	if !w.InSet(h, SetBlocks) {
		t.Error("unrelated membership should survive the removal")
	}
}

func TestSetHuntReachesLiveEnemies(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 3, Row: 3},
	}, 3, 3)

	e := w.Get(w.Members(SetEnemies)[0])
	if e.Hunt {
		t.Fatal("enemy should not hunt by default")
	}

	w.SetHunt(true)
	if !e.Hunt {
		t.Error("SetHunt should flip live enemies into hunt mode")
	}
}

func TestDeterminismAcrossWorlds(t *testing.T) {
	placements := []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 3, Row: 2},
		{Kind: KindEgg, Col: 4, Row: 4},
		{Kind: KindDiamond, Col: 2, Row: 5},
		{Kind: KindDiamond, Col: 6, Row: 5},
		{Kind: KindEnemy, Col: 6, Row: 2},
		{Kind: KindEnemy, Col: 4, Row: 6},
	}

	w1 := newTestWorld(t, 12345, placements, 7, 7)
	w2 := newTestWorld(t, 12345, placements, 7, 7)

	// Same seed, same scripted inputs: the runs must not diverge.
	script := func(i int) Input {
		switch {
		case i < 30:
			return Input{Right: true}
		case i == 30:
			return Input{Right: true, Push: true}
		case i < 90:
			return Input{Down: true}
		default:
			return Input{}
		}
	}

	for i := 0; i < 300; i++ {
		in := script(i)
		w1.Step(in, tick)
		w2.Step(in, tick)
	}

	if w1.Score() != w2.Score() {
		t.Errorf("score diverged: %d vs %d", w1.Score(), w2.Score())
	}

	type snapshot struct {
		kind Kind
		pos  Vec2
		vel  Vec2
	}
	collect := func(w *World) []snapshot {
		var snaps []snapshot
		w.Each(func(_ Handle, a *Actor) {
			snaps = append(snaps, snapshot{a.Kind, a.Pos, a.Vel})
		})
		return snaps
	}

	s1, s2 := collect(w1), collect(w2)
	if len(s1) != len(s2) {
		t.Fatalf("entity count diverged: %d vs %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Errorf("entity %d diverged: %+v vs %+v", i, s1[i], s2[i])
		}
	}
}
