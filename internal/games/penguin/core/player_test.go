package core

import (
	"math/rand"
	"testing"
)

func TestDeathCountdownSpendsOneLife(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 4, Row: 1},
		{Kind: KindBlock, Col: 4, Row: 2},
	}, 4, 3)
	w.SetHunt(true)

	tile := w.Tuning().TileSize
	p := w.Player()

	// Walk toward the hunting enemy; the kill lands mid-corridor, away
	// from the spawn anchor, so the respawn reposition is visible.
	for i := 0; i < 40 && p.PState == PlayerActive; i++ {
		w.Step(Input{Right: true}, tick)
	}
	if p.PState != PlayerDying {
		t.Fatalf("setup: player state = %v, want PlayerDying", p.PState)
	}
	if p.Pos.X <= tile {
		t.Errorf("player x = %v at the kill, want away from the spawn anchor", p.Pos.X)
	}
	if p.Frame != w.Tuning().DeathFrames-1 {
		t.Errorf("death frame = %d at the kill, want %d", p.Frame, w.Tuning().DeathFrames-1)
	}

	// Input is dead while the countdown runs, and the animation steps
	// down through the frames.
	clampPos := p.Pos
	stepN(w, Input{Down: true}, 40)
	if p.Pos != clampPos {
		t.Errorf("player pos = %v during the countdown, want pinned at %v", p.Pos, clampPos)
	}
	if p.Frame != 1 {
		t.Errorf("death frame = %d mid-countdown, want 1", p.Frame)
	}
	stepN(w, Input{}, 30)
	if p.Frame != 0 {
		t.Errorf("death frame = %d late in the countdown, want 0", p.Frame)
	}

	// Expiry: one life gone, back at the spawn anchor, facing reset.
	stepN(w, Input{}, 25)
	if p.PState != PlayerActive {
		t.Fatalf("player state = %v after the countdown, want PlayerActive", p.PState)
	}
	if p.Lives != w.Tuning().StartLives-1 {
		t.Errorf("lives = %d, want %d", p.Lives, w.Tuning().StartLives-1)
	}
	if p.Pos != (Vec2{tile, tile}) {
		t.Errorf("player pos = %v after respawn, want the spawn anchor", p.Pos)
	}
	if p.Facing != DirDown {
		t.Errorf("player facing = %v after respawn, want DirDown", p.Facing)
	}
	if p.Frozen {
		t.Error("respawned player should accept input again")
	}
}

func TestLastLifeGoesTerminal(t *testing.T) {
	w := NewWorld(DefaultTuning(), rand.New(rand.NewSource(1)))
	err := w.Load([]Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 2, Row: 1},
	}, 4, 3, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p := w.Player()
	w.Step(Input{Right: true}, tick)
	if p.PState != PlayerDying {
		t.Fatalf("setup: player state = %v, want PlayerDying", p.PState)
	}

	stepN(w, Input{}, 95)
	if p.PState != PlayerExhausted {
		t.Fatalf("player state = %v, want PlayerExhausted on the last life", p.PState)
	}
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}

	// The terminal state is stable; stepping on changes nothing.
	endPos := p.Pos
	stepN(w, Input{Right: true}, 10)
	if p.PState != PlayerExhausted {
		t.Errorf("player state = %v after further steps, want still PlayerExhausted", p.PState)
	}
	if p.Pos != endPos {
		t.Errorf("player pos = %v after further steps, want unchanged %v", p.Pos, endPos)
	}
}

func TestLastPolledDirectionWins(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 3, Row: 3},
	}, 6, 6)

	p := w.Player()

	cases := []struct {
		name string
		in   Input
		want Vec2
	}{
		{"left and right", Input{Left: true, Right: true}, DirRight},
		{"left and up", Input{Left: true, Up: true}, DirUp},
		{"right and down", Input{Right: true, Down: true}, DirDown},
		{"up and down", Input{Up: true, Down: true}, DirDown},
		{"all four", Input{Left: true, Right: true, Up: true, Down: true}, DirDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w.pollPlayerInput(p, tc.in)
			if p.Facing != tc.want {
				t.Errorf("facing = %v, want %v", p.Facing, tc.want)
			}
			if want := tc.want.Scale(w.Tuning().PlayerSpeed); p.Vel != want {
				t.Errorf("velocity = %v, want %v", p.Vel, want)
			}
		})
	}

	// No direction held: velocity drops, facing persists.
	w.pollPlayerInput(p, Input{})
	if !p.Vel.IsZero() {
		t.Errorf("velocity = %v with no input, want zero", p.Vel)
	}
	if p.Facing != DirDown {
		t.Errorf("facing = %v with no input, want the last held %v", p.Facing, DirDown)
	}
}

func TestWalkAnimationTogglesWhileMoving(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
	}, 8, 3)

	p := w.Player()
	if p.Frame != 0 {
		t.Fatalf("frame = %d at rest, want 0", p.Frame)
	}

	// One frame time of walking flips the frame; another flips it back.
	flip := int(w.Tuning().WalkFrameTime/tick) + 1
	stepN(w, Input{Right: true}, flip)
	if p.Frame != 1 {
		t.Errorf("frame = %d after one frame time, want 1", p.Frame)
	}
	stepN(w, Input{Right: true}, flip)
	if p.Frame != 0 {
		t.Errorf("frame = %d after two frame times, want 0", p.Frame)
	}
}
