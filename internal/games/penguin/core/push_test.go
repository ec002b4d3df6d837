package core

import "testing"

func killedByOnly(a *Actor, id SetID) bool {
	return len(a.KilledBy) == 1 && a.KilledBy[0] == id
}

func TestPushSendsBlockFlying(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 2, Row: 1},
	}, 6, 3)

	tile := w.Tuning().TileSize
	bh := w.Members(SetBlocks)[0]
	b := w.Get(bh)

	// Face the block and push in the same tick.
	events := w.Step(Input{Right: true, Push: true}, tick)

	if !hasEvent(events, EventPush) {
		t.Errorf("events = %v, want EventPush", events)
	}
	if !w.InSet(bh, SetMovingBlocks) {
		t.Error("pushed block should join the moving set")
	}
	if w.InSet(bh, SetBlocks) {
		t.Error("pushed block should leave the stationary set")
	}
	if want := DirRight.Scale(w.Tuning().BlockSpeed); b.Vel != want {
		t.Errorf("block velocity = %v, want %v", b.Vel, want)
	}

	// Let it fly: it must come to rest flush against the right boundary
	// wall and rejoin the stationary set the same tick it stops.
	stepN(w, Input{}, 40)

	if want := 6 * tile; b.Pos.X != want {
		t.Errorf("block rest x = %v, want flush at %v", b.Pos.X, want)
	}
	if !b.Vel.IsZero() {
		t.Errorf("block velocity = %v at rest, want zero", b.Vel)
	}
	if !w.InSet(bh, SetBlocks) || w.InSet(bh, SetMovingBlocks) {
		t.Error("resting block should be back in the stationary set only")
	}
}

func TestBlockedPushShattersPlainBlock(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 2, Row: 1},
		{Kind: KindBlock, Col: 3, Row: 1},
	}, 4, 3)

	pushed := w.Members(SetBlocks)[0]
	backer := w.Members(SetBlocks)[1]

	events := w.Step(Input{Right: true, Push: true}, tick)

	if !hasEvent(events, EventBreak) {
		t.Errorf("events = %v, want EventBreak", events)
	}
	if w.Get(pushed) != nil {
		t.Error("blocked plain block should shatter")
	}
	if w.Get(backer) == nil {
		t.Error("the backing block should survive")
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, want 0 for a plain block", w.Score())
	}
}

func TestBlockedPushLeavesDiamondIntact(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindDiamond, Col: 2, Row: 1},
		{Kind: KindBlock, Col: 3, Row: 1},
	}, 4, 3)

	dh := w.Members(SetDiamonds)[0]

	events := w.Step(Input{Right: true, Push: true}, tick)

	if !hasEvent(events, EventPush) {
		t.Errorf("events = %v, want EventPush", events)
	}
	if hasEvent(events, EventBreak) {
		t.Error("a diamond must not break on a blocked push")
	}
	d := w.Get(dh)
	if d == nil {
		t.Fatal("diamond should survive a blocked push")
	}
	if !w.InSet(dh, SetBlocks) || !w.InSet(dh, SetDiamonds) {
		t.Error("diamond memberships should be untouched")
	}
	if !d.Vel.IsZero() {
		t.Errorf("diamond velocity = %v, want zero", d.Vel)
	}
}

func TestBlockedPushBreaksEggIntoPoints(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEgg, Col: 2, Row: 1},
		{Kind: KindBlock, Col: 3, Row: 1},
	}, 4, 3)

	egg := w.Members(SetBlocks)[0]
	eggPos := w.Get(egg).Pos

	events := w.Step(Input{Right: true, Push: true}, tick)

	if !hasEvent(events, EventBreak) {
		t.Errorf("events = %v, want EventBreak", events)
	}
	if w.Get(egg) != nil {
		t.Error("blocked egg should break")
	}
	if want := w.Tuning().EggBreakPoints; w.Score() != want {
		t.Errorf("score = %d, want %d", w.Score(), want)
	}

	// The break leaves a score marker on the egg's tile.
	var marker *Actor
	w.Each(func(_ Handle, a *Actor) {
		if a.Kind == KindMarker {
			marker = a
		}
	})
	if marker == nil {
		t.Fatal("no score marker after the egg break")
	}
	if marker.MarkerValue != w.Tuning().EggBreakPoints {
		t.Errorf("marker value = %d, want %d", marker.MarkerValue, w.Tuning().EggBreakPoints)
	}
	if marker.Pos != eggPos {
		t.Errorf("marker pos = %v, want the egg's tile %v", marker.Pos, eggPos)
	}

	// Markers expire after their last animation step.
	lifetime := int(float64(w.Tuning().MarkerSteps)*w.Tuning().MarkerStepTime/tick) + 2
	stepN(w, Input{}, lifetime)
	w.Each(func(_ Handle, a *Actor) {
		if a.Kind == KindMarker {
			t.Error("score marker should be gone after its last step")
		}
	})
}

func TestWallPushRattlesAndStunsLinedEnemies(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 1, Row: 3},
		{Kind: KindEnemy, Col: 3, Row: 3},
	}, 4, 4)

	near := w.Get(w.Members(SetEnemies)[0])
	nearH := w.Members(SetEnemies)[0]
	far := w.Get(w.Members(SetEnemies)[1])

	// Push the left boundary wall: the whole wall column rattles, and
	// only the enemy pressed against it is stunned.
	events := w.Step(Input{Left: true, Push: true}, tick)

	if !hasEvent(events, EventElectric) {
		t.Errorf("events = %v, want EventElectric", events)
	}
	if !hasEvent(events, EventStun) {
		t.Errorf("events = %v, want EventStun", events)
	}

	if near.EState != EnemyStunned {
		t.Fatalf("lined enemy state = %v, want EnemyStunned", near.EState)
	}
	if !near.Vel.IsZero() {
		t.Errorf("stunned enemy velocity = %v, want zero", near.Vel)
	}
	if !killedByOnly(near, SetPlayers) {
		t.Errorf("stunned enemy KilledBy = %v, want only the players set", near.KilledBy)
	}
	if !w.InSet(nearH, SetStunnedEnemies) || w.InSet(nearH, SetEnemies) {
		t.Error("stunned enemy should move from the enemies set to the stunned set")
	}

	if far.EState != EnemyPatrol {
		t.Errorf("off-line enemy state = %v, want EnemyPatrol", far.EState)
	}
}

func TestStunExpiryRestoresPatrol(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 1, Row: 3},
	}, 4, 4)

	eh := w.Members(SetEnemies)[0]
	e := w.Get(eh)

	w.Step(Input{Left: true, Push: true}, tick)
	if e.EState != EnemyStunned {
		t.Fatal("setup: wall rattle did not stun the enemy")
	}

	// Run out the stun countdown.
	stepN(w, Input{}, int(w.Tuning().StunTime/tick)+2)

	if e.EState != EnemyPatrol {
		t.Fatalf("enemy state = %v after the stun expires, want EnemyPatrol", e.EState)
	}
	if !w.InSet(eh, SetEnemies) || w.InSet(eh, SetStunnedEnemies) {
		t.Error("woken enemy should move back to the enemies set")
	}
	if !killedByOnly(e, SetMovingBlocks) {
		t.Errorf("woken enemy KilledBy = %v, want only the moving blocks set", e.KilledBy)
	}
	if e.Vel.IsZero() {
		t.Error("woken enemy should resume patrol motion")
	}
}

func TestPlayerFinishesStunnedEnemy(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindEnemy, Col: 3, Row: 1},
	}, 5, 3)

	eh := w.Members(SetEnemies)[0]
	e := w.Get(eh)
	if !w.stunEnemy(eh, e) {
		t.Fatal("setup: stunEnemy refused a patrolling enemy")
	}

	// Walk into the helpless enemy. Touching it finishes it off at
	// double points.
	var killTick []Event
	for i := 0; i < 30; i++ {
		events := w.Step(Input{Right: true}, tick)
		if e.EState == EnemyRespawning {
			killTick = events
			break
		}
	}
	if killTick == nil {
		t.Fatal("walking onto the stunned enemy never finished it")
	}

	if !hasEvent(killTick, EventEnemyDeath) {
		t.Errorf("events = %v, want EventEnemyDeath", killTick)
	}
	want := w.Tuning().EnemyKillPoints * w.Tuning().StunBonusFactor
	if w.Score() != want {
		t.Errorf("score = %d, want the doubled %d", w.Score(), want)
	}
	if e.Deaths != 1 {
		t.Errorf("enemy deaths = %d, want 1", e.Deaths)
	}
	if e.Pos != e.Spawn {
		t.Errorf("enemy pos = %v, want back at spawn %v", e.Pos, e.Spawn)
	}
	if len(e.KilledBy) != 0 {
		t.Errorf("respawning enemy KilledBy = %v, want none", e.KilledBy)
	}
	if !w.InSet(eh, SetEnemies) || w.InSet(eh, SetStunnedEnemies) {
		t.Error("killed stunned enemy should return to the enemies set")
	}

	// Back off; the respawn countdown must hold even though the player
	// brushed the spawn tile.
	p := w.Player()
	stepN(w, Input{Left: true}, 5)
	if p.PState != PlayerActive {
		t.Fatal("player should survive walking away from a respawning enemy")
	}
	if e.Deaths != 1 {
		t.Errorf("enemy deaths = %d during immunity, want still 1", e.Deaths)
	}

	// After the countdown the enemy is vulnerable and solid again.
	stepN(w, Input{}, int(w.Tuning().RespawnTime/tick)+2)
	if e.EState != EnemyPatrol {
		t.Fatalf("enemy state = %v after respawn, want EnemyPatrol", e.EState)
	}
	if !killedByOnly(e, SetMovingBlocks) {
		t.Errorf("respawned enemy KilledBy = %v, want only the moving blocks set", e.KilledBy)
	}
	if len(e.StoppedBy) != 2 {
		t.Errorf("respawned enemy StoppedBy = %v, want walls and blocks", e.StoppedBy)
	}
}

func TestMovingBlockSquashesEnemy(t *testing.T) {
	w := newTestWorld(t, 7, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindBlock, Col: 2, Row: 1},
		{Kind: KindEnemy, Col: 4, Row: 1},
	}, 8, 1)

	// Hunt mode makes the enemy chase straight at the player, into the
	// path of the flying block.
	w.SetHunt(true)

	eh := w.Members(SetEnemies)[0]
	e := w.Get(eh)

	w.Step(Input{Right: true, Push: true}, tick)

	squashed := false
	for i := 0; i < 60; i++ {
		events := w.Step(Input{}, tick)
		if e.EState == EnemyRespawning {
			if !hasEvent(events, EventEnemyDeath) {
				t.Errorf("events = %v on the squash tick, want EventEnemyDeath", events)
			}
			squashed = true
			break
		}
	}
	if !squashed {
		t.Fatal("flying block never squashed the chasing enemy")
	}

	if want := w.Tuning().EnemyKillPoints; w.Score() != want {
		t.Errorf("score = %d, want %d", w.Score(), want)
	}
	if e.Pos != e.Spawn {
		t.Errorf("enemy pos = %v, want back at spawn %v", e.Pos, e.Spawn)
	}
	if e.Deaths != 1 {
		t.Errorf("enemy deaths = %d, want 1", e.Deaths)
	}

	// The block flies on through the spawn tile; the countdown keeps
	// the respawning enemy alive.
	stepN(w, Input{}, 10)
	if e.Deaths != 1 {
		t.Errorf("enemy deaths = %d during immunity, want still 1", e.Deaths)
	}

	for i := 0; i < 150 && e.EState != EnemyPatrol; i++ {
		w.Step(Input{}, tick)
	}
	if e.EState != EnemyPatrol {
		t.Fatal("enemy never returned to patrol after its respawn countdown")
	}
	if !killedByOnly(e, SetMovingBlocks) {
		t.Errorf("respawned enemy KilledBy = %v, want only the moving blocks set", e.KilledBy)
	}
}

func TestDiamondFormationBonusFiresOncePerFormation(t *testing.T) {
	w := newTestWorld(t, 1, []Placement{
		{Kind: KindPlayer, Col: 1, Row: 1},
		{Kind: KindDiamond, Col: 3, Row: 2},
		{Kind: KindDiamond, Col: 4, Row: 2},
		{Kind: KindEnemy, Col: 7, Row: 3},
	}, 7, 3)

	bonus := w.Tuning().DiamondBonus
	e := w.Get(w.Members(SetEnemies)[0])

	// The diamonds load adjacent, so the first step awards the bonus
	// and stuns the patrol.
	events := w.Step(Input{}, tick)
	if !hasEvent(events, EventBonus) {
		t.Errorf("events = %v, want EventBonus", events)
	}
	if !hasEvent(events, EventStun) {
		t.Errorf("events = %v, want EventStun", events)
	}
	if w.Score() != bonus {
		t.Errorf("score = %d, want %d", w.Score(), bonus)
	}
	if e.EState != EnemyStunned {
		t.Errorf("enemy state = %v, want EnemyStunned by the formation", e.EState)
	}

	// The latch holds while the formation persists.
	w.Step(Input{}, tick)
	if w.Score() != bonus {
		t.Errorf("score = %d while the formation holds, want still %d", w.Score(), bonus)
	}

	// Break the formation, then restore it: the bonus fires again.
	dh := w.Members(SetDiamonds)[1]
	d := w.Get(dh)
	orig := d.Pos
	d.Pos.X += 3 * w.Tuning().TileSize

	w.Step(Input{}, tick)
	if w.Score() != bonus {
		t.Errorf("score = %d after the break, want unchanged %d", w.Score(), bonus)
	}

	d.Pos = orig
	events = w.Step(Input{}, tick)
	if !hasEvent(events, EventBonus) {
		t.Errorf("events = %v on re-forming, want EventBonus", events)
	}
	if w.Score() != 2*bonus {
		t.Errorf("score = %d after re-forming, want %d", w.Score(), 2*bonus)
	}
}
