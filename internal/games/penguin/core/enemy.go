package core

import "math"

// updateEnemy advances one enemy through its state machine.
func (w *World) updateEnemy(h Handle, a *Actor, dt float64) {
	switch a.EState {
	case EnemyPatrol:
		initFacing := a.Facing
		w.resolveActor(a, dt)
		if a.Killed {
			w.killEnemy(h, a, 1)
			return
		}
		w.repickHeading(a, initFacing, dt)

	case EnemyStunned:
		// Velocity stays zero; the resolve pass only watches for the
		// player walking in to finish it off.
		w.resolveActor(a, dt)
		if a.Killed {
			w.killEnemy(h, a, w.tuning.StunBonusFactor)
			return
		}
		a.StunTimer -= dt
		a.Frame = stunFrame(a.StunTimer, w.tuning)
		if a.StunTimer <= 0 {
			w.wakeEnemy(h, a)
		}

	case EnemyRespawning:
		// Patrols with a walls-only obstacle set and no lethal sets, so
		// it cannot wedge against, or die at, a block on its spawn tile.
		initFacing := a.Facing
		w.resolveActor(a, dt)
		w.repickHeading(a, initFacing, dt)
		a.RespawnTimer -= dt
		if a.RespawnTimer <= 0 {
			a.EState = EnemyPatrol
			a.StoppedBy = []SetID{SetWalls, SetBlocks}
			a.KilledBy = []SetID{SetMovingBlocks}
		}
	}
}

// repickHeading reacts to a collision that zeroed the enemy's velocity by
// choosing a new heading; otherwise it just advances the walk animation.
func (w *World) repickHeading(a *Actor, initFacing Vec2, dt float64) {
	if a.Vel.IsZero() {
		a.Facing = w.chooseDirection(a, initFacing)
		a.Vel = a.Facing.Scale(w.tuning.EnemySpeed)
		a.Frame = 0
		a.animClock = 0
		return
	}
	w.advanceWalkAnim(a, dt)
}

// chooseDirection picks a new heading after a collision. Candidates are
// the reverse of the current facing and its two perpendiculars; one is
// drawn uniformly as the random fallback (the draw always happens, so the
// RNG stream stays aligned for a fixed seed). The axis-dominant direction
// toward the player wins with probability EnemyIQ, unless that direction
// is the one that just failed.
func (w *World) chooseDirection(a *Actor, initFacing Vec2) Vec2 {
	p1, p2 := a.Facing.Perpendiculars()
	options := [3]Vec2{a.Facing.Reverse(), p1, p2}
	randomTurn := options[w.rng.Intn(3)]

	player := w.arena.Get(w.player)
	if player == nil {
		return randomTurn
	}

	dx := a.Pos.X - player.Pos.X
	dy := a.Pos.Y - player.Pos.Y
	var chase Vec2
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			chase = DirLeft
		} else {
			chase = DirRight
		}
	} else {
		if dy > 0 {
			chase = DirUp
		} else {
			chase = DirDown
		}
	}

	if chase == initFacing {
		// already tried that way and hit something
		return randomTurn
	}

	if w.rng.Float64() < w.tuning.EnemyIQ || a.Hunt {
		return chase
	}
	return randomTurn
}

// stunEnemy moves a patrolling enemy into the stunned sub-state: frozen
// in place, swapped into the stunned set so the player can touch it, and
// lethal only to the player's hand until the countdown expires.
func (w *World) stunEnemy(h Handle, a *Actor) bool {
	if a.EState != EnemyPatrol {
		return false
	}
	a.EState = EnemyStunned
	a.StunTimer = w.tuning.StunTime
	a.Vel = Vec2{}
	a.KilledBy = []SetID{SetPlayers}
	a.Frame = 0
	w.removeFromSet(h, SetEnemies)
	w.addToSet(h, SetStunnedEnemies)
	return true
}

// wakeEnemy reverts an expired stun: membership and lethality go back to
// normal and the patrol resumes along the old facing.
func (w *World) wakeEnemy(h Handle, a *Actor) {
	a.EState = EnemyPatrol
	a.StunTimer = 0
	a.KilledBy = []SetID{SetMovingBlocks}
	a.Vel = a.Facing.Scale(w.tuning.EnemySpeed)
	a.Frame = 0
	a.animClock = 0
	w.removeFromSet(h, SetStunnedEnemies)
	w.addToSet(h, SetEnemies)
}

// killEnemy scores the kill, drops a marker at the death spot, and
// restarts the enemy from its spawn anchor under respawn immunity.
func (w *World) killEnemy(h Handle, a *Actor, multiplier int) {
	points := a.PointValue * multiplier
	w.score += points
	deathPos := a.Pos

	a.Deaths++
	a.Pos = a.Spawn
	a.Vel = Vec2{}
	a.Killed = false
	a.EState = EnemyRespawning
	a.RespawnTimer = w.tuning.RespawnTime
	a.StoppedBy = []SetID{SetWalls}
	a.KilledBy = nil
	a.Frame = 0
	a.animClock = 0

	if a.inSet(SetStunnedEnemies) {
		w.removeFromSet(h, SetStunnedEnemies)
		w.addToSet(h, SetEnemies)
	}

	w.emit(EventEnemyDeath)
	w.spawnMarker(deathPos, points)
}

// stunFrame derives the two-frame stun twitch from the countdown.
func stunFrame(timer float64, t Tuning) int {
	if timer <= 0 {
		return 0
	}
	return int(timer/t.StunFrameTime) % 2
}
