package core

// updatePlayer advances the player: while Active, poll intents, resolve
// kinematics and watch for a fatal hit; while Dying, run the countdown
// and hand out the verdict when it expires.
func (w *World) updatePlayer(p *Actor, in Input, dt float64) {
	switch p.PState {
	case PlayerActive:
		if !p.Frozen {
			w.pollPlayerInput(p, in)
		}
		w.resolveActor(p, dt)
		if p.Killed {
			w.startDeathSequence(p)
			return
		}
		if !p.Vel.IsZero() {
			w.advanceWalkAnim(p, dt)
		}

	case PlayerDying:
		p.DeathTimer -= dt
		p.Frame = deathFrame(p.DeathTimer, w.tuning)
		if p.DeathTimer <= 0 {
			w.finishDeathSequence(p)
		}

	case PlayerExhausted:
		// terminal; the session layer reads it and ends the game
	}
}

// pollPlayerInput maps the tick's intents onto facing and velocity.
// Directions are mutually exclusive: the last processed one wins.
func (w *World) pollPlayerInput(p *Actor, in Input) {
	p.Vel = Vec2{}
	if in.Left {
		p.Facing = DirLeft
		p.Vel = p.Facing.Scale(w.tuning.PlayerSpeed)
	}
	if in.Right {
		p.Facing = DirRight
		p.Vel = p.Facing.Scale(w.tuning.PlayerSpeed)
	}
	if in.Up {
		p.Facing = DirUp
		p.Vel = p.Facing.Scale(w.tuning.PlayerSpeed)
	}
	if in.Down {
		p.Facing = DirDown
		p.Vel = p.Facing.Scale(w.tuning.PlayerSpeed)
	}
	if in.Push {
		w.playerPush(p)
	}
}

func (w *World) startDeathSequence(p *Actor) {
	p.PState = PlayerDying
	p.Frozen = true
	p.DeathTimer = w.tuning.DeathTime
	p.Vel = Vec2{}
	p.Frame = w.tuning.DeathFrames - 1
	w.emit(EventPlayerDeath)
}

// finishDeathSequence runs when the death countdown reaches zero: a life
// is spent, and the player either returns to its spawn anchor or the
// state machine goes terminal.
func (w *World) finishDeathSequence(p *Actor) {
	p.Lives--
	if p.Lives <= 0 {
		p.PState = PlayerExhausted
		return
	}
	p.PState = PlayerActive
	p.Frozen = false
	p.Pos = p.Spawn
	p.Vel = Vec2{}
	p.Facing = DirDown
	p.Killed = false
	p.Frame = 0
	p.animClock = 0
}

// deathFrame derives the animation frame from the remaining countdown,
// splitting it evenly across the death sequence frames.
func deathFrame(timer float64, t Tuning) int {
	gap := t.DeathTime / float64(t.DeathFrames)
	frame := int(timer / gap)
	if frame < 0 {
		frame = 0
	}
	if frame > t.DeathFrames-1 {
		frame = t.DeathFrames - 1
	}
	return frame
}

// advanceWalkAnim toggles the two-frame walk cycle on a time clock while
// the actor is in motion.
func (w *World) advanceWalkAnim(a *Actor, dt float64) {
	a.animClock += dt
	if a.animClock >= w.tuning.WalkFrameTime {
		a.animClock = 0
		a.Frame = (a.Frame + 1) % 2
	}
}
