package core

// playerPush resolves the player's push intent: find the block directly
// ahead and invoke its push response, then check whether the push rattled
// the boundary wall instead.
func (w *World) playerPush(p *Actor) {
	tile := w.tuning.TileSize
	prect := p.Rect(tile)

	for _, h := range w.sets[SetBlocks] {
		b := w.arena.Get(h)
		if b == nil {
			continue
		}
		if !CirclesOverlap(prect, b.Rect(tile), w.tuning.PushRatio) {
			continue
		}
		if !w.IsNeighbourInDirection(p, b, p.Facing) {
			continue
		}
		w.respondToPush(h, b, p.Facing)
		break
	}

	for _, h := range w.sets[SetWalls] {
		wall := w.arena.Get(h)
		if wall == nil {
			continue
		}
		if !CirclesOverlap(prect, wall.Rect(tile), w.tuning.WallRatio) {
			continue
		}
		if !w.IsNeighbourInDirection(p, wall, p.Facing) {
			continue
		}
		w.emit(EventElectric)
		w.rattleWall(wall, p.Facing)
		break
	}
}

// respondToPush handles a push landing on a block: look ahead for
// occupancy, then either set the block in motion or trigger its break
// response.
func (w *World) respondToPush(h Handle, b *Actor, dir Vec2) {
	w.emit(EventPush)

	if w.pushBlocked(b, dir) {
		w.blockedPush(h, b)
		return
	}

	b.Vel = dir.Scale(w.tuning.BlockSpeed)
	b.Facing = dir
	w.removeFromSet(h, SetBlocks)
	w.addToSet(h, SetMovingBlocks)
}

// pushBlocked reports whether another block or a wall occupies the tile
// the push would send b into.
func (w *World) pushBlocked(b *Actor, dir Vec2) bool {
	tile := w.tuning.TileSize
	brect := b.Rect(tile)

	for _, set := range [...]SetID{SetBlocks, SetWalls} {
		for _, h := range w.sets[set] {
			o := w.arena.Get(h)
			if o == nil || o == b {
				continue
			}
			if !brect.OverlapsScaled(o.Rect(tile), w.tuning.BlockRatio) {
				continue
			}
			if w.IsNeighbourInDirection(b, o, dir) {
				return true
			}
		}
	}
	return false
}

// blockedPush invokes the break response of a block that was pushed into
// an occupied neighbour. Plain blocks shatter, diamonds shrug it off,
// eggs break into points.
func (w *World) blockedPush(h Handle, b *Actor) {
	switch b.Kind {
	case KindDiamond:
		// indestructible
	case KindEgg:
		points := w.tuning.EggBreakPoints
		w.score += points
		pos := b.Pos
		w.destroy(h)
		w.emit(EventBreak)
		w.spawnMarker(pos, points)
	default:
		w.destroy(h)
		w.emit(EventBreak)
	}
}

// updateBlock advances a block's flight. A block at rest does nothing; a
// moving block integrates, and the tick its velocity zeroes it re-enters
// the stationary set so nothing phases through it on the next pass.
func (w *World) updateBlock(h Handle, a *Actor, dt float64) {
	if !a.inSet(SetMovingBlocks) {
		return
	}

	w.resolveActor(a, dt)

	if a.Vel.IsZero() {
		w.removeFromSet(h, SetMovingBlocks)
		w.addToSet(h, SetBlocks)
	}
}

// rattleWall stuns every patrolling enemy pressed against the boundary
// line the player just pushed: wall tiles sharing the pushed tile's
// column (for a horizontal push) or row (for a vertical one) kick back at
// their field-side neighbours.
func (w *World) rattleWall(wallTile *Actor, dir Vec2) {
	enemies := w.Members(SetEnemies)
	back := dir.Reverse()
	stunned := false

	for _, wh := range w.sets[SetWalls] {
		t := w.arena.Get(wh)
		if t == nil {
			continue
		}
		if dir.X != 0 && t.Pos.X != wallTile.Pos.X {
			continue
		}
		if dir.Y != 0 && t.Pos.Y != wallTile.Pos.Y {
			continue
		}
		for _, eh := range enemies {
			e := w.arena.Get(eh)
			if e == nil || e.EState != EnemyPatrol {
				continue
			}
			if !w.IsNeighbourInDirection(t, e, back) {
				continue
			}
			if w.stunEnemy(eh, e) {
				stunned = true
			}
		}
	}

	if stunned {
		w.emit(EventStun)
	}
}

// checkDiamondAlignment awards the formation bonus when every diamond
// mutually overlaps every other one under the enlarged-rectangle test.
// The bonus fires once per contiguous formation: the latch re-arms only
// after the formation breaks. Firing stuns every patrolling enemy.
func (w *World) checkDiamondAlignment() {
	diamonds := w.sets[SetDiamonds]
	if len(diamonds) < 2 {
		return
	}

	tile := w.tuning.TileSize
	aligned := true
	for i := 0; i < len(diamonds) && aligned; i++ {
		a := w.arena.Get(diamonds[i])
		if a == nil {
			return
		}
		for j := i + 1; j < len(diamonds); j++ {
			b := w.arena.Get(diamonds[j])
			if b == nil {
				return
			}
			if !a.Rect(tile).OverlapsScaled(b.Rect(tile), w.tuning.DiamondRatio) {
				aligned = false
				break
			}
		}
	}

	if !aligned {
		w.diamondLatch = false
		return
	}
	if w.diamondLatch {
		return
	}
	w.diamondLatch = true
	w.score += w.tuning.DiamondBonus

	first := w.arena.Get(diamonds[0])
	stunned := false
	for _, eh := range w.Members(SetEnemies) {
		e := w.arena.Get(eh)
		if e == nil || e.EState != EnemyPatrol {
			continue
		}
		if w.stunEnemy(eh, e) {
			stunned = true
		}
	}

	w.emit(EventBonus)
	if stunned {
		w.emit(EventStun)
	}
	if first != nil {
		w.spawnMarker(first.Pos, w.tuning.DiamondBonus)
	}
}
