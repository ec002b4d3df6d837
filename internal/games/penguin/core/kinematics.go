package core

import "math"

// resolveActor runs one actor's full kinematic tick: integrate, snap to
// the grid, check fatal contacts, then resolve stop collisions. The fatal
// check comes first and stop resolution is skipped for a killed actor, so
// a killed actor's terminal position is the contact position rather than
// a clamped one.
func (w *World) resolveActor(a *Actor, dt float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
	w.snapToGrid(a)

	a.Killed = w.checkFatal(a)

	if !a.Killed {
		for _, set := range a.StoppedBy {
			w.collideAndStop(a, set, AxisX)
			w.collideAndStop(a, set, AxisY)
		}
	}
}

// snapToGrid corrects each zero-velocity axis toward the nearest tile
// boundary. This compensates for an actor beginning a new directional
// move from an off-grid position after continuous motion.
func (w *World) snapToGrid(a *Actor) {
	tile := w.tuning.TileSize

	if a.Vel.X == 0 {
		delta := math.Mod(a.Pos.X, tile)
		a.Pos.X -= delta
		if delta > tile/2 {
			a.Pos.X += tile
		}
	}
	if a.Vel.Y == 0 {
		delta := math.Mod(a.Pos.Y, tile)
		a.Pos.Y -= delta
		if delta > tile/2 {
			a.Pos.Y += tile
		}
	}
}

// collideAndStop resolves the actor's penetration into one obstacle set
// along one axis. Only the first detected hit is used. Moving into the
// hit clamps the actor flush against it by velocity sign; an overlap with
// zero axis velocity still registers as a hit without moving anything.
// In every hit case the axis velocity is zeroed.
func (w *World) collideAndStop(a *Actor, set SetID, axis Axis) bool {
	tile := w.tuning.TileSize
	rect := a.Rect(tile)

	for _, h := range w.sets[set] {
		b := w.arena.Get(h)
		if b == nil || b == a {
			continue
		}
		brect := b.Rect(tile)
		if !rect.Overlaps(brect) {
			continue
		}

		if axis == AxisX {
			if a.Vel.X > 0 {
				a.Pos.X = brect.X - rect.W
			}
			if a.Vel.X < 0 {
				a.Pos.X = brect.Right()
			}
			a.Vel.X = 0
		} else {
			if a.Vel.Y > 0 {
				a.Pos.Y = brect.Y - rect.H
			}
			if a.Vel.Y < 0 {
				a.Pos.Y = brect.Bottom()
			}
			a.Vel.Y = 0
		}
		return true
	}
	return false
}

// checkFatal runs the axis-separated overlap test against every lethal
// set. A hit on either axis zeroes the whole velocity and marks the actor
// killed for this tick.
func (w *World) checkFatal(a *Actor) bool {
	if len(a.KilledBy) == 0 {
		return false
	}

	killed := false
	for _, set := range a.KilledBy {
		hitX := w.collideAndStop(a, set, AxisX)
		hitY := w.collideAndStop(a, set, AxisY)
		if hitX || hitY {
			a.Vel = Vec2{}
			killed = true
		}
	}
	return killed
}

// IsNeighbourInDirection reports whether b sits one tile away from a in
// the given direction, within the ruleset's tolerance. This is the sole
// mechanism for "is the thing directly ahead of me" queries; it is
// direction-exact, not merely "touching".
func (w *World) IsNeighbourInDirection(a, b *Actor, dir Vec2) bool {
	diff := b.Pos.Sub(a.Pos).Sub(dir.Scale(w.tuning.TileSize))
	return diff.Len() <= w.tuning.Tolerance
}
