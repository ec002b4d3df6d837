package penguin

import (
	"fmt"

	platformcore "github.com/dww100/untitled-penguin-game/internal/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.world == nil {
		g.renderOverlay(dst, "No boards found", "Press Q to quit")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.ready:
		board := g.currentBoard()
		g.renderOverlay(dst, fmt.Sprintf("Board %d: %s", g.boardsCleared+1, board.Name), "Get Ready!")
	case g.cleared:
		bonusLine := "No time bonus"
		if g.clearBonus > 0 {
			bonusLine = fmt.Sprintf("Time bonus: %d", g.clearBonus)
		}
		g.renderOverlay(dst, "Board Cleared!", bonusLine)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score()))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	boardKills := 0
	if g.world != nil {
		boardKills = g.world.TotalEnemyDeaths()
	}
	hud := fmt.Sprintf(" %s — Score: %d  Lives: %d  Kills: %d/%d  Time: %2.0f",
		g.Title(), g.score(), g.lives(), boardKills, g.cfg.Gameplay.KillTarget, g.timer)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', platformcore.ColorGray)
	}
}

// renderBoard draws the playfield: terrain first, then markers, then the
// creatures, the player always on top.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	g.world.Each(func(_ core.Handle, a *core.Actor) {
		switch a.Kind {
		case core.KindWall:
			g.drawTile(dst, a, "██", platformcore.ColorBlue)
		case core.KindBlock:
			g.drawTile(dst, a, "▒▒", platformcore.ColorBrightCyan)
		case core.KindDiamond:
			g.drawTile(dst, a, "◆◆", platformcore.ColorBrightMagenta)
		case core.KindEgg:
			g.drawTile(dst, a, "▒▒", platformcore.ColorBrightGreen)
		}
	})

	g.world.Each(func(_ core.Handle, a *core.Actor) {
		if a.Kind == core.KindMarker {
			g.drawMarker(dst, a)
		}
	})

	g.world.Each(func(_ core.Handle, a *core.Actor) {
		if a.Kind == core.KindEnemy {
			g.drawEnemy(dst, a)
		}
	})

	if p := g.world.Player(); p != nil {
		g.drawPlayer(dst, p)
	}
}

// drawTile paints one two-column tile at the actor's position.
func (g *Game) drawTile(dst *platformcore.Screen, a *core.Actor, glyph string, c platformcore.Color) {
	x, y := g.cellAt(a.Pos)
	i := 0
	for _, r := range glyph {
		dst.SetCell(x+i, y, r, c)
		i++
	}
}

// drawPlayer picks the player sprite from its state and walk frame.
func (g *Game) drawPlayer(dst *platformcore.Screen, p *core.Actor) {
	switch p.PState {
	case core.PlayerActive:
		glyph := "()"
		if p.Frame == 1 {
			glyph = "{}"
		}
		g.drawTile(dst, p, glyph, platformcore.ColorBrightYellow)
	case core.PlayerDying:
		// Countdown frames flatten the penguin out.
		glyphs := []string{"__", "/\\", "()"}
		frame := p.Frame
		if frame < 0 {
			frame = 0
		}
		if frame >= len(glyphs) {
			frame = len(glyphs) - 1
		}
		g.drawTile(dst, p, glyphs[frame], platformcore.ColorBrightRed)
	case core.PlayerExhausted:
		g.drawTile(dst, p, "__", platformcore.ColorGray)
	}
}

// drawEnemy picks the enemy sprite from its life-cycle state.
func (g *Game) drawEnemy(dst *platformcore.Screen, e *core.Actor) {
	switch e.EState {
	case core.EnemyPatrol:
		glyph := "@@"
		if e.Frame == 1 {
			glyph = "oo"
		}
		c := platformcore.ColorRed
		if e.Hunt {
			c = platformcore.ColorBrightRed
		}
		g.drawTile(dst, e, glyph, c)
	case core.EnemyStunned:
		glyph := "zZ"
		if e.Frame == 1 {
			glyph = "Zz"
		}
		g.drawTile(dst, e, glyph, platformcore.ColorGray)
	case core.EnemyRespawning:
		g.drawTile(dst, e, "@@", platformcore.ColorGray)
	}
}

// drawMarker writes the score value where it was earned.
func (g *Game) drawMarker(dst *platformcore.Screen, m *core.Actor) {
	x, y := g.cellAt(m.Pos)
	dst.DrawTextColored(x, y, fmt.Sprintf("%d", m.MarkerValue), platformcore.ColorBrightYellow)
}

// cellAt maps a world position onto terminal cells.
func (g *Game) cellAt(pos core.Vec2) (int, int) {
	tile := g.world.Tuning().TileSize
	x := g.gridOffsetX + int(pos.X/tile*float64(g.cellW)+0.5)
	y := g.gridOffsetY + int(pos.Y/tile+0.5)
	return x, y
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := platformcore.Rect{
		X: (w - maxLen - 4) / 2,
		Y: (h - 5) / 2,
		W: maxLen + 4,
		H: 5,
	}

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+3, line2, platformcore.ColorGray)
}
