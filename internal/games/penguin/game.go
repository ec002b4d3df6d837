// Package penguin provides the penguin arcade game: slide ice blocks,
// squash the creatures roaming the board, and line up the diamonds.
package penguin

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/dww100/untitled-penguin-game/internal/config"
	platformcore "github.com/dww100/untitled-penguin-game/internal/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin/core"
	"github.com/dww100/untitled-penguin-game/internal/games/penguin/levels"
	"github.com/dww100/untitled-penguin-game/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeHunt    Mode = "hunt"
)

// Banner durations in seconds.
const (
	readyTime = 2.0 // pre-board "get ready" banner
	clearTime = 2.0 // board-clear banner
)

// Game implements the penguin game session: board progression, the round
// clock, score carry-over, and rendering. The simulation itself lives in
// the core package; Game owns one World per board.
type Game struct {
	mode Mode
	rng  *rand.Rand

	cfg        config.PenguinConfig
	difficulty *config.DifficultyManager

	world      *core.World
	boards     []levels.Board
	boardIndex int
	startBoard string // board pinned at launch, kept across restarts

	tick     uint64
	tickRate int
	dt       float64 // seconds per tick
	timer    float64 // seconds left on the round clock

	// Banked from finished boards
	carriedScore  int
	carriedKills  int
	boardsCleared int
	livesLeft     int

	// Session flags
	ready      bool
	readyTicks int
	cleared    bool
	clearTicks int
	clearBonus int
	gameOver   bool
	won        bool
	paused     bool
	tooSmall   bool

	// Events translated for the platform
	events []platformcore.Event

	// Screen layout
	screenW     int
	screenH     int
	hudHeight   int
	cellW       int // terminal columns per tile
	gridOffsetX int
	gridOffsetY int
}

// Launch options the CLI and menus set before Reset runs. The mutex
// matters for the SSH server, where sessions share this package state.
var (
	optMu            sync.Mutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	boardsDir        string
	selectedBoard    string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	optMu.Lock()
	configPath = path
	optMu.Unlock()
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	optMu.Lock()
	defer optMu.Unlock()
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	}
}

// SetBoardsDir overrides the directory scanned for custom boards.
func SetBoardsDir(dir string) {
	optMu.Lock()
	boardsDir = dir
	optMu.Unlock()
}

// SetStartBoard pins the starting board by ID. Empty means the first
// board in ID order. The pin is consumed by the next Reset.
func SetStartBoard(id string) {
	optMu.Lock()
	selectedBoard = id
	optMu.Unlock()
}

// GetStartBoard returns the currently selected start board.
func GetStartBoard() string {
	optMu.Lock()
	defer optMu.Unlock()
	return selectedBoard
}

// launchOptions snapshots the launch options and consumes the board pin.
func launchOptions() (cfgPath string, preset config.DifficultyPreset, boardsRoot, startBoard string) {
	optMu.Lock()
	defer optMu.Unlock()
	startBoard = selectedBoard
	selectedBoard = ""
	boardsRoot = boardsDir
	if boardsRoot == "" {
		boardsRoot = config.UserBoardsDir()
	}
	return configPath, difficultyPreset, boardsRoot, startBoard
}

// customBoardsRoot returns the directory scanned for user boards.
func customBoardsRoot() string {
	optMu.Lock()
	dir := boardsDir
	optMu.Unlock()
	if dir != "" {
		return dir
	}
	return config.UserBoardsDir()
}

// AvailableBoards returns every board the game can currently see: the
// builtin set plus any custom boards on disk, custom winning ID clashes.
func AvailableBoards() []levels.Board {
	boards, err := levels.Available(customBoardsRoot())
	if err != nil {
		return nil
	}
	return boards
}

// New creates a new classic mode penguin game.
func New() *Game {
	return &Game{
		mode:      ModeClassic,
		hudHeight: 2,
		cellW:     2, // each tile is 2 chars wide, 1 line tall
	}
}

// NewHunt creates a new hunt mode game: every enemy chases, boards
// cycle endlessly, and the difficulty keeps climbing.
func NewHunt() *Game {
	g := New()
	g.mode = ModeHunt
	return g
}

func init() {
	registry.Register("penguin", func() registry.Game {
		return New()
	})
	registry.Register("penguin_hunt", func() registry.Game {
		return NewHunt()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeHunt {
		return "penguin_hunt"
	}
	return "penguin"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeHunt {
		return "Penguin (Hunt)"
	}
	return "Penguin"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.dt = 1.0 / float64(g.tickRate)

	cfgPath, preset, boardsRoot, startBoard := launchOptions()

	// Load game config
	cfg, err := config.LoadPenguin(cfgPath)
	if err != nil {
		cfg = config.DefaultPenguinConfig()
	}
	if preset != "" {
		config.ApplyPenguinPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.carriedScore = 0
	g.carriedKills = 0
	g.boardsCleared = 0
	g.livesLeft = cfg.Gameplay.Lives
	g.gameOver = false
	g.won = false
	g.paused = false
	g.events = nil

	// Load boards
	boards, err := levels.Available(boardsRoot)
	if err != nil || len(boards) == 0 {
		g.gameOver = true
		return
	}
	g.boards = boards

	// A board pinned at launch sticks to this session across restarts
	if startBoard == "" {
		startBoard = g.startBoard
	}
	g.startBoard = startBoard

	g.boardIndex = 0
	if startBoard != "" {
		for i, b := range boards {
			if b.ID == startBoard {
				g.boardIndex = i
				break
			}
		}
	}

	g.loadBoard()
}

// loadBoard builds a fresh world for the current board and arms the
// ready banner.
func (g *Game) loadBoard() {
	board := g.boards[g.boardIndex%len(g.boards)]

	world, err := board.NewWorld(g.boardTuning(), g.rng, g.livesLeft)
	if err != nil {
		g.gameOver = true
		return
	}
	if g.mode == ModeHunt {
		world.SetHunt(true)
	}
	g.world = world

	g.timer = g.cfg.Gameplay.TimeLimit
	g.cleared = false
	g.clearTicks = 0
	g.clearBonus = 0
	g.ready = true
	g.readyTicks = 0

	g.layout()
}

// boardTuning builds the engine ruleset from config, with enemy speed
// and chase probability scaled by session difficulty.
func (g *Game) boardTuning() core.Tuning {
	t := core.DefaultTuning()
	t.PlayerSpeed = g.cfg.Speeds.Player
	t.BlockSpeed = g.cfg.Speeds.Block
	t.EnemySpeed = g.difficulty.EnemySpeed(g.cfg.Speeds.Enemy, g.boardsCleared, int(g.tick))
	t.EnemyIQ = g.difficulty.EnemyIQ(g.cfg.Enemy.IQ, g.boardsCleared, int(g.tick))
	t.StunTime = g.cfg.Enemy.StunTime
	t.RespawnTime = g.cfg.Enemy.RespawnTime
	t.EnemyKillPoints = g.cfg.Scoring.EnemyKill
	t.EggBreakPoints = g.cfg.Scoring.EggBreak
	t.DiamondBonus = g.cfg.Scoring.DiamondBonus
	t.StunBonusFactor = g.cfg.Scoring.StunFactor
	t.StartLives = g.cfg.Gameplay.Lives
	return t
}

// layout centers the board on screen and checks it fits.
func (g *Game) layout() {
	cols, rows := g.world.GridSize()
	requiredW := cols*g.cellW + 2
	requiredH := rows + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (g.screenW - cols*g.cellW) / 2
	g.gridOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Handle restart
	if input.Has(platformcore.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, or the window shrank
	if g.gameOver || g.won || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Pre-board banner
	if g.ready {
		g.readyTicks++
		if g.readyTicks >= int(readyTime/g.dt) {
			g.ready = false
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Board-clear banner
	if g.cleared {
		g.clearTicks++
		if g.clearTicks >= int(clearTime/g.dt) {
			g.advanceBoard()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Live simulation
	g.translateEvents(g.world.Step(pollInput(input), g.dt))

	// Round clock
	g.timer -= g.dt
	if g.timer <= 0 {
		g.timer = 0
		g.gameOver = true
		return platformcore.StepResult{State: g.State(), Events: g.events}
	}

	// Out of lives
	if p := g.world.Player(); p != nil && p.PState == core.PlayerExhausted {
		g.gameOver = true
		return platformcore.StepResult{State: g.State(), Events: g.events}
	}

	// Enough kills clear the board
	if g.world.TotalEnemyDeaths() >= g.cfg.Gameplay.KillTarget {
		g.finishBoard()
	}

	return platformcore.StepResult{State: g.State(), Events: g.events}
}

// pollInput translates platform actions into an engine input poll.
func pollInput(input platformcore.InputFrame) core.Input {
	return core.Input{
		Up:    input.Has(platformcore.ActionUp),
		Down:  input.Has(platformcore.ActionDown),
		Left:  input.Has(platformcore.ActionLeft),
		Right: input.Has(platformcore.ActionRight),
		Push:  input.Has(platformcore.ActionPush),
	}
}

// translateEvents maps engine events onto platform events.
func (g *Game) translateEvents(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventPush:
			g.events = append(g.events, platformcore.EventPush)
		case core.EventElectric:
			g.events = append(g.events, platformcore.EventElectric)
		case core.EventBreak:
			g.events = append(g.events, platformcore.EventBreak)
		case core.EventPlayerDeath:
			g.events = append(g.events, platformcore.EventPlayerDeath)
		case core.EventEnemyDeath:
			g.events = append(g.events, platformcore.EventEnemyDeath)
		case core.EventBonus:
			g.events = append(g.events, platformcore.EventBonus)
		case core.EventStun:
			g.events = append(g.events, platformcore.EventStun)
		}
	}
}

// finishBoard awards the clearance bonus and starts the banner.
func (g *Game) finishBoard() {
	// Fast clears pay out: one bonus unit for finishing with half the
	// clock left, another per 10 spare seconds beyond that.
	g.clearBonus = 0
	half := g.cfg.Gameplay.TimeLimit / 2
	if g.timer >= half {
		steps := int((g.timer - half) / 10)
		g.clearBonus = (1 + steps) * g.cfg.Gameplay.ClearanceBonus
	}
	if g.clearBonus > 0 {
		g.events = append(g.events, platformcore.EventBonus)
	}
	g.cleared = true
	g.clearTicks = 0
}

// advanceBoard banks the board's score and moves on.
func (g *Game) advanceBoard() {
	g.carriedScore += g.world.Score() + g.clearBonus
	g.carriedKills += g.world.TotalEnemyDeaths()
	if p := g.world.Player(); p != nil {
		g.livesLeft = p.Lives
	}
	g.boardsCleared++
	g.boardIndex++

	// Classic mode ends after the last board; hunt mode cycles forever.
	if g.mode == ModeClassic && g.boardIndex >= len(g.boards) {
		g.won = true
		return
	}
	g.loadBoard()
}

// score returns the session total: banked boards plus the live world,
// plus the pending clearance bonus during the banner.
func (g *Game) score() int {
	s := g.carriedScore
	if g.world != nil {
		s += g.world.Score()
	}
	if g.cleared {
		s += g.clearBonus
	}
	return s
}

// kills returns the session kill count.
func (g *Game) kills() int {
	k := g.carriedKills
	if g.world != nil {
		k += g.world.TotalEnemyDeaths()
	}
	return k
}

// lives returns the player's remaining lives.
func (g *Game) lives() int {
	if g.world != nil {
		if p := g.world.Player(); p != nil {
			return p.Lives
		}
	}
	return g.livesLeft
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score(),
		Lives:    g.lives(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// RunStats reports extended statistics for the session, for persistence
// alongside the score.
func (g *Game) RunStats() platformcore.RunStats {
	return platformcore.RunStats{
		BoardsCleared: g.boardsCleared,
		Kills:         g.kills(),
		DurationSecs:  int(float64(g.tick) * g.dt),
		Won:           g.won,
	}
}

// currentBoard returns the board being played.
func (g *Game) currentBoard() levels.Board {
	if len(g.boards) == 0 {
		return levels.Board{}
	}
	return g.boards[g.boardIndex%len(g.boards)]
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Board: %s\n", g.tick, g.score(), g.currentBoard().ID))
	b.WriteString(fmt.Sprintf("Timer: %.1f, Kills: %d/%d, Lives: %d\n", g.timer, g.kills(), g.cfg.Gameplay.KillTarget, g.lives()))
	b.WriteString(fmt.Sprintf("Ready: %v, Cleared: %v, GameOver: %v, Won: %v, Paused: %v\n", g.ready, g.cleared, g.gameOver, g.won, g.paused))
	return b.String()
}
