package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-chomp/internal/config"
	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

// ghostRoster assigns direction-choice policies to ghost spawns by their
// layout scan index.
var ghostRoster = [4]Policy{PolicyChase, PolicyRandom, PolicyRandom, PolicyChase}

// Game runs one maze variant: fixed-timestep simulation over a Maze, a
// Player, and a set of Ghosts.
type Game struct {
	layout Layout

	cfg        config.ChompConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	dt         float64

	maze   *Maze
	player *Player
	ghosts []*Ghost

	score int
	lives int

	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	screenW int
	screenH int

	over     bool
	win      bool
	paused   bool
	tooSmall bool
}

// Package-level config overrides, applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy/normal/hard/fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a game for the given maze layout.
func New(layout Layout) *Game {
	return &Game{layout: layout}
}

// ID returns the maze variant identifier.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.layout.Title
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.dt = cfg.Dt()
	g.score = 0
	g.over = false
	g.win = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	chompCfg, err := config.LoadChomp(configPath)
	if err != nil {
		chompCfg = config.DefaultChompConfig()
	}
	config.ApplyChompPreset(&chompCfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = chompCfg
	g.lives = chompCfg.Gameplay.Lives
	g.difficulty = config.NewDifficultyManager(chompCfg.Difficulty)

	g.maze = mustParse(g.layout.Rows)
	g.buildRound()

	// Check if screen is too small
	requiredW := g.maze.Width() + 2
	requiredH := g.maze.Height() + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map
	g.mapOffsetX = (g.screenW - g.maze.Width()) / 2
	g.mapOffsetY = g.hudHeight
}

// buildRound constructs the player and ghost roster from the maze spawns
// and the gameplay config.
func (g *Game) buildRound() {
	g.player = newPlayer(
		g.maze.PlayerSpawn(),
		g.cfg.Speeds.Player,
		g.cfg.Scoring.Pellet,
		g.cfg.Scoring.PowerPellet,
	)

	spawns := g.maze.GhostSpawns()
	g.ghosts = make([]*Ghost, 0, len(spawns))
	for i, spawn := range spawns {
		policy := ghostRoster[i%len(ghostRoster)]
		g.ghosts = append(g.ghosts, newGhost(spawn, policy, g.cfg.Speeds.Ghost, g.cfg.Speeds.VulnerableGhost))
	}
}

// resetRound puts every entity back on its spawn after a life is lost.
// Consumed collectibles stay consumed; score and maze state carry over.
func (g *Game) resetRound() {
	g.player.Reset()
	for _, gh := range g.ghosts {
		gh.Reset()
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(math.Round(1.0 / g.dt)),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffer direction input; the turn is admitted at the next legal
	// tile center.
	switch {
	case input.Has(core.ActionUp):
		g.player.RequestDirection(DirUp)
	case input.Has(core.ActionDown):
		g.player.RequestDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.player.RequestDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.player.RequestDirection(DirRight)
	}

	g.player.Tick(g.maze, g.dt)

	// Difficulty progression scales the ghosts' normal speed.
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.GhostSpeed(g.cfg.Speeds.Ghost, g.score, int(g.tick))
		for _, gh := range g.ghosts {
			gh.SetNormalSpeed(speed)
		}
	}

	playerTile := g.player.Tile()
	for _, gh := range g.ghosts {
		gh.Update(g.maze, playerTile, g.dt, g.rng)
	}

	// Eat whatever sits on the player's tile.
	points, power := g.player.ConsumeAtCurrentTile(g.maze)
	g.score += points
	if power {
		for _, gh := range g.ghosts {
			gh.SetVulnerable(g.cfg.Power.DurationSec)
		}
	}

	g.resolveCollisions()

	if !g.over && g.maze.Cleared() {
		g.over = true
		g.win = true
	}

	return core.StepResult{State: g.State()}
}

// resolveCollisions checks every ghost against the player's continuous
// position. A vulnerable ghost is captured for points; a normal ghost
// costs a life and, if any lives remain, resets the round.
func (g *Game) resolveCollisions() {
	for _, gh := range g.ghosts {
		dx := g.player.X - gh.X
		dy := g.player.Y - gh.Y
		if math.Hypot(dx, dy) >= g.cfg.Gameplay.CollisionRadius {
			continue
		}

		if gh.Vulnerable() {
			gh.Capture()
			g.score += g.cfg.Scoring.Capture
			continue
		}

		g.lives--
		if g.lives <= 0 {
			g.player.Alive = false
			g.over = true
			g.win = false
			return
		}
		g.resetRound()
		return
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	switch {
	case g.over && g.win:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Final Score: %d", g.score))
	case g.over:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Lives: %d  Pellets: %d",
		g.layout.Title, g.score, g.lives, g.maze.PelletsLeft()+g.maze.PowerPelletsLeft())

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and remaining collectibles.
func (g *Game) renderMaze(dst *core.Screen) {
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			t := Tile{X: x, Y: y}
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			switch {
			case g.maze.IsWall(t):
				dst.SetColored(sx, sy, '#', core.ColorBlue)
			case g.maze.HasPowerPellet(t):
				dst.SetColored(sx, sy, 'o', core.ColorBrightYellow)
			case g.maze.HasPellet(t):
				dst.SetColored(sx, sy, '·', core.ColorGray)
			}
		}
	}
}

// renderPlayer draws the player at its rounded tile.
func (g *Game) renderPlayer(dst *core.Screen) {
	if !g.player.Alive {
		return
	}
	t := g.player.Tile()
	dst.SetColored(g.mapOffsetX+t.X, g.mapOffsetY+t.Y, 'C', core.ColorBrightYellow)
}

// renderGhosts draws each ghost with its state treatment: normal ghosts
// in their body color, vulnerable ghosts blue (blinking white as the
// countdown runs out), captured ghosts gray for a short flash.
func (g *Game) renderGhosts(dst *core.Screen) {
	bodyColors := [4]core.Color{core.ColorRed, core.ColorMagenta, core.ColorCyan, core.ColorOrange}

	for i, gh := range g.ghosts {
		t := gh.Tile()
		color := bodyColors[i%len(bodyColors)]
		ch := 'M'
		switch gh.VisualState() {
		case GhostVulnerable:
			color = core.ColorBrightBlue
			if gh.Countdown() < 2.0 && (g.tick/15)%2 == 0 {
				color = core.ColorBrightWhite
			}
			ch = 'm'
		case GhostCaptured:
			color = core.ColorGray
			ch = 'x'
		}
		dst.SetColored(g.mapOffsetX+t.X, g.mapOffsetY+t.Y, ch, color)
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, core.Max(0, w-boxW))
	boxY := core.Clamp((h-boxH)/2, 0, core.Max(0, h-boxH))

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
		Won:      g.win,
		Paused:   g.paused,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

var _ registry.Game = (*Game)(nil)
