package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StateLoss        GameStateType = "loss"
	StatePausedSmall GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost's observable state.
type GhostSnapshot struct {
	X         float64
	Y         float64
	TileX     int
	TileY     int
	Dir       Direction
	Policy    Policy
	State     GhostState
	Countdown float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	MazeID  string
	Score   int
	Lives   int
	PlayerX float64
	PlayerY float64
	TileX   int
	TileY   int
	Dir     Direction
	Pending Direction
	Alive   bool
	Ghosts  []GhostSnapshot
	Pellets int
	Power   int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.over && g.win:
		state = StateWin
	case g.over:
		state = StateLoss
	case g.paused:
		state = StatePaused
	}

	ghosts := make([]GhostSnapshot, 0, len(g.ghosts))
	for _, gh := range g.ghosts {
		t := gh.Tile()
		ghosts = append(ghosts, GhostSnapshot{
			X:         gh.X,
			Y:         gh.Y,
			TileX:     t.X,
			TileY:     t.Y,
			Dir:       gh.Dir,
			Policy:    gh.Policy,
			State:     gh.State(),
			Countdown: gh.Countdown(),
		})
	}

	pt := g.player.Tile()
	return Snapshot{
		Tick:    g.tick,
		MazeID:  g.layout.ID,
		Score:   g.score,
		Lives:   g.lives,
		PlayerX: g.player.X,
		PlayerY: g.player.Y,
		TileX:   pt.X,
		TileY:   pt.Y,
		Dir:     g.player.Dir,
		Pending: g.player.Pending,
		Alive:   g.player.Alive,
		Ghosts:  ghosts,
		Pellets: g.maze.PelletsLeft(),
		Power:   g.maze.PowerPelletsLeft(),
		State:   state,
	}
}
