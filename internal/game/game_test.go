package game

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/registry"
)

// testLayout keeps the ghosts well away from the player so scenario tests
// can drive each mechanic without accidental collisions.
var testLayout = Layout{
	ID:    "chomp-test",
	Title: "Chomp (test)",
	Rows: []string{
		"########",
		"#P.o...#",
		"#.######",
		"#.######",
		"#G######",
		"########",
	},
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(testLayout)
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1, ok := LayoutByID("chomp")
	if !ok {
		t.Fatal("classic layout missing")
	}
	a := New(g1)
	a.Reset(cfg)
	b := New(g1)
	b.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 30 {
			input.Set(core.ActionRight)
		}
		if i == 120 {
			input.Set(core.ActionDown)
		}
		a.Step(input)
		b.Step(input)
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("same seed and inputs should produce identical snapshots:\n%+v\nvs\n%+v",
			a.Snapshot(), b.Snapshot())
	}
}

func TestPelletScoring(t *testing.T) {
	g := newTestGame(t, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionRight)

	// A third of a second moving right crosses into the first pellet tile.
	for i := 0; i < 20; i++ {
		g.Step(input)
	}

	if g.score < g.cfg.Scoring.Pellet {
		t.Errorf("moving over a pellet should score, got %d", g.score)
	}
	if g.maze.HasPellet(Tile{X: 2, Y: 1}) {
		t.Error("the pellet under the player should be gone")
	}
}

func TestPowerPelletVulnerability(t *testing.T) {
	g := newTestGame(t, 2)

	input := core.NewInputFrame()
	input.Set(core.ActionRight)

	// Run right across the pellet at (2,1) and onto the power pellet at (3,1).
	for i := 0; i < 45; i++ {
		g.Step(input)
	}

	if g.maze.HasPowerPellet(Tile{X: 3, Y: 1}) {
		t.Fatal("the power pellet should have been consumed")
	}
	want := g.cfg.Scoring.Pellet + g.cfg.Scoring.PowerPellet
	if g.score < want {
		t.Errorf("expected at least %d points, got %d", want, g.score)
	}
	for i, gh := range g.ghosts {
		if !gh.Vulnerable() {
			t.Errorf("ghost %d should be vulnerable after a power pellet", i)
		}
	}
}

func TestCaptureScoresAndTeleports(t *testing.T) {
	g := newTestGame(t, 3)

	gh := g.ghosts[0]
	gh.SetVulnerable(7.0)
	gh.MoveTo(g.player.Tile())

	scoreBefore := g.score
	livesBefore := g.lives
	g.resolveCollisions()

	if g.score != scoreBefore+g.cfg.Scoring.Capture {
		t.Errorf("capture should award %d points, got %d", g.cfg.Scoring.Capture, g.score-scoreBefore)
	}
	if g.lives != livesBefore {
		t.Error("capturing a vulnerable ghost should not cost a life")
	}
	if gh.Tile() != g.maze.GhostSpawns()[0] {
		t.Errorf("captured ghost should be back at spawn, got %v", gh.Tile())
	}
	if gh.Vulnerable() {
		t.Error("captured ghost should be back to normal")
	}
}

func TestLifeLossResetsRound(t *testing.T) {
	g := newTestGame(t, 4)

	// Move the player off spawn, then collide with a normal ghost.
	g.player.MoveTo(Tile{X: 3, Y: 1})
	gh := g.ghosts[0]
	gh.MoveTo(Tile{X: 3, Y: 1})

	g.score = 70
	livesBefore := g.lives
	g.resolveCollisions()

	if g.lives != livesBefore-1 {
		t.Errorf("collision with a normal ghost should cost one life, got %d -> %d", livesBefore, g.lives)
	}
	if g.over {
		t.Error("game should continue while lives remain")
	}
	if g.score != 70 {
		t.Errorf("score should carry over a life loss, got %d", g.score)
	}
	if g.player.Tile() != g.maze.PlayerSpawn() {
		t.Errorf("player should be back at spawn, got %v", g.player.Tile())
	}
	if gh.Tile() != g.maze.GhostSpawns()[0] {
		t.Errorf("ghost should be back at spawn, got %v", gh.Tile())
	}
}

func TestLastLifeEndsRound(t *testing.T) {
	g := newTestGame(t, 5)

	g.lives = 1
	g.ghosts[0].MoveTo(g.player.Tile())
	g.resolveCollisions()

	if !g.over {
		t.Error("losing the last life should end the round")
	}
	if g.win {
		t.Error("a loss is not a win")
	}
	if g.player.Alive {
		t.Error("player should be dead at the end of a lost round")
	}

	snap := g.Snapshot()
	if snap.State != StateLoss {
		t.Errorf("snapshot state should be loss, got %s", snap.State)
	}
}

func TestClearingMazeWins(t *testing.T) {
	g := newTestGame(t, 6)

	// Eat everything except what the next step consumes naturally.
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			g.maze.Consume(Tile{X: x, Y: y})
		}
	}
	if !g.maze.Cleared() {
		t.Fatal("maze should be cleared")
	}

	g.Step(core.NewInputFrame())

	if !g.over || !g.win {
		t.Errorf("clearing the maze should win the round, over=%v win=%v", g.over, g.win)
	}
	snap := g.Snapshot()
	if snap.State != StateWin {
		t.Errorf("snapshot state should be win, got %s", snap.State)
	}

	// A finished round is frozen: direction input keeps arriving but
	// nothing beyond the tick counter may change.
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	after := g.Snapshot()
	if after.Score != snap.Score || after.Lives != snap.Lives {
		t.Errorf("post-win steps changed score/lives: %d/%d -> %d/%d",
			snap.Score, snap.Lives, after.Score, after.Lives)
	}
	after.Tick = snap.Tick
	if !reflect.DeepEqual(snap, after) {
		t.Error("post-win steps should not mutate the round")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 7)

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("pause should toggle on")
	}

	before := g.Snapshot()
	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if before.PlayerX != after.PlayerX || before.Score != after.Score {
		t.Error("a paused game should not advance")
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("pause should toggle off")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 8)

	g.score = 120
	g.lives = 1
	g.ghosts[0].MoveTo(g.player.Tile())
	g.resolveCollisions()
	if !g.over {
		t.Fatal("round should be over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.over {
		t.Error("restart should start a fresh round")
	}
	if g.score != 0 {
		t.Errorf("restart should reset the score, got %d", g.score)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("restart should restore lives, got %d", g.lives)
	}
	if !g.maze.HasPellet(Tile{X: 2, Y: 1}) {
		t.Error("restart should restore the collectibles")
	}
}

func TestRestartIgnoredMidRound(t *testing.T) {
	g := newTestGame(t, 9)

	g.score = 30
	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.score != 30 {
		t.Error("restart should be ignored while the round is live")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(testLayout)
	g.Reset(core.RuntimeConfig{
		Seed:     10,
		ScreenW:  6,
		ScreenH:  5,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Error("game should detect the window is too small")
	}
	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("state should be paused_small_window, got %s", snap.State)
	}

	// Stepping must not advance the simulation.
	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX {
		t.Error("too-small game should not advance")
	}
}

func TestGhostRoster(t *testing.T) {
	layout, ok := LayoutByID("chomp")
	if !ok {
		t.Fatal("classic layout missing")
	}
	g := New(layout)
	g.Reset(core.RuntimeConfig{Seed: 11, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if len(g.ghosts) != 4 {
		t.Fatalf("classic maze should field 4 ghosts, got %d", len(g.ghosts))
	}
	want := []Policy{PolicyChase, PolicyRandom, PolicyRandom, PolicyChase}
	for i, gh := range g.ghosts {
		if gh.Policy != want[i] {
			t.Errorf("ghost %d: expected policy %s, got %s", i, want[i], gh.Policy)
		}
	}
}

func TestRegisteredVariants(t *testing.T) {
	for _, id := range []string{"chomp", "chomp-gauntlet", "chomp-arena"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q should be registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q): %v", id, err)
			continue
		}
		if g.ID() != id {
			t.Errorf("Create(%q) returned ID %q", id, g.ID())
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 12)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("rendered screen should not be empty")
	}
	if !containsSubstring(content, "Score") {
		t.Error("HUD should show the score")
	}
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
