package core

// RuntimeConfig is what the platform hands a game at Reset: the screen
// it may draw into, the tick rate its dt derives from, and the RNG seed
// that makes a round reproducible.
type RuntimeConfig struct {
	ScreenW  int   // screen width in cells
	ScreenH  int   // screen height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24, 60 tick/s configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Dt returns the fixed timestep in seconds. A non-positive tick rate
// falls back to 60 so dt is always usable.
func (c RuntimeConfig) Dt() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState is the slice of game status the platform needs between
// ticks: what to show in a result screen and whether to keep ticking.
type GameState struct {
	Score    int
	GameOver bool // the round has ended
	Won      bool // meaningful only when GameOver: win or loss
	Paused   bool
}

// StepResult is returned from every Game.Step call.
type StepResult struct {
	State GameState
}
