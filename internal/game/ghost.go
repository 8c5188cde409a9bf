package game

import "math/rand"

// GhostState is the vulnerability state machine over a ghost.
type GhostState int

const (
	GhostNormal GhostState = iota
	GhostVulnerable
	GhostCaptured
)

func (s GhostState) String() string {
	switch s {
	case GhostVulnerable:
		return "vulnerable"
	case GhostCaptured:
		return "captured"
	default:
		return "normal"
	}
}

// captureFlashTicks is how long a captured ghost renders in its
// "captured" treatment after the teleport back to spawn.
const captureFlashTicks = 12

// Ghost is an autonomous adversary. Its direction-choice policy is fixed
// at creation; its speed derives from the vulnerability state.
type Ghost struct {
	mover
	Policy Policy

	state GhostState
	timer float64 // seconds of vulnerability remaining

	spawn           Tile
	normalSpeed     float64
	vulnerableSpeed float64
	policy          ghostPolicy
	flash           int
}

func newGhost(spawn Tile, policy Policy, normalSpeed, vulnerableSpeed float64) *Ghost {
	g := &Ghost{
		Policy:          policy,
		spawn:           spawn,
		normalSpeed:     normalSpeed,
		vulnerableSpeed: vulnerableSpeed,
		policy:          policyFor(policy),
	}
	g.Reset()
	return g
}

// Reset restores the ghost to its spawn tile in normal state.
func (g *Ghost) Reset() {
	g.MoveTo(g.spawn)
	g.Dir = DirNone
	g.state = GhostNormal
	g.timer = 0
	g.Speed = g.normalSpeed
	g.flash = 0
}

// State returns the ghost's current vulnerability state.
func (g *Ghost) State() GhostState { return g.state }

// Countdown returns the seconds of vulnerability remaining. Meaningful
// only while vulnerable.
func (g *Ghost) Countdown() float64 { return g.timer }

// Vulnerable reports whether the ghost can currently be captured.
func (g *Ghost) Vulnerable() bool { return g.state == GhostVulnerable }

// VisualState maps the ghost to one of the three render treatments.
// A just-captured ghost keeps the captured treatment for a short flash.
func (g *Ghost) VisualState() GhostState {
	if g.flash > 0 {
		return GhostCaptured
	}
	return g.state
}

// SetVulnerable puts the ghost into the vulnerable state with a full
// countdown. An already-vulnerable ghost has its countdown refreshed,
// not extended.
func (g *Ghost) SetVulnerable(duration float64) {
	g.state = GhostVulnerable
	g.timer = duration
	g.Speed = g.vulnerableSpeed
}

// SetNormalSpeed updates the ghost's normal-state speed (difficulty
// progression). Takes effect immediately unless the ghost is vulnerable.
func (g *Ghost) SetNormalSpeed(speed float64) {
	g.normalSpeed = speed
	if g.state == GhostNormal {
		g.Speed = speed
	}
}

// Capture resolves a capture by the player: the ghost passes through the
// captured state, teleports to its spawn with its direction cleared, and
// immediately returns to normal at full speed. There is no travel-back
// phase.
func (g *Ghost) Capture() {
	g.state = GhostCaptured
	g.MoveTo(g.spawn)
	g.Dir = DirNone
	g.state = GhostNormal
	g.timer = 0
	g.Speed = g.normalSpeed
	g.flash = captureFlashTicks
}

// Update runs one simulation tick: countdown, direction choice at tile
// centers (or when blocked), then movement.
func (g *Ghost) Update(mz *Maze, playerTile Tile, dt float64, rng *rand.Rand) {
	if g.flash > 0 {
		g.flash--
	}

	if g.state == GhostVulnerable {
		g.timer -= dt
		if g.timer <= 0 {
			g.state = GhostNormal
			g.timer = 0
			g.Speed = g.normalSpeed
		}
	}

	g.chooseDirection(mz, playerTile, rng)
	g.Advance(mz, dt)
}

// chooseDirection re-evaluates the policy when the ghost sits at a tile
// center or its current direction is blocked. Reversing is excluded
// unless it is the only way out of a dead end.
func (g *Ghost) chooseDirection(mz *Maze, playerTile Tile, rng *rand.Rand) {
	blocked := !g.CanMove(mz, g.Dir)
	if blocked {
		// Advance will freeze at the center this tick; decide here so
		// movement resumes immediately.
		g.MoveTo(g.Tile())
	}
	if !blocked && !g.AtCenter() {
		return
	}

	from := g.Tile()
	candidates := g.availableDirections(mz, from, true)
	if len(candidates) == 0 {
		candidates = g.availableDirections(mz, from, false)
	}
	if len(candidates) == 0 {
		return
	}

	if g.state == GhostVulnerable {
		// Vulnerable ghosts flee into randomness regardless of policy.
		g.Dir = candidates[rng.Intn(len(candidates))]
		return
	}
	g.Dir = g.policy.Choose(from, playerTile, candidates, rng)
}

// availableDirections lists passable directions from the tile in scan
// order, optionally excluding the reverse of the current direction.
func (g *Ghost) availableDirections(mz *Maze, from Tile, avoidReverse bool) []Direction {
	reverse := g.Dir.Opposite()
	options := make([]Direction, 0, 4)
	for _, d := range scanOrder {
		if avoidReverse && d == reverse && reverse != DirNone {
			continue
		}
		if mz.Passable(from.Add(d)) {
			options = append(options, d)
		}
	}
	return options
}
