package game

// Player is the user-controlled entity. Direction requests are buffered
// in Pending and honored only at the next tile center where the turn is
// legal.
type Player struct {
	mover
	Pending Direction
	Alive   bool

	spawn        Tile
	pelletPoints int
	powerPoints  int
}

func newPlayer(spawn Tile, speed float64, pelletPoints, powerPoints int) *Player {
	p := &Player{
		spawn:        spawn,
		pelletPoints: pelletPoints,
		powerPoints:  powerPoints,
	}
	p.Speed = speed
	p.Reset()
	return p
}

// Reset restores the player to its spawn tile, standing still and alive.
func (p *Player) Reset() {
	p.MoveTo(p.spawn)
	p.Dir = DirNone
	p.Pending = DirNone
	p.Alive = true
}

// RequestDirection buffers a turn request. It does not move the player.
func (p *Player) RequestDirection(d Direction) {
	if d != DirNone {
		p.Pending = d
	}
}

// Tick admits a pending turn if the player is at a tile center and the
// target tile is passable, then advances the position.
func (p *Player) Tick(mz *Maze, dt float64) {
	if p.Pending != p.Dir && p.AtCenter() && p.CanMove(mz, p.Pending) {
		p.Dir = p.Pending
	}
	p.Advance(mz, dt)
}

// ConsumeAtCurrentTile eats whatever collectible sits on the player's
// rounded tile. It returns the score gained and whether a power pellet
// was triggered. Eating is idempotent within a tick: the maze removes a
// collectible at most once.
func (p *Player) ConsumeAtCurrentTile(mz *Maze) (points int, power bool) {
	pellet, pow := mz.Consume(p.Tile())
	if pellet {
		points += p.pelletPoints
	}
	if pow {
		points += p.powerPoints
		power = true
	}
	return points, power
}
