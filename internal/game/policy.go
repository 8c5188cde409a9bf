package game

import "math/rand"

// Policy names the direction-choice behavior of a ghost, fixed at
// creation.
type Policy string

const (
	PolicyChase  Policy = "chaser"
	PolicyRandom Policy = "random"
)

// ghostPolicy decides which of the candidate directions a ghost takes at
// a tile center. Candidates arrive in the fixed scan order and are never
// empty.
type ghostPolicy interface {
	Choose(from, player Tile, candidates []Direction, rng *rand.Rand) Direction
}

func policyFor(p Policy) ghostPolicy {
	if p == PolicyChase {
		return chasePolicy{}
	}
	return randomPolicy{}
}

// chasePolicy is the one-step greedy pursuit heuristic: it takes the
// direction whose neighbor tile minimizes Manhattan distance to the
// player. Ties resolve to the first minimal candidate in scan order, so
// the choice is fully deterministic.
type chasePolicy struct{}

func (chasePolicy) Choose(from, player Tile, candidates []Direction, _ *rand.Rand) Direction {
	best := candidates[0]
	bestDist := from.Add(best).Manhattan(player)
	for _, d := range candidates[1:] {
		if dist := from.Add(d).Manhattan(player); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// randomPolicy picks uniformly among the candidates.
type randomPolicy struct{}

func (randomPolicy) Choose(_, _ Tile, candidates []Direction, rng *rand.Rand) Direction {
	return candidates[rng.Intn(len(candidates))]
}
