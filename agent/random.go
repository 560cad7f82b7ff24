package agent

import (
	"context"

	"lasker/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the enumerated candidates and resolves the
// capture with a random policy. Its proposals are always legal.
type Random struct {
	rng     *rand.Rand
	capture game.CapturePolicy
}

func NewRandom(seed uint64) *Random {
	rng := rand.New(rand.NewSource(seed))
	return &Random{
		rng:     rng,
		capture: game.RandomCapture(rng),
	}
}

func (r *Random) Propose(_ context.Context, view View) (string, error) {
	gs := view.State()
	candidates := gs.Candidates(view.Player)
	if len(candidates) == 0 {
		return "", ErrNoMove
	}
	c := candidates[r.rng.Intn(len(candidates))]
	return gs.Resolve(view.Player, c, r.capture).String(), nil
}
