package engine

import (
	"fmt"

	"lasker/game"
)

// Update is one committed move in the session log.
type Update struct {
	Step     int
	Player   game.Player
	Move     game.Move
	Fallback bool // Proposed by the fallback agent
	Outcome  game.Outcome
	Hash     game.StateHash
}

// Result is how a session ended. Reason is Ongoing when the turn limit was hit.
type Result struct {
	Winner game.Player // None on a draw
	Reason game.Termination
	Turns  int
}

func (r Result) Draw() bool {
	return r.Winner == game.None
}

func (r Result) String() string {
	switch {
	case r.Reason == game.Ongoing:
		return fmt.Sprintf("draw: turn limit reached after %d moves", r.Turns)
	case r.Draw():
		return fmt.Sprintf("draw: %s after %d moves", r.Reason, r.Turns)
	default:
		return fmt.Sprintf("%s wins: %s %s after %d moves", r.Winner, r.Winner.Opponent(), r.Reason, r.Turns)
	}
}

// Decide maps the termination of the player about to move to a result.
func Decide(ref game.Player, end game.Termination, turns int) Result {
	r := Result{Reason: end, Turns: turns}
	switch end {
	case game.Eliminated, game.Immobilized:
		r.Winner = ref.Opponent()
	}
	return r
}
