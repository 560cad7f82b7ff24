package agent

import (
	"context"
	"errors"

	"lasker/game"
)

// ErrNoMove is returned by an Agent that has nothing to propose.
var ErrNoMove = errors.New("no move available")

// Agent proposes a move for the player in view, in the "SOURCE DEST CAPTURE"
// wire format. The proposal is untrusted: callers validate it before use.
type Agent interface {
	Propose(ctx context.Context, view View) (string, error)
}

// Cell is the occupancy of one labelled point.
type Cell struct {
	Label    string
	Occupant string // "blue", "orange" or "empty"
}

// View is a read-only snapshot of a session handed to an Agent.
type View struct {
	Player    game.Player
	Board     []Cell
	Hands     map[game.Player]int
	Mills     [][3]string
	Stalemate int

	state game.GameState
}

// NewView snapshots gs for player.
func NewView(gs *game.GameState, player game.Player) View {
	v := View{
		Player:    player,
		Hands:     make(map[game.Player]int, len(game.Players)),
		Stalemate: gs.Stalemate,
		state:     *gs,
	}
	for _, p := range gs.Board.Points() {
		occupant := "empty"
		if owner := gs.Occupant(p); owner != game.None {
			occupant = owner.String()
		}
		v.Board = append(v.Board, Cell{Label: p.String(), Occupant: occupant})
	}
	for _, p := range game.Players {
		v.Hands[p] = gs.HandCount(p)
	}
	for _, m := range gs.Board.Mills() {
		v.Mills = append(v.Mills, [3]string{m[0].String(), m[1].String(), m[2].String()})
	}
	return v
}

// State returns a private copy of the snapshotted game.
func (v View) State() *game.GameState {
	c := v.state
	return &c
}

// Hand is the number of stones the viewing player has left to place.
func (v View) Hand() int {
	return v.Hands[v.Player]
}
