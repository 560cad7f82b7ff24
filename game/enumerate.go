package game

// Candidates returns every structurally legal (source, destination) pair for
// player with the capture left as NoPoint: placements while the hand is not
// empty and board moves to adjacent empty points, or to any empty point when
// player can fly. Captures are resolved separately with Captures.
func (gs *GameState) Candidates(player Player) []Move {
	var moves []Move
	empty := gs.Empty()

	if gs.HandCount(player) > 0 {
		for _, to := range empty {
			moves = append(moves, Place(player, to, NoPoint))
		}
	}

	flying := gs.CanFly(player)
	for _, from := range gs.Owned(player) {
		if flying {
			for _, to := range empty {
				moves = append(moves, Shift(from, to, NoPoint))
			}
			continue
		}
		for _, to := range gs.Board.Neighbors(from) {
			if gs.Occupancy[to] == None {
				moves = append(moves, Shift(from, to, NoPoint))
			}
		}
	}
	return moves
}

// Captures returns the opponent stones player may remove after playing the
// source and destination of m. It is empty when m does not close a mill or the
// opponent has no stone on the board. Stones inside a completed mill are only
// offered when every opponent stone is inside one.
func (gs *GameState) Captures(player Player, m Move) []Point {
	next := gs.Copy()
	next.put(player, m)
	if !next.InMill(player, m.To) {
		return nil
	}

	opponent := player.Opponent()
	var exposed, protected []Point
	for _, p := range next.Owned(opponent) {
		if next.InMill(opponent, p) {
			protected = append(protected, p)
		} else {
			exposed = append(exposed, p)
		}
	}
	if len(exposed) > 0 {
		return exposed
	}
	return protected
}

// LegalMoves returns every fully resolved legal move for player: each
// candidate paired with each capture it allows, or with NoPoint when it
// closes no mill.
func (gs *GameState) LegalMoves(player Player) []Move {
	var moves []Move
	for _, c := range gs.Candidates(player) {
		captures := gs.Captures(player, c)
		if len(captures) == 0 {
			moves = append(moves, c)
			continue
		}
		for _, p := range captures {
			moves = append(moves, c.WithCapture(p))
		}
	}
	return moves
}

// Resolve pairs a candidate with a capture chosen by policy, or NoPoint when
// the candidate closes no mill.
func (gs *GameState) Resolve(player Player, candidate Move, policy CapturePolicy) Move {
	captures := gs.Captures(player, candidate)
	if len(captures) == 0 {
		return candidate.WithCapture(NoPoint)
	}
	return candidate.WithCapture(policy(captures))
}
