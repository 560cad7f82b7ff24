package game

// Terminal evaluates whether the game is over from ref's point of view. ref
// loses when reduced to the losing stone count or when no legal move is left;
// a long run of moves without a mill ends the game for both players.
func (gs *GameState) Terminal(ref Player) Termination {
	if gs.TotalStones(ref) <= gs.Rules.LosingStones() {
		return Eliminated
	}
	if !gs.CanMove(ref) {
		return Immobilized
	}
	if gs.Stalemate >= gs.Rules.StalemateLimit() {
		return Stalemated
	}
	return Ongoing
}

// IsTerminal reports whether the game is over for ref.
func (gs *GameState) IsTerminal(ref Player) bool {
	return gs.Terminal(ref) != Ongoing
}

// CanMove reports whether player has at least one destination for a stone,
// from hand or from the board, honoring adjacency unless player can fly.
func (gs *GameState) CanMove(player Player) bool {
	empty := gs.Empty()
	if len(empty) == 0 {
		return false
	}
	if gs.HandCount(player) > 0 {
		return true
	}
	owned := gs.Owned(player)
	if len(owned) > 0 && gs.CanFly(player) {
		return true
	}
	for _, from := range owned {
		for _, to := range gs.Board.Neighbors(from) {
			if gs.Occupancy[to] == None {
				return true
			}
		}
	}
	return false
}
