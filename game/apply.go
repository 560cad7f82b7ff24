package game

// Outcome describes what an applied move did.
type Outcome struct {
	Mill     bool
	Captured Point // NoPoint when nothing was removed
	// End is the termination status of the player who moves next.
	End Termination
}

// Apply validates m and, only if it is legal, commits it to gs: the stone is
// placed or moved, a capture removes the named stone and resets the stalemate
// counter, and any other move advances it. A rejected move leaves gs untouched.
func (gs *GameState) Apply(player Player, m Move) (Outcome, error) {
	mill, err := gs.Check(player, m)
	if err != nil {
		return Outcome{Captured: NoPoint}, err
	}

	gs.put(player, m)
	out := Outcome{Mill: mill, Captured: NoPoint}
	if mill {
		gs.Stalemate = 0
		if m.Capture != NoPoint {
			gs.Occupancy[m.Capture] = None
			out.Captured = m.Capture
		}
	} else {
		gs.Stalemate++
	}

	out.End = gs.Terminal(player.Opponent())
	return out, nil
}

// Play parses a wire-format move and applies it for player.
func (gs *GameState) Play(player Player, s string) (Move, Outcome, error) {
	m, err := ParseMove(s)
	if err != nil {
		return Move{}, Outcome{Captured: NoPoint}, err
	}
	out, err := gs.Apply(player, m)
	return m, out, err
}
