package game

// Check decides whether player may play m on gs and reports whether the move
// closes a mill. The checks run in a fixed order and the first failure is
// returned as a *RuleError. gs is never modified: the mill and capture checks
// run on a copy.
func (gs *GameState) Check(player Player, m Move) (mill bool, err error) {
	// Source
	if m.FromHand() {
		if m.Hand != player {
			return false, reject(IllegalSource, m, "%s cannot place from %s's hand", player, m.Hand)
		}
		if gs.HandCount(player) == 0 {
			return false, reject(IllegalSource, m, "%s has no stones in hand", player)
		}
	} else {
		if !m.From.Valid() {
			return false, reject(IllegalSource, m, "source is not a board point")
		}
		if gs.Occupancy[m.From] != player {
			return false, reject(IllegalSource, m, "%s does not hold %s", player, m.From)
		}
	}

	// Destination
	if !m.To.Valid() {
		return false, reject(IllegalSource, m, "destination is not a board point")
	}
	if owner := gs.Occupancy[m.To]; owner != None {
		return false, reject(IllegalDestination, m, "%s is occupied by %s", m.To, owner)
	}
	if !m.FromHand() && !gs.CanFly(player) && !gs.Board.Adjacent(m.From, m.To) {
		return false, reject(IllegalDestination, m, "%s is not adjacent to %s", m.To, m.From)
	}

	// Mill
	next := gs.Copy()
	next.put(player, m)
	mill = next.InMill(player, m.To)

	// Capture
	opponent := player.Opponent()
	if !mill {
		if m.Capture != NoPoint {
			return false, reject(SpuriousCapture, m, "no mill formed at %s", m.To)
		}
		return false, nil
	}
	if m.Capture == NoPoint {
		if next.OnBoardCount(opponent) == 0 {
			// Nothing to take; the mill still counts.
			return true, nil
		}
		return true, reject(IllegalCapture, m, "mill formed at %s, a capture is required", m.To)
	}
	if !m.Capture.Valid() {
		return true, reject(IllegalCapture, m, "capture is not a board point")
	}
	if next.Occupancy[m.Capture] != opponent {
		return true, reject(IllegalCapture, m, "%s is not held by %s", m.Capture, opponent)
	}
	if next.InMill(opponent, m.Capture) && next.unprotected(opponent) {
		return true, reject(IllegalCapture, m, "%s is protected by a mill", m.Capture)
	}
	return true, nil
}

// IsLegal is Check without the details.
func (gs *GameState) IsLegal(player Player, m Move) bool {
	_, err := gs.Check(player, m)
	return err == nil
}
