package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the authoritative session: who holds which point, how many stones
// are left in each hand and how long it has been since the last mill.
// Occupancy and hands are fixed-size arrays, so a copy of the struct is a full
// independent snapshot.
type GameState struct {
	Board     *Board            // Reference to the static topology
	Rules     Rules             // The variant's parameters
	Occupancy [NumPoints]Player // Owner per point, None when empty
	Hands     [Orange + 1]int   // Stones left in hand, indexed by Player
	Stalemate int               // Consecutive moves since the last mill
}

// NewGameState returns an empty board with full hands.
func NewGameState(b *Board, rules Rules) *GameState {
	gs := &GameState{
		Board: b,
		Rules: rules,
	}
	for _, p := range Players {
		gs.Hands[p] = rules.HandSize()
	}
	return gs
}

// New returns a fresh game on the standard board with the standard rules.
func New() *GameState {
	return NewGameState(StandardBoard, NewStandardRules())
}

// Copy returns an independent snapshot. Board and Rules are immutable and shared.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Occupant returns the owner of p, or None.
func (gs *GameState) Occupant(p Point) Player {
	if !p.Valid() {
		panic(fmt.Sprintf("occupant of unknown point %d", p))
	}
	return gs.Occupancy[p]
}

// HandCount returns the stones player has not placed yet.
func (gs *GameState) HandCount(player Player) int {
	return gs.Hands[player]
}

// OnBoardCount returns the number of points owned by player.
func (gs *GameState) OnBoardCount(player Player) int {
	count := 0
	for _, owner := range gs.Occupancy {
		if owner == player {
			count++
		}
	}
	return count
}

// TotalStones is what player still has in play, on the board and in hand.
func (gs *GameState) TotalStones(player Player) int {
	return gs.OnBoardCount(player) + gs.HandCount(player)
}

// Owned lists the points held by player in index order.
func (gs *GameState) Owned(player Player) []Point {
	var points []Point
	for p, owner := range gs.Occupancy {
		if owner == player {
			points = append(points, Point(p))
		}
	}
	return points
}

// Empty lists the unoccupied points in index order.
func (gs *GameState) Empty() []Point {
	return gs.Owned(None)
}

// CanFly reports whether player's board stones may move to any empty point.
func (gs *GameState) CanFly(player Player) bool {
	return gs.OnBoardCount(player) <= gs.Rules.FlyingStones()
}

// Phase derives player's phase from their own counts.
func (gs *GameState) Phase(player Player) Phase {
	switch {
	case gs.HandCount(player) > 0:
		return PlacingPhase
	case gs.CanFly(player):
		return FlyingPhase
	default:
		return MovingPhase
	}
}

// InMill reports whether p lies on a mill line fully held by owner.
func (gs *GameState) InMill(owner Player, p Point) bool {
	for _, m := range gs.Board.MillsAt(p) {
		if gs.Occupancy[m[0]] == owner && gs.Occupancy[m[1]] == owner && gs.Occupancy[m[2]] == owner {
			return true
		}
	}
	return false
}

// unprotected reports whether owner holds any stone outside a completed mill.
func (gs *GameState) unprotected(owner Player) bool {
	for p, o := range gs.Occupancy {
		if o == owner && !gs.InMill(owner, Point(p)) {
			return true
		}
	}
	return false
}

// put commits the source and destination halves of m for player without any checks.
func (gs *GameState) put(player Player, m Move) {
	if m.FromHand() {
		gs.Hands[player]--
	} else {
		gs.Occupancy[m.From] = None
	}
	gs.Occupancy[m.To] = player
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash ownerships
	for _, owner := range gs.Occupancy {
		hasher.Write([]byte{byte(owner)})
	}

	// Hash hands
	for _, p := range Players {
		binary.Write(hasher, binary.LittleEndian, int64(gs.Hands[p]))
	}

	// Hash stalemate counter
	binary.Write(hasher, binary.LittleEndian, int64(gs.Stalemate))

	return StateHash(hasher.Sum64())
}
