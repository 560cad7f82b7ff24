package game

// Rules holds the numeric parameters of the variant being refereed.
type Rules interface {
	// HandSize is the number of stones each player starts with in hand.
	HandSize() int
	// FlyingStones is the on-board count at or below which a player may move anywhere.
	FlyingStones() int
	// LosingStones is the total stone count at or below which a player has lost.
	LosingStones() int
	// StalemateLimit is the number of consecutive moves without a mill that ends the game.
	StalemateLimit() int
}

type StandardRules struct {
	Stones    int
	Flying    int
	Losing    int
	Stalemate int
}

// NewStandardRules returns the Lasker Morris parameters: ten stones each, flying at three,
// losing at two, and a twenty-move stalemate window.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Stones:    10,
		Flying:    3,
		Losing:    2,
		Stalemate: 20,
	}
}

func (sr *StandardRules) HandSize() int {
	return sr.Stones
}

func (sr *StandardRules) FlyingStones() int {
	return sr.Flying
}

func (sr *StandardRules) LosingStones() int {
	return sr.Losing
}

func (sr *StandardRules) StalemateLimit() int {
	return sr.Stalemate
}
