package game

type StateHash uint64

// Phase describes what a single player is currently doing. It is derived from
// that player's counts on demand and never stored.
type Phase int

const (
	PlacingPhase Phase = iota
	MovingPhase
	FlyingPhase
)

func (p Phase) String() string {
	switch p {
	case PlacingPhase:
		return "placing"
	case MovingPhase:
		return "moving"
	case FlyingPhase:
		return "flying"
	default:
		return "unknown"
	}
}

// Termination explains why a game ended for a reference player.
type Termination int

const (
	Ongoing Termination = iota
	Eliminated
	Immobilized
	Stalemated
)

func (t Termination) String() string {
	switch t {
	case Ongoing:
		return "ongoing"
	case Eliminated:
		return "eliminated"
	case Immobilized:
		return "immobilized"
	case Stalemated:
		return "stalemate"
	default:
		return "unknown"
	}
}

// CapturePolicy picks which stone to remove among legal capture targets.
// Candidates is never empty when a policy is invoked.
type CapturePolicy func(candidates []Point) Point
