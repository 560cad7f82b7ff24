package game

import (
	"fmt"
	"strings"
)

// NoCaptureToken is the wire token for "nothing removed".
const NoCaptureToken = "r0"

// Move is the unit of state transition: a stone goes from a hand or a point to
// an empty point, optionally removing an opponent stone.
type Move struct {
	Hand    Player // hand the stone comes from, None for a board move
	From    Point  // source point, NoPoint for a placement
	To      Point
	Capture Point // NoPoint when nothing is removed
}

// Place builds a placement from player's hand.
func Place(player Player, to, capture Point) Move {
	return Move{Hand: player, From: NoPoint, To: to, Capture: capture}
}

// Shift builds a move of a stone already on the board.
func Shift(from, to, capture Point) Move {
	return Move{Hand: None, From: from, To: to, Capture: capture}
}

// FromHand reports whether the move places a stone from a hand.
func (m Move) FromHand() bool {
	return m.Hand != None
}

// WithCapture returns a copy of m removing the given point.
func (m Move) WithCapture(p Point) Move {
	m.Capture = p
	return m
}

// String renders the move in wire format: "SOURCE DESTINATION CAPTURE".
func (m Move) String() string {
	source := m.From.String()
	if m.FromHand() {
		source = m.Hand.HandMarker()
	}
	return fmt.Sprintf("%s %s %s", source, m.To, m.Capture)
}

// ParseMove decodes the wire format. Only a wrong token count is a parse error;
// labels that are not on the board decode to BadPoint and are rejected by Check.
func ParseMove(s string) (Move, error) {
	tokens := strings.Fields(strings.ToLower(s))
	if len(tokens) != 3 {
		return Move{}, &RuleError{
			Reason: ParseError,
			Move:   strings.TrimSpace(s),
			Detail: fmt.Sprintf("expected 3 tokens, got %d", len(tokens)),
		}
	}

	m := Move{Hand: None, From: NoPoint}
	switch tokens[0] {
	case Blue.HandMarker():
		m.Hand = Blue
	case Orange.HandMarker():
		m.Hand = Orange
	default:
		m.From = parsePoint(tokens[0])
	}
	m.To = parsePoint(tokens[1])
	if tokens[2] == NoCaptureToken {
		m.Capture = NoPoint
	} else {
		m.Capture = parsePoint(tokens[2])
	}
	return m, nil
}

func parsePoint(label string) Point {
	if p, ok := Lookup(label); ok {
		return p
	}
	return BadPoint
}
