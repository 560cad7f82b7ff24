package game

import (
	"fmt"
	"strings"
)

// Player identifies a side. None marks an empty point.
type Player int8

const (
	None Player = iota
	Blue
	Orange
)

// Players lists both sides in turn order; Blue moves first.
var Players = []Player{Blue, Orange}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Orange
	case Orange:
		return Blue
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	default:
		return "none"
	}
}

// Symbol is the single character used when rendering the board.
func (p Player) Symbol() string {
	switch p {
	case Blue:
		return "B"
	case Orange:
		return "O"
	default:
		return "+"
	}
}

// HandMarker is the wire token for a stone taken from this player's hand.
func (p Player) HandMarker() string {
	switch p {
	case Blue:
		return "h1"
	case Orange:
		return "h2"
	default:
		return ""
	}
}

// ParsePlayer accepts a color name as sent by the referee.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return Blue, nil
	case "orange":
		return Orange, nil
	default:
		return None, fmt.Errorf("unknown player %q", s)
	}
}
