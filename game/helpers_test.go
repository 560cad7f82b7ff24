package game

import "testing"

func pt(t testing.TB, label string) Point {
	t.Helper()
	p, ok := Lookup(label)
	if !ok {
		t.Fatalf("unknown label %q", label)
	}
	return p
}

// position builds a state with the given stones on the board and hands.
func position(t testing.TB, blue, orange []string, blueHand, orangeHand int) *GameState {
	t.Helper()
	gs := New()
	for _, label := range blue {
		gs.Occupancy[pt(t, label)] = Blue
	}
	for _, label := range orange {
		gs.Occupancy[pt(t, label)] = Orange
	}
	gs.Hands[Blue] = blueHand
	gs.Hands[Orange] = orangeHand
	return gs
}

func parse(t testing.TB, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return m
}
