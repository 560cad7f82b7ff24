package game

import (
	"fmt"
	"strings"
)

// Render draws the board as text, one row per line.
func (gs *GameState) Render() string {
	s := func(label string) string {
		p, _ := Lookup(label)
		return gs.Occupancy[p].Symbol()
	}
	rows := []string{
		fmt.Sprintf("%s--------%s--------%s", s("a7"), s("d7"), s("g7")),
		"|        |        |",
		fmt.Sprintf("|  %s-----%s-----%s  |", s("b6"), s("d6"), s("f6")),
		"|  |     |     |  |",
		fmt.Sprintf("|  |  %s--%s--%s  |  |", s("c5"), s("d5"), s("e5")),
		"|  |  |     |  |  |",
		fmt.Sprintf("%s--%s--%s     %s--%s--%s", s("a4"), s("b4"), s("c4"), s("e4"), s("f4"), s("g4")),
		"|  |  |     |  |  |",
		fmt.Sprintf("|  |  %s--%s--%s  |  |", s("c3"), s("d3"), s("e3")),
		"|  |     |     |  |",
		fmt.Sprintf("|  %s-----%s-----%s  |", s("b2"), s("d2"), s("f2")),
		"|        |        |",
		fmt.Sprintf("%s--------%s--------%s", s("a1"), s("d1"), s("g1")),
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "hands: blue=%d orange=%d  stalemate=%d\n",
		gs.HandCount(Blue), gs.HandCount(Orange), gs.Stalemate)
	return b.String()
}
