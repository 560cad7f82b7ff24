package game

import "lasker/utils"

// Point identifies one of the board intersections by its index into pointLabels.
type Point int8

const (
	NoPoint  Point = -1 // "r0": nothing to capture
	BadPoint Point = -2 // a label that does not exist on the board
)

const NumPoints = 24

// Mill is a line of three points that scores when held by a single player.
type Mill [3]Point

// Board is the static topology: adjacency between points and the mill lines.
type Board struct {
	neighbors [NumPoints][]Point
	mills     []Mill
	millsAt   [NumPoints][]Mill
}

// NewBoard returns an empty topology with no edges or mills.
func NewBoard() *Board {
	return &Board{}
}

// AddEdge connects two points in both directions.
func (b *Board) AddEdge(p1, p2 Point) {
	if !utils.Contains(b.neighbors[p1], p2) {
		b.neighbors[p1] = append(b.neighbors[p1], p2)
	}
	if !utils.Contains(b.neighbors[p2], p1) {
		b.neighbors[p2] = append(b.neighbors[p2], p1)
	}
}

// AddMill registers a mill line and indexes it under each of its points.
func (b *Board) AddMill(m Mill) {
	b.mills = append(b.mills, m)
	for _, p := range m {
		b.millsAt[p] = append(b.millsAt[p], m)
	}
}

// Neighbors returns the points directly connected to p. The slice must not be modified.
func (b *Board) Neighbors(p Point) []Point {
	return b.neighbors[p]
}

// Adjacent reports whether p1 and p2 share an edge.
func (b *Board) Adjacent(p1, p2 Point) bool {
	return utils.Contains(b.neighbors[p1], p2)
}

// MillsAt returns the mill lines that contain p.
func (b *Board) MillsAt(p Point) []Mill {
	return b.millsAt[p]
}

// Mills returns every mill line on the board.
func (b *Board) Mills() []Mill {
	return b.mills
}

// Points returns all points in index order.
func (b *Board) Points() []Point {
	points := make([]Point, NumPoints)
	for i := range points {
		points[i] = Point(i)
	}
	return points
}

// CreateBoard builds the 24-point Lasker Morris board.
func CreateBoard() *Board {
	b := NewBoard()
	for _, label := range pointLabels {
		p1 := pointIDMap[label]
		for _, neighbor := range adjacencyData[label] {
			b.AddEdge(p1, pointIDMap[neighbor])
		}
	}
	for _, line := range millData {
		b.AddMill(Mill{pointIDMap[line[0]], pointIDMap[line[1]], pointIDMap[line[2]]})
	}
	return b
}

// StandardBoard is shared read-only by every game.
var StandardBoard = CreateBoard()

// Valid reports whether p names a real intersection.
func (p Point) Valid() bool {
	return p >= 0 && p < NumPoints
}

func (p Point) String() string {
	switch {
	case p.Valid():
		return pointLabels[p]
	case p == NoPoint:
		return NoCaptureToken
	default:
		return "??"
	}
}

// Lookup finds the point with the given label, e.g. "d2".
func Lookup(label string) (Point, bool) {
	p, ok := pointIDMap[label]
	return p, ok
}

// Labels are listed row by row from the top of the board (rank 7) to the bottom (rank 1).
var pointLabels = [NumPoints]string{
	"a7", "d7", "g7",
	"b6", "d6", "f6",
	"c5", "d5", "e5",
	"a4", "b4", "c4", "e4", "f4", "g4",
	"c3", "d3", "e3",
	"b2", "d2", "f2",
	"a1", "d1", "g1",
}

var pointIDMap = func() map[string]Point {
	ids := make(map[string]Point, NumPoints)
	for i, label := range pointLabels {
		ids[label] = Point(i)
	}
	return ids
}()

var adjacencyData = map[string][]string{
	"a7": {"a4", "d7"}, "d7": {"a7", "g7", "d6"}, "g7": {"d7", "g4"},
	"b6": {"b4", "d6"}, "d6": {"d7", "b6", "f6", "d5"}, "f6": {"d6", "f4"},
	"c5": {"d5", "c4"}, "d5": {"d6", "c5", "e5"}, "e5": {"d5", "e4"},
	"a4": {"a7", "b4", "a1"}, "b4": {"b6", "a4", "c4", "b2"}, "c4": {"c5", "b4", "c3"},
	"e4": {"e5", "f4", "e3"}, "f4": {"f6", "e4", "g4", "f2"}, "g4": {"g7", "f4", "g1"},
	"c3": {"c4", "d3"}, "d3": {"c3", "e3", "d2"}, "e3": {"e4", "d3"},
	"b2": {"b4", "d2"}, "d2": {"d3", "b2", "f2", "d1"}, "f2": {"f4", "d2"},
	"a1": {"a4", "d1"}, "d1": {"d2", "a1", "g1"}, "g1": {"g4", "d1"},
}

var millData = [][3]string{
	// Rows
	{"a7", "d7", "g7"}, {"b6", "d6", "f6"}, {"c5", "d5", "e5"},
	{"a4", "b4", "c4"}, {"e4", "f4", "g4"},
	{"c3", "d3", "e3"}, {"b2", "d2", "f2"}, {"a1", "d1", "g1"},
	// Columns
	{"a7", "a4", "a1"}, {"b6", "b4", "b2"}, {"c5", "c4", "c3"},
	{"d7", "d6", "d5"}, {"d3", "d2", "d1"},
	{"e5", "e4", "e3"}, {"f6", "f4", "f2"}, {"g7", "g4", "g1"},
}
