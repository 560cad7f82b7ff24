package metrics

import (
	"time"
)

type MoveMetric struct {
	Step     int
	Player   string
	Duration time.Duration // Time from asking for a proposal to committing the move
	Fallback bool          // The committed move came from the fallback agent
	Mill     bool
}

type GameMetric struct {
	Winner     string // Empty on a draw
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddMove(m MoveMetric)
	Complete(winner, reason string) (GameMetric, []MoveMetric)
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(m MoveMetric) {
	c.moves = append(c.moves, m)
}

func (c *collector) Complete(winner, reason string) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		Winner:     winner,
		Reason:     reason,
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
		TotalMoves: len(c.moves),
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()             {}
func (c *dummyCollector) AddMove(MoveMetric) {}
func (c *dummyCollector) Complete(winner, reason string) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner, Reason: reason}, nil
}
