package experiments

import (
	"context"
	"fmt"

	"lasker/agent"
	"lasker/engine"
	"lasker/experiments/metrics"
	"lasker/game"

	"github.com/rs/zerolog/log"
)

// AgentConfig names an agent and builds a fresh one per game.
type AgentConfig struct {
	Name string
	New  func(seed uint64) agent.Agent
}

// Matchup is a series of self-play games between two agents.
type Matchup struct {
	Blue     AgentConfig
	Orange   AgentConfig
	Games    int
	MaxTurns int
	Seed     uint64
	// OnGame is called after every game, e.g. to print the final board.
	OnGame func(id int, e *engine.Engine, result engine.Result)
}

// Run plays the matchup and returns the collected records.
func Run(ctx context.Context, m Matchup) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %d games between blue=%s and orange=%s...", m.Games, m.Blue.Name, m.Orange.Name)

	for i := 1; i <= m.Games; i++ {
		seed := m.Seed + uint64(i)*3
		collector := metrics.NewCollector()
		e := engine.LocalEngine(m.Blue.New(seed), m.Orange.New(seed+1),
			engine.WithFallback(agent.NewRandom(seed+2)),
			engine.WithMaxTurns(m.MaxTurns),
			engine.WithCollector(collector))

		result, err := e.Run(ctx)
		if err != nil {
			return gameRecords, moveRecords, fmt.Errorf("game %d: %w", i, err)
		}

		winner := ""
		if !result.Draw() {
			winner = result.Winner.String()
		}
		reason := result.Reason.String()
		if result.Reason == game.Ongoing {
			reason = "turn limit"
		}
		gameMetric, moveMetrics := collector.Complete(winner, reason)

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			Blue:       m.Blue.Name,
			Orange:     m.Orange.Name,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d: %s", i, m.Games, result)
		if m.OnGame != nil {
			m.OnGame(i, e, result)
		}
	}

	return gameRecords, moveRecords, nil
}

// Store writes the records under root/name/<timestamp> and returns that directory.
func Store(root, name string, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
