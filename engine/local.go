package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lasker/agent"
	"lasker/experiments/metrics"
	"lasker/game"
	"lasker/meta"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalMove is returned by Turn when neither agent can produce a move.
var ErrNoLegalMove = errors.New("no legal move")

// Engine owns a session: the authoritative state, the agents proposing moves
// and the log of every committed move.
type Engine struct {
	State     *game.GameState
	Agents    map[game.Player]agent.Agent
	Fallback  agent.Agent
	MaxTurns  int
	Collector metrics.Collector
	Updates   []Update
}

type Option func(*Engine)

func WithFallback(a agent.Agent) Option {
	return func(e *Engine) {
		e.Fallback = a
	}
}

func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		e.MaxTurns = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.Collector = c
	}
}

func WithState(gs *game.GameState) Option {
	return func(e *Engine) {
		e.State = gs
	}
}

// LocalEngine pairs two agents on a fresh standard game. A nil agent always
// defers to the fallback.
func LocalEngine(blue, orange agent.Agent, opts ...Option) *Engine {
	e := &Engine{
		State:     game.New(),
		Agents:    map[game.Player]agent.Agent{game.Blue: blue, game.Orange: orange},
		Fallback:  agent.NewRandom(uint64(time.Now().UnixNano())),
		MaxTurns:  meta.MAX_TURNS,
		Collector: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run plays until the player about to move is eliminated, immobilized or
// stalemated, or until MaxTurns moves have been committed.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.Collector.Start()
	player := game.Blue
	log.Info().Msgf("%s is starting", player)

	var result Result
	for {
		if end := e.State.Terminal(player); end != game.Ongoing {
			result = Decide(player, end, len(e.Updates))
			break
		}
		if len(e.Updates) >= e.MaxTurns {
			result = Result{Winner: game.None, Reason: game.Ongoing, Turns: len(e.Updates)}
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		start := time.Now()
		u, err := e.Turn(ctx, player)
		if errors.Is(err, ErrNoLegalMove) {
			result = Decide(player, game.Immobilized, len(e.Updates))
			break
		}
		if err != nil {
			return Result{}, err
		}

		e.Collector.AddMove(metrics.MoveMetric{
			Step:     u.Step,
			Player:   player.String(),
			Duration: time.Since(start),
			Fallback: u.Fallback,
			Mill:     u.Outcome.Mill,
		})
		player = player.Opponent()
	}

	log.Info().Str("result", result.String()).Msg("game over")
	return result, nil
}

// Turn asks player's agent for a move and commits it if legal. Otherwise the
// fallback agent is asked and its move is checked by the same rules.
func (e *Engine) Turn(ctx context.Context, player game.Player) (Update, error) {
	view := agent.NewView(e.State, player)

	if a := e.Agents[player]; a != nil {
		proposal, err := a.Propose(ctx, view)
		switch {
		case err == nil:
			u, err := e.commit(player, proposal, false)
			if err == nil {
				return u, nil
			}
			log.Warn().
				Str("player", player.String()).
				Str("move", proposal).
				Str("reason", game.ReasonOf(err).String()).
				Err(err).
				Msg("rejected proposal, using fallback")
		case errors.Is(err, agent.ErrNoMove):
			log.Info().Str("player", player.String()).Msg("agent has no move, using fallback")
		default:
			log.Warn().Str("player", player.String()).Err(err).Msg("agent failed, using fallback")
		}
	}

	if err := ctx.Err(); err != nil {
		return Update{}, err
	}
	if e.Fallback == nil {
		return Update{}, fmt.Errorf("%s has no fallback agent: %w", player, ErrNoLegalMove)
	}

	proposal, err := e.Fallback.Propose(ctx, view)
	if errors.Is(err, agent.ErrNoMove) {
		return Update{}, ErrNoLegalMove
	}
	if err != nil {
		return Update{}, fmt.Errorf("fallback failed: %w", err)
	}
	u, err := e.commit(player, proposal, true)
	if err != nil {
		return Update{}, fmt.Errorf("fallback proposed an illegal move: %w", err)
	}
	return u, nil
}

// Apply commits a move decided outside the engine, e.g. by a remote opponent.
func (e *Engine) Apply(player game.Player, s string) (Update, error) {
	return e.commit(player, s, false)
}

func (e *Engine) commit(player game.Player, s string, fallback bool) (Update, error) {
	m, out, err := e.State.Play(player, s)
	if err != nil {
		return Update{}, err
	}

	u := Update{
		Step:     len(e.Updates) + 1,
		Player:   player,
		Move:     m,
		Fallback: fallback,
		Outcome:  out,
		Hash:     e.State.Hash(),
	}
	e.Updates = append(e.Updates, u)

	ev := log.Debug().
		Int("step", u.Step).
		Str("player", player.String()).
		Str("move", m.String()).
		Bool("fallback", fallback)
	if out.Mill {
		ev = ev.Str("captured", out.Captured.String())
	}
	ev.Msg("move applied")
	return u, nil
}
