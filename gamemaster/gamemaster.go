package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"lasker/engine"
	"lasker/game"

	"github.com/rs/zerolog/log"
)

// ErrIllegalOpponentMove ends a session whose referee relayed a move our rules reject.
var ErrIllegalOpponentMove = errors.New("illegal opponent move")

// GameMaster plays one side of a refereed game: it learns its color, relays
// its own moves and applies the opponent's, all against the same rules.
type GameMaster struct {
	Communicator Communicator
	Engine       *engine.Engine
	EndSentinel  string
	Player       game.Player // Assigned by the referee's first line
}

// NewGameMaster plays moves chosen by e's agents over comm.
func NewGameMaster(comm Communicator, e *engine.Engine, endSentinel string) *GameMaster {
	return &GameMaster{
		Communicator: comm,
		Engine:       e,
		EndSentinel:  endSentinel,
	}
}

// RunGame drives the session until the end-of-game line, which is echoed back.
func (gm *GameMaster) RunGame(ctx context.Context) error {
	line, err := gm.Communicator.ReadLine()
	if err != nil {
		return fmt.Errorf("failed to read color: %w", err)
	}
	if gm.isEnd(line) {
		return gm.finish(line)
	}
	gm.Player, err = game.ParsePlayer(line)
	if err != nil {
		return err
	}
	log.Info().Str("player", gm.Player.String()).Msg("color assigned")

	turn := game.Blue
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if turn == gm.Player && !gm.Engine.State.IsTerminal(turn) {
			u, err := gm.Engine.Turn(ctx, turn)
			if err != nil {
				return fmt.Errorf("failed to choose a move: %w", err)
			}
			if err := gm.Communicator.WriteLine(u.Move.String()); err != nil {
				return fmt.Errorf("failed to send move: %w", err)
			}
			log.Info().Int("step", u.Step).Str("move", u.Move.String()).Bool("fallback", u.Fallback).Msg("sent move")
			turn = turn.Opponent()
			continue
		}

		line, err := gm.Communicator.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Warn().Msg("referee closed the session without an end line")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}
		if gm.isEnd(line) {
			return gm.finish(line)
		}
		if turn == gm.Player {
			// The game is over for us by our own rules; only the end line is expected.
			log.Warn().Str("line", line).Msg("ignoring line after game end")
			continue
		}

		u, err := gm.Engine.Apply(turn, line)
		if err != nil {
			log.Error().
				Str("player", turn.String()).
				Str("move", line).
				Str("reason", game.ReasonOf(err).String()).
				Err(err).
				Msg("opponent move rejected")
			return fmt.Errorf("%w: %w", ErrIllegalOpponentMove, err)
		}
		log.Info().Int("step", u.Step).Str("move", line).Msg("opponent moved")
		turn = turn.Opponent()
	}
}

func (gm *GameMaster) isEnd(line string) bool {
	return strings.HasPrefix(line, gm.EndSentinel)
}

func (gm *GameMaster) finish(line string) error {
	log.Info().Str("line", line).Str("board", gm.Engine.State.Render()).Msg("session ended")
	if err := gm.Communicator.WriteLine(line); err != nil {
		return fmt.Errorf("failed to echo end line: %w", err)
	}
	return nil
}
