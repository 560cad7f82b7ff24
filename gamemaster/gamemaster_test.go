package gamemaster

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"lasker/agent"
	"lasker/engine"
	"lasker/game"

	"github.com/stretchr/testify/require"
)

// scriptedComm feeds fixed referee lines and records what we send.
type scriptedComm struct {
	in  []string
	out []string
}

func (c *scriptedComm) ReadLine() (string, error) {
	if len(c.in) == 0 {
		return "", io.EOF
	}
	line := c.in[0]
	c.in = c.in[1:]
	return line, nil
}

func (c *scriptedComm) WriteLine(line string) error {
	c.out = append(c.out, line)
	return nil
}

type scripted struct{ moves []string }

func (s *scripted) Propose(context.Context, agent.View) (string, error) {
	if len(s.moves) == 0 {
		return "", agent.ErrNoMove
	}
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, nil
}

func newMaster(comm Communicator, mine agent.Agent, player game.Player) *GameMaster {
	e := engine.LocalEngine(nil, nil, engine.WithFallback(agent.NewRandom(3)))
	e.Agents[player] = mine
	e.Agents[player.Opponent()] = mine
	return NewGameMaster(comm, e, "END")
}

func TestRunGame(t *testing.T) {
	ctx := context.Background()

	t.Run("blue moves first and echoes the end line", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"blue", "h2 d6 r0", "END: blue wins"}}
		gm := newMaster(comm, &scripted{moves: []string{"h1 d2 r0", "h1 d3 r0"}}, game.Blue)

		require.NoError(t, gm.RunGame(ctx))

		require.Equal(t, game.Blue, gm.Player)
		require.Equal(t, []string{"h1 d2 r0", "h1 d3 r0", "END: blue wins"}, comm.out)
		require.Len(t, gm.Engine.Updates, 3)
		require.Equal(t, game.Orange, gm.Engine.State.Occupant(mustLookup(t, "d6")))
	})

	t.Run("orange waits for blue", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"Orange", "h1 a7 r0", "END"}}
		gm := newMaster(comm, &scripted{moves: []string{"h2 g7 r0"}}, game.Orange)

		require.NoError(t, gm.RunGame(ctx))

		require.Equal(t, []string{"h2 g7 r0", "END"}, comm.out)
		require.Equal(t, game.Blue, gm.Engine.State.Occupant(mustLookup(t, "a7")))
	})

	t.Run("invalid proposal is replaced by a legal fallback", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"blue", "END"}}
		gm := newMaster(comm, &scripted{moves: []string{"h2 d2 r0"}}, game.Blue)

		require.NoError(t, gm.RunGame(ctx))

		require.Len(t, comm.out, 2)
		require.True(t, gm.Engine.Updates[0].Fallback)
		m, err := game.ParseMove(comm.out[0])
		require.NoError(t, err)
		require.True(t, m.FromHand())
		require.Equal(t, game.Blue, m.Hand)
	})

	t.Run("illegal opponent move ends the session", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"orange", "h1 b5 r0", "END"}}
		gm := newMaster(comm, &scripted{}, game.Orange)

		err := gm.RunGame(ctx)

		require.ErrorIs(t, err, ErrIllegalOpponentMove)
		require.ErrorIs(t, err, game.ErrIllegalSource)
		require.Empty(t, comm.out)
	})

	t.Run("end line before any move", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"END: referee aborted"}}
		gm := newMaster(comm, &scripted{}, game.Blue)

		require.NoError(t, gm.RunGame(ctx))
		require.Equal(t, []string{"END: referee aborted"}, comm.out)
	})

	t.Run("unknown color", func(t *testing.T) {
		gm := newMaster(&scriptedComm{in: []string{"green"}}, &scripted{}, game.Blue)
		require.Error(t, gm.RunGame(ctx))
	})

	t.Run("referee hangs up", func(t *testing.T) {
		comm := &scriptedComm{in: []string{"orange"}}
		gm := newMaster(comm, &scripted{}, game.Orange)
		require.NoError(t, gm.RunGame(ctx))
		require.Empty(t, comm.out)
	})

	t.Run("no color at all", func(t *testing.T) {
		gm := newMaster(&scriptedComm{}, &scripted{}, game.Blue)
		require.True(t, errors.Is(gm.RunGame(ctx), io.EOF))
	})
}

func TestStreamCommunicator(t *testing.T) {
	var out bytes.Buffer
	comm := NewStreamCommunicator(strings.NewReader("blue\n\n  h2 d6 r0  \r\nEND\n"), &out)

	for _, want := range []string{"blue", "h2 d6 r0", "END"} {
		line, err := comm.ReadLine()
		require.NoError(t, err)
		require.Equal(t, want, line)
	}
	_, err := comm.ReadLine()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, comm.WriteLine("h1 d2 r0"))
	require.Equal(t, "h1 d2 r0\n", out.String())
}

func TestStdioSession(t *testing.T) {
	var out bytes.Buffer
	comm := NewStreamCommunicator(strings.NewReader("blue\nh2 g7 r0\nEND 0\n"), &out)
	gm := newMaster(comm, &scripted{moves: []string{"h1 a7 r0", "h1 d7 r0"}}, game.Blue)

	require.NoError(t, gm.RunGame(context.Background()))
	require.Equal(t, "h1 a7 r0\nh1 d7 r0\nEND 0\n", out.String())
}

func mustLookup(t *testing.T, label string) game.Point {
	t.Helper()
	p, ok := game.Lookup(label)
	require.True(t, ok, label)
	return p
}
