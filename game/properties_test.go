package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Random self-play checking the laws that must hold after every applied move.
func TestRandomPlayoutInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		gs := New()
		player := Blue

		for step := 0; step < 400 && gs.Terminal(player) == Ongoing; step++ {
			moves := gs.LegalMoves(player)
			require.NotEmpty(t, moves, "seed %d step %d", seed, step)
			m := moves[rng.Intn(len(moves))]
			opponent := player.Opponent()
			before := gs.Copy()

			out, err := gs.Apply(player, m)
			require.NoError(t, err, "seed %d step %d: %s", seed, step, m)

			// Re-checking the move against the state it was played on still accepts it.
			require.True(t, before.IsLegal(player, m))

			// Occupancy is exclusive and accounted for.
			require.Equal(t, NumPoints,
				gs.OnBoardCount(Blue)+gs.OnBoardCount(Orange)+len(gs.Empty()))

			// Hands only shrink.
			require.LessOrEqual(t, gs.HandCount(Blue), before.HandCount(Blue))
			require.LessOrEqual(t, gs.HandCount(Orange), before.HandCount(Orange))

			// Stones in play drop by one only for the captured side.
			require.Equal(t, before.TotalStones(player), gs.TotalStones(player))
			if out.Captured != NoPoint {
				require.Equal(t, before.TotalStones(opponent)-1, gs.TotalStones(opponent))
				if before.InMill(opponent, out.Captured) {
					for _, p := range before.Owned(opponent) {
						require.True(t, before.InMill(opponent, p),
							"captured a mill stone while %s was exposed", p)
					}
				}
			} else {
				require.Equal(t, before.TotalStones(opponent), gs.TotalStones(opponent))
			}

			// Stalemate counter.
			if out.Mill {
				require.Equal(t, 0, gs.Stalemate)
			} else {
				require.Equal(t, before.Stalemate+1, gs.Stalemate)
			}

			require.Equal(t, gs.Terminal(opponent), out.End)
			player = opponent
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	gs := New()
	c := gs.Copy()

	_, _, err := c.Play(Blue, "h1 d2 r0")

	require.NoError(t, err)
	require.Equal(t, None, gs.Occupant(pt(t, "d2")))
	require.Equal(t, 10, gs.HandCount(Blue))
	require.NotEqual(t, gs.Hash(), c.Hash())
}

func TestRender(t *testing.T) {
	gs := position(t, []string{"a7"}, []string{"g1"}, 9, 9)
	out := gs.Render()
	require.Contains(t, out, "B--------+--------+")
	require.Contains(t, out, "+--------+--------O")
	require.Contains(t, out, "hands: blue=9 orange=9")
}

func TestCapturePolicies(t *testing.T) {
	candidates := []Point{pt(t, "c3"), pt(t, "e3")}
	require.Equal(t, pt(t, "c3"), FirstCapture(candidates))

	policy := RandomCapture(rand.New(rand.NewSource(7)))
	for i := 0; i < 20; i++ {
		require.Contains(t, candidates, policy(candidates))
	}
}
