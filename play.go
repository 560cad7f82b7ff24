package main

import (
	"lasker/agent"
	"lasker/engine"
	"lasker/game"
	"lasker/gamemaster"

	"github.com/spf13/cobra"
)

var playAgent string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one side of a refereed game over stdin/stdout",
	Long: `Reads the assigned color ("blue" or "orange") and the opponent's moves from stdin,
writes our moves to stdout in the "SOURCE DEST CAPTURE" format and echoes the
referee's end line back. Proposals that break the rules are replaced by a random
legal move.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mine, err := newAgent(playAgent, cfg.Seed)
		if err != nil {
			return err
		}

		e := engine.LocalEngine(mine, mine,
			engine.WithFallback(agent.NewRandom(cfg.Seed+1)),
			engine.WithMaxTurns(cfg.MaxTurns))
		comm := gamemaster.NewStreamCommunicator(cmd.InOrStdin(), cmd.OutOrStdout())
		gm := gamemaster.NewGameMaster(comm, e, cfg.EndSentinel)

		if err := gm.RunGame(cmd.Context()); err != nil {
			return err
		}
		if end := e.State.Terminal(gm.Player); end != game.Ongoing {
			cmd.PrintErrln(engine.Decide(gm.Player, end, len(e.Updates)))
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&playAgent, "agent", "remote", "Agent choosing our moves: remote or random")
	rootCmd.AddCommand(playCmd)
}
