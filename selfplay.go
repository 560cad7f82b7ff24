package main

import (
	"fmt"

	"lasker/agent"
	"lasker/engine"
	"lasker/experiments"

	"github.com/spf13/cobra"
)

var (
	selfplayGames   int
	selfplayBlue    string
	selfplayOrange  string
	selfplayRecords bool
	selfplayShow    bool
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Play local games between two agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		blue, err := agentConfig(selfplayBlue)
		if err != nil {
			return err
		}
		orange, err := agentConfig(selfplayOrange)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		m := experiments.Matchup{
			Blue:     blue,
			Orange:   orange,
			Games:    selfplayGames,
			MaxTurns: cfg.MaxTurns,
			Seed:     cfg.Seed,
			OnGame: func(id int, e *engine.Engine, result engine.Result) {
				if selfplayShow {
					fmt.Fprintln(out, e.State.Render())
				}
				fmt.Fprintf(out, "game %d: %s\n", id, result)
			},
		}

		games, moves, err := experiments.Run(cmd.Context(), m)
		if err != nil {
			return err
		}
		if !selfplayRecords {
			return nil
		}
		dir, err := experiments.Store(cfg.RecordsDir, "selfplay", games, moves)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "records written to %s\n", dir)
		return nil
	},
}

func agentConfig(kind string) (experiments.AgentConfig, error) {
	// Fail early on a misconfigured agent rather than in the first game.
	if _, err := newAgent(kind, 0); err != nil {
		return experiments.AgentConfig{}, err
	}
	return experiments.AgentConfig{
		Name: kind,
		New: func(seed uint64) agent.Agent {
			a, _ := newAgent(kind, seed)
			return a
		},
	}, nil
}

func init() {
	selfplayCmd.Flags().IntVarP(&selfplayGames, "games", "n", 1, "Number of games to play")
	selfplayCmd.Flags().StringVar(&selfplayBlue, "blue", "random", "Blue agent: random or remote")
	selfplayCmd.Flags().StringVar(&selfplayOrange, "orange", "random", "Orange agent: random or remote")
	selfplayCmd.Flags().BoolVar(&selfplayRecords, "records", false, "Write game and move records as CSV")
	selfplayCmd.Flags().BoolVar(&selfplayShow, "show", false, "Print the final board of every game")
	rootCmd.AddCommand(selfplayCmd)
}
