package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lasker/game"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a sequence of moves against the rules",
	Long: `Reads one move per line (blue first, players alternating) from the file or stdin,
prints a verdict for every move and the final board. A rejected move does not pass
the turn. Blank lines and lines starting with # are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) > 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		rejected, err := runValidate(in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if rejected > 0 {
			return fmt.Errorf("%d move(s) rejected", rejected)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate replays the moves read from r on a fresh game and reports to w.
func runValidate(r io.Reader, w io.Writer) (rejected int, err error) {
	gs := game.New()
	player := game.Blue
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		_, out, err := gs.Play(player, line)
		if err != nil {
			rejected++
			fmt.Fprintf(w, "%d %s %q: rejected (%s)\n", lineNo, player, line, game.ReasonOf(err))
			continue
		}

		verdict := "ok"
		if out.Mill {
			verdict = "ok, mill"
			if out.Captured != game.NoPoint {
				verdict += ", captured " + out.Captured.String()
			}
		}
		fmt.Fprintf(w, "%d %s %q: %s\n", lineNo, player, line, verdict)

		player = player.Opponent()
		if out.End != game.Ongoing {
			fmt.Fprintf(w, "game over: %s %s\n", player, out.End)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return rejected, err
	}

	fmt.Fprintln(w, gs.Render())
	return rejected, nil
}
