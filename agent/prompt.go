package agent

import (
	"strings"
	"text/template"

	"lasker/game"
)

const movePrompt = `Provide a single valid move in the format A B C, where A is the source, B is the destination, and C is the stone to remove (or r0 if not removing a stone). If no valid move is possible, return "no valid move". Do not include any additional text or explanation.`

var instructionTemplate = template.Must(template.New("instruction").Parse(`You are an expert Lasker Morris (Ten Men's Morris) player. Given the current board and the rules, choose a valid move for the current player.

Rules:
Players: blue and orange. Each starts with 10 stones in hand (h1 for blue, h2 for orange).
Board points are the 24 intersections named below. Other labels (e.g. b5) do not exist.
A mill is three stones of one color on one of the listed lines.
Move format: A B C
  A: source, your hand marker or a board point holding your stone.
  B: destination, an empty board point.
  C: opponent stone to remove, or r0 when no mill is formed.
While stones remain in hand you may place from hand or move a board stone to an adjacent empty point.
With 3 stones on the board your stones may fly to any empty point.
Closing a mill requires removing one opponent stone that is not in a mill, unless every opponent stone is in a mill.
The game ends when a player is down to 2 stones, cannot move, or after {{.Limit}} moves without a mill.

Mill lines:
{{range .Mills}}{{index . 0}} {{index . 1}} {{index . 2}}
{{end}}
Board:
{{range .Board}}{{.Label}}: {{.Occupant}}
{{end}}
Stones in hand: blue={{.Blue}} orange={{.Orange}}
Moves since the last mill: {{.Stalemate}}

You play {{.Player}}; your hand marker is {{.Marker}}.
`))

type instructionData struct {
	View
	Limit  int
	Blue   int
	Orange int
	Marker string
}

// Instruction renders the system instruction describing view.
func Instruction(view View) (string, error) {
	gs := view.State()
	data := instructionData{
		View:   view,
		Limit:  gs.Rules.StalemateLimit(),
		Marker: view.Player.HandMarker(),
	}
	data.Blue, data.Orange = view.Hands[game.Blue], view.Hands[game.Orange]

	var sb strings.Builder
	if err := instructionTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
