// meta/meta.go
package meta

// MAX_TURNS bounds a local game; reaching it is a draw.
const MAX_TURNS = 300

// END_SENTINEL prefixes the referee's end-of-game line.
const END_SENTINEL = "END"

// MODEL is the default generative model asked for moves.
const MODEL = "gemini-2.0-flash"

// ENDPOINT is the base URL of the generative-language API.
const ENDPOINT = "https://generativelanguage.googleapis.com/v1beta"

// TIMEOUT_SECONDS bounds a single move proposal.
const TIMEOUT_SECONDS = 10

// RECORDS_DIR is where self-play metrics are written.
const RECORDS_DIR = "experiments"
