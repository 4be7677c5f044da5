// meta/meta.go
package meta

// ROWS defines the default board height.
const ROWS = 6

// COLUMNS defines the default board width.
const COLUMNS = 7

// SEARCH_DEPTH defines the number of plies searched by the AI agents.
const SEARCH_DEPTH = 3

// EXPERIMENT_GAMES defines the number of games per experiment matchup.
const EXPERIMENT_GAMES = 20

// EXPERIMENT_DIR defines where experiment results are written.
const EXPERIMENT_DIR = "experiments/results"
