// meta/meta.go
package meta

// DEPTH_LIMIT defines the number of plies the agent searches.
const DEPTH_LIMIT = 2

// GAMES defines the number of self-play games per run.
const GAMES = 10

// MAX_MOVES defines the number of moves before a game is abandoned.
const MAX_MOVES = 300

// OUTPUT_DIR defines where experiment records are written.
const OUTPUT_DIR = "experiments"
