// meta/meta.go
package meta

// MAX_TRIES bounds how many decisions a player may offer per turn, one per
// distinct piece or cell.
const MAX_TRIES = 16

// DEFAULT_DEPTH is the minimax search depth in plies.
const DEFAULT_DEPTH = 2

// WIN_SCORE is the base score of a won position; the remaining depth is added to it.
const WIN_SCORE = 100

// DEFAULT_HISTORY_DIR receives the exported move logs.
const DEFAULT_HISTORY_DIR = "saved_matches"
