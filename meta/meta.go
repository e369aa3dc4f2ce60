// meta/meta.go
package meta

import "time"

// GO_ROUTINES is the default number of goroutines searching the root in parallel.
const GO_ROUTINES = 8

// MAX_TURNS caps a game; a game still open afterwards is decided on points.
const MAX_TURNS = 300

// TIME_BUDGET is the default thinking time per move.
const TIME_BUDGET = 100 * time.Millisecond

// START_DEPTH is the first depth of iterative deepening.
const START_DEPTH = 2

// MAX_DEPTH bounds iterative deepening when the budget would allow more.
const MAX_DEPTH = 64

// MAX_WIDTH is how many of the best-looking replies are searched below the root.
const MAX_WIDTH = 12
