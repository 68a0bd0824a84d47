// meta/meta.go
package meta

import (
	"math"
	"time"
)

// SEARCH_BUDGET defines the default search time per AI move.
const SEARCH_BUDGET = 3 * time.Second

// EXPLORATION defines the default UCT exploration constant.
const EXPLORATION = math.Sqrt2
