package searcher

import "antics/meta"

// Search parameters

// DefaultDepthLimit is the number of plies expanded below the root. The tree
// grows as branching^depth so the move enumerator dominates the cost.
const DefaultDepthLimit = meta.DEPTH_LIMIT
