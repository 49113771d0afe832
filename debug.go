package willowkit

import (
	"fmt"
	"time"
)

// debugLogUpdate logs the time spent in one Scene.Update.
func (s *Scene) debugLogUpdate(elapsed time.Duration, nodes int) {
	logger.Debug().
		Dur("update", elapsed).
		Int("nodes", nodes).
		Msg("frame update")
}

// debugLogDraw logs the time spent in one Scene.Draw.
func (s *Scene) debugLogDraw(elapsed time.Duration, drawn int) {
	logger.Debug().
		Dur("draw", elapsed).
		Int("draw_calls", drawn).
		Msg("frame draw")
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowkit debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth above which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn().
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}
