package searcher

import (
	"testing"

	"antics/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// bruteForce scores every two-ply path by its flat mean and returns the first
// move of the best one, keeping the earliest on ties.
func bruteForce(rules *mockRules, root *game.GameState) game.Move {
	var best game.Move
	bestUtility := -1.0
	for _, first := range rules.children[root] {
		for _, second := range rules.children[first.next] {
			utility := (rules.utilities[first.next] + rules.utilities[second.next]) / 2
			if utility > bestUtility {
				bestUtility = utility
				best = first.move
			}
		}
	}
	return best
}

func TestSearch(t *testing.T) {
	t.Run("picking the best mean path two plies deep", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		// Move 1 looks best immediately but leads nowhere good.
		a := rules.add(root, 1, 0.8)
		rules.add(a, 11, 0.1)
		rules.add(a, 12, 0.2)
		b := rules.add(root, 2, 0.5)
		rules.add(b, 21, 0.3)
		b2 := rules.add(b, 22, 0.9)

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate))
		path, err := s.Search(root, 0, Node{})

		require.NoError(t, err)
		require.Len(t, path, 3, "Path should be leaf, child, root placeholder")
		require.Same(t, b2, path[0].NextState)
		require.Equal(t, mockMove(2), path[1].Move)
		require.Equal(t, Node{}, path[2])

		move, _, err := s.FindMove(root)
		require.NoError(t, err)
		require.Equal(t, mockMove(2), move)
	})

	t.Run("ties keep the first candidate", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		a := rules.add(root, 1, 0.5)
		rules.add(a, 11, 0.5)
		b := rules.add(root, 2, 0.5)
		rules.add(b, 21, 0.5)

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate))
		move, _, err := s.FindMove(root)

		require.NoError(t, err)
		require.Equal(t, mockMove(1), move)
	})

	t.Run("depth limit zero is degenerate", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		rules.add(root, 1, 0.5)

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate), WithDepthLimit(0))
		path, err := s.Search(root, 0, Node{})
		require.NoError(t, err)
		require.Equal(t, []Node{{}}, path, "Search should hand back the placeholder only")

		_, _, err = s.FindMove(root)
		require.ErrorIs(t, err, ErrDegenerateSearch)
	})

	t.Run("depth limit one is greedy", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		rules.add(root, 1, 0.2)
		rules.add(root, 2, 0.7)
		rules.add(root, 3, 0.4)

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate), WithDepthLimit(1))
		move, _, err := s.FindMove(root)

		require.NoError(t, err)
		require.Equal(t, mockMove(2), move)
	})

	t.Run("no legal moves below the root", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		rules.add(root, 1, 0.5)

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate))
		_, _, err := s.FindMove(root)

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("transition failures abort the search", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		a := rules.add(root, 1, 0.5)
		rules.add(a, 11, 0.5)
		rules.failOn = a

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate))
		_, _, err := s.FindMove(root)

		require.ErrorIs(t, err, errTransition)
	})

	t.Run("collecting metrics", func(t *testing.T) {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		for i := 1; i <= 3; i++ {
			child := rules.add(root, i, 0.1*float64(i))
			rules.add(child, i*10+1, 0.5)
			rules.add(child, i*10+2, 0.6)
		}

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate), WithMetrics())
		_, metric, err := s.FindMove(root)

		require.NoError(t, err)
		require.Equal(t, DefaultDepthLimit, metric.DepthLimit)
		require.Equal(t, 9, metric.Nodes, "Three children and six grandchildren")
		require.Equal(t, 6, metric.Leaves)
	})
}

func TestSearchMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		rules := newMockRules()
		root := game.NewGameState(game.PlayPhase, game.PlayerOne)
		children := 2 + rng.Intn(4)
		for i := 1; i <= children; i++ {
			child := rules.add(root, i, rng.Float64())
			grandchildren := 1 + rng.Intn(4)
			for j := 1; j <= grandchildren; j++ {
				rules.add(child, i*10+j, rng.Float64())
			}
		}

		s := NewSearcher(rules, game.PlayerOne, WithEvaluationFn(rules.evaluate))
		move, _, err := s.FindMove(root)

		require.NoError(t, err)
		require.Equal(t, bruteForce(rules, root), move, "trial %d", trial)
	}
}

func TestSearchWithStandardRules(t *testing.T) {
	rules := game.NewStandardRules()
	gs := game.NewGameState(game.PlayPhase, game.PlayerOne)
	ours, _ := gs.Inventory(game.PlayerOne)
	theirs, _ := gs.Inventory(game.PlayerTwo)
	neutral, _ := gs.Inventory(game.Neutral)
	ours.Constrs = []game.Construction{game.NewConstruction(game.Coord{X: 0, Y: 0}, game.Anthill), game.NewConstruction(game.Coord{X: 2, Y: 0}, game.Tunnel)}
	theirs.Constrs = []game.Construction{game.NewConstruction(game.Coord{X: 9, Y: 9}, game.Anthill)}
	neutral.Constrs = []game.Construction{game.NewConstruction(game.Coord{X: 1, Y: 2}, game.Food)}
	ours.Ants = []game.Ant{game.NewAnt(game.Coord{X: 0, Y: 0}, game.Queen, game.PlayerOne), game.NewAnt(game.Coord{X: 1, Y: 1}, game.Worker, game.PlayerOne)}
	theirs.Ants = []game.Ant{game.NewAnt(game.Coord{X: 9, Y: 9}, game.Queen, game.PlayerTwo), game.NewAnt(game.Coord{X: 8, Y: 9}, game.Worker, game.PlayerTwo)}
	before := gs.Copy()

	s := NewSearcher(rules, game.PlayerOne)
	move, _, err := s.FindMove(gs)

	require.NoError(t, err)
	require.Equal(t, before, gs, "Search should not mutate its input")
	legal := rules.LegalMoves(gs)
	require.Contains(t, legal, move)
	require.Equal(t, game.Move{Type: game.MoveAnt, Path: []game.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}}}, move,
		"Stepping onto food is the only move that raises our score")
}

func TestNewSearcher(t *testing.T) {
	require.Panics(t, func() { NewSearcher(nil, game.PlayerOne) })

	s := NewSearcher(game.NewStandardRules(), game.PlayerOne, WithDepthLimit(-1))
	require.Equal(t, DefaultDepthLimit, s.DepthLimit(), "Negative depth limits are ignored")
}
