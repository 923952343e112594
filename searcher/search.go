package searcher

import (
	"errors"
	"fmt"

	"antics/experiments/metrics"
	"antics/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoLegalMoves     = errors.New("no legal moves at non-terminal depth")
	ErrDegenerateSearch = errors.New("search returned no move below the root")
)

type Option func(s *Searcher)

// Searcher expands every move to a fixed depth and picks the first move of
// the path with the highest mean utility. Both sides are assumed to choose
// from the same self-modelled moves so there is no min/max alternation.
type Searcher struct {
	rules      game.Rules
	player     int
	depthLimit int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepthLimit(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depthLimit = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// NewSearcher returns a searcher scoring states for player.
func NewSearcher(rules game.Rules, player int, options ...Option) *Searcher {
	if rules == nil {
		panic("searcher needs rules")
	}
	s := &Searcher{ // Default values
		rules:      rules,
		player:     player,
		depthLimit: DefaultDepthLimit,
		evaluate:   game.EvaluateUtility,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) DepthLimit() int {
	return s.depthLimit
}

// FindMove searches from state and returns the move chosen at the root.
func (s *Searcher) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	s.metrics.Start(s.depthLimit)
	path, err := s.Search(state, 0, Node{})
	metric := s.metrics.Complete()
	if err != nil {
		return game.Move{}, metric, err
	}
	// The path runs from the best leaf back up to the placeholder root.
	if len(path) < 2 {
		return game.Move{}, metric, fmt.Errorf("depth limit %d: %w", s.depthLimit, ErrDegenerateSearch)
	}
	best := path[len(path)-2]

	log.Debug().
		Int("player", s.player).
		Stringer("move", best.Move).
		Float64("utility", best.Utility).
		Int("nodes", metric.Nodes).
		Dur("took", metric.Duration).
		Msg("search complete")
	return best.Move, metric, nil
}

// Search expands current, whose successor is state, and returns the best path
// found below it ordered from the leaf back to current.
func (s *Searcher) Search(state *game.GameState, depth int, current Node) ([]Node, error) {
	if depth >= s.depthLimit {
		s.metrics.AddLeaf()
		return []Node{current}, nil
	}

	moves := s.rules.LegalMoves(state)
	if len(moves) == 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrNoLegalMoves)
	}

	nodes := make([]Node, 0, len(moves))
	for _, move := range moves {
		node, err := BuildNode(s.rules, s.evaluate, s.player, move, state)
		if err != nil {
			return nil, err
		}
		s.metrics.AddNode()
		nodes = append(nodes, node)
	}

	// Ties keep the first candidate seen.
	var best []Node
	bestUtility := 0.0
	for _, node := range nodes {
		path, err := s.Search(node.NextState, depth+1, node)
		if err != nil {
			return nil, err
		}
		if utility := meanUtility(path); best == nil || utility > bestUtility {
			bestUtility = utility
			best = path
		}
	}

	return append(best, current), nil
}
