package searcher

import (
	"fmt"

	"antics/game"
)

// Node is a candidate move together with the state it leads to and that
// state's utility.
type Node struct {
	Move      game.Move
	NextState *game.GameState
	Utility   float64
}

// BuildNode applies move to state and scores the successor for player.
func BuildNode(rules game.Rules, evaluate game.Evaluate, player int, move game.Move, state *game.GameState) (Node, error) {
	next, err := rules.NextState(state, move)
	if err != nil {
		return Node{}, fmt.Errorf("failed to apply %v: %w", move, err)
	}
	utility, err := evaluate(next, player)
	if err != nil {
		return Node{}, fmt.Errorf("failed to evaluate %v: %w", move, err)
	}
	return Node{Move: move, NextState: next, Utility: utility}, nil
}

// meanUtility averages utility over every node in path without discounting depth.
func meanUtility(path []Node) float64 {
	total := 0.0
	for _, node := range path {
		total += node.Utility
	}
	return total / float64(len(path))
}
