package agent

import (
	"errors"
	"fmt"
	"slices"

	"antics/experiments/metrics"
	"antics/game"
	"antics/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrNoFreeCell = errors.New("no free cell left to place on")
	ErrNoTargets  = errors.New("no attack targets")
)

// maxPlacementAttempts bounds rejection sampling per coordinate before the
// region is scanned for whatever cell is still free.
const maxPlacementAttempts = 1000

// Setup regions as seen by the placing player.
var (
	homeRows  = [2]int{0, 3}
	enemyRows = [2]int{6, 9}
)

// ourFoodMaxRow is the last row counted as our side when classifying food.
const ourFoodMaxRow = 3

type Option func(a *Agent)

// WithSeed fixes the random source used for placements and attacks.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.seed = seed
	}
}

// WithSearchOptions passes options through to the move searcher.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(a *Agent) {
		a.searchOptions = append(a.searchOptions, options...)
	}
}

// Agent decides placements, moves and attacks for one player. It is not safe
// for concurrent use.
type Agent struct {
	player        int
	seed          uint64
	searchOptions []searcher.Option
	searcher      *searcher.Searcher
	rng           *rand.Rand

	// Food is split into our half and the enemy's once, on the first move,
	// and never refreshed afterwards.
	foodClassified bool
	ourFood        []game.Construction
	enemyFood      []game.Construction
}

func New(player int, rules game.Rules, options ...Option) *Agent {
	a := &Agent{player: player}
	for _, option := range options {
		option(a)
	}
	a.searcher = searcher.NewSearcher(rules, player, a.searchOptions...)
	a.rng = newRng(a.seed)
	return a
}

func (a *Agent) Player() int {
	return a.player
}

// GetPlacement returns the coordinates for this player's constructions in
// the current setup phase: anthill, tunnel and grass on our rows in the first
// phase, food on the enemy's rows in the second.
func (a *Agent) GetPlacement(state *game.GameState) ([]game.Coord, error) {
	switch state.Phase {
	case game.SetupPhase1:
		return a.place(state, game.SetupPhase1Placements, homeRows)
	case game.SetupPhase2:
		return a.place(state, game.SetupPhase2Placements, enemyRows)
	default:
		return []game.Coord{{X: 0, Y: 0}}, nil
	}
}

func (a *Agent) place(state *game.GameState, count int, rows [2]int) ([]game.Coord, error) {
	chosen := make([]game.Coord, 0, count)
	free := func(c game.Coord) bool {
		return state.CellAt(c).Constr == nil && !slices.Contains(chosen, c)
	}

	for len(chosen) < count {
		c, ok := a.sample(rows, free)
		if !ok {
			return nil, fmt.Errorf("placing %d of %d in rows %d-%d: %w", len(chosen)+1, count, rows[0], rows[1], ErrNoFreeCell)
		}
		chosen = append(chosen, c)
	}
	return chosen, nil
}

// sample draws random cells in rows until one is free. After too many misses
// it falls back to the first free cell in the region.
func (a *Agent) sample(rows [2]int, free func(game.Coord) bool) (game.Coord, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		c := game.Coord{
			X: a.rng.Intn(game.BoardLength),
			Y: rows[0] + a.rng.Intn(rows[1]-rows[0]+1),
		}
		if free(c) {
			return c, true
		}
	}
	for y := rows[0]; y <= rows[1]; y++ {
		for x := 0; x < game.BoardLength; x++ {
			if c := (game.Coord{X: x, Y: y}); free(c) {
				return c, true
			}
		}
	}
	return game.Coord{}, false
}

// GetMove chooses the next action by searching from state.
func (a *Agent) GetMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if !a.foodClassified {
		a.classifyFood(state)
	}

	move, metric, err := a.searcher.FindMove(state)
	if err != nil {
		return game.Move{}, metric, fmt.Errorf("player %d: %w", a.player, err)
	}
	return move, metric, nil
}

func (a *Agent) classifyFood(state *game.GameState) {
	for _, food := range state.ConstrList(game.AnyPlayer, game.Food) {
		if food.Coords.Y > ourFoodMaxRow {
			a.enemyFood = append(a.enemyFood, food)
		} else {
			a.ourFood = append(a.ourFood, food)
		}
	}
	a.foodClassified = true

	log.Debug().
		Int("player", a.player).
		Int("ours", len(a.ourFood)).
		Int("enemy", len(a.enemyFood)).
		Msg("classified food")
}

// OurFood returns the food on our side as seen on the first move.
func (a *Agent) OurFood() []game.Construction {
	return a.ourFood
}

// EnemyFood returns the food on the enemy's side as seen on the first move.
func (a *Agent) EnemyFood() []game.Construction {
	return a.enemyFood
}

// GetAttack picks one of targets at random.
func (a *Agent) GetAttack(state *game.GameState, attacker game.Ant, targets []game.Coord) (game.Coord, error) {
	if len(targets) == 0 {
		return game.Coord{}, fmt.Errorf("%v at %v: %w", attacker.Type, attacker.Coords, ErrNoTargets)
	}
	return targets[a.rng.Intn(len(targets))], nil
}

// HasWon reports whether player has won in state.
func (a *Agent) HasWon(state *game.GameState, player int) bool {
	return game.HasWon(state, player)
}
