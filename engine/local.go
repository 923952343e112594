package engine

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"antics/experiments/metrics"
	"antics/game"

	"github.com/rs/zerolog/log"
)

var ErrPlayerMismatch = errors.New("player does not match seat")

type Local struct {
	State    *game.GameState
	Players  []Player // Indexed by player id
	Rules    *game.StandardRules
	maxMoves int
}

// LocalEngine seats two players and prepares an empty board.
func LocalEngine(players []Player, rules *game.StandardRules, maxMoves int) (*Local, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("need two players, got %d: %w", len(players), ErrPlayerMismatch)
	}
	for seat, p := range players {
		if p.Player() != seat {
			return nil, fmt.Errorf("seat %d has player %d: %w", seat, p.Player(), ErrPlayerMismatch)
		}
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	return &Local{
		State:    game.NewGame(),
		Players:  players,
		Rules:    rules,
		maxMoves: maxMoves,
	}, nil
}

// Run plays both setup phases and then the game itself until there's a
// winner or the move limit is reached.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.PlayerOne,
		Winner:         NoWinner,
		StartTime:      time.Now(),
	}

	if err := e.setup(); err != nil {
		return NoWinner, gameMetric, nil, err
	}

	log.Info().Msgf("player %d is starting", e.State.WhoseTurn)

	var moveMetrics []metrics.MoveMetric
	step := 0
	winner := e.winner()
	for winner == NoWinner && step < e.maxMoves {
		step++
		player := e.State.WhoseTurn

		metric, err := e.play(player)
		if err != nil {
			return NoWinner, gameMetric, moveMetrics, fmt.Errorf("move %d: %w", step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: metric,
		})
		winner = e.winner()
	}

	if winner != NoWinner {
		log.Info().Msgf("game ended after %d moves, winner: player %d", step, winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", step)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	return winner, gameMetric, moveMetrics, nil
}

func (e *Local) setup() error {
	for _, phase := range []game.Phase{game.SetupPhase1, game.SetupPhase2} {
		for _, player := range []int{game.PlayerOne, game.PlayerTwo} {
			coords, err := e.Players[player].GetPlacement(e.view(player))
			if err != nil {
				return fmt.Errorf("player %d placement in phase %d: %w", player, phase, err)
			}
			next, err := game.ApplyPlacement(e.State, player, coords)
			if err != nil {
				return fmt.Errorf("player %d placement in phase %d: %w", player, phase, err)
			}
			e.State = next
		}
	}
	return nil
}

// play asks player for a move, applies it, and resolves any attack the move
// made possible.
func (e *Local) play(player int) (metrics.SearchMetric, error) {
	move, metric, err := e.Players[player].GetMove(e.view(player))
	if err != nil {
		return metric, err
	}
	if player == game.PlayerTwo {
		move = game.FlipMove(move)
	}

	legal := e.Rules.LegalMoves(e.State)
	if !slices.ContainsFunc(legal, move.Equal) {
		log.Warn().Msgf("player %d chose an illegal move %v, forcing end", player, move)
		move = game.EndMove()
	}

	next, err := e.Rules.NextState(e.State, move)
	if err != nil {
		return metric, err
	}
	e.State = next

	if move.Type == game.MoveAnt {
		if err := e.attack(player, move.Path[len(move.Path)-1]); err != nil {
			return metric, err
		}
	}
	return metric, nil
}

func (e *Local) attack(player int, from game.Coord) error {
	targets := game.AttackTargets(e.State, from)
	if len(targets) == 0 {
		return nil
	}
	attacker := *e.State.CellAt(from).Ant

	// Hand the player its own view of the attacker and targets.
	viewTargets := slices.Clone(targets)
	if player == game.PlayerTwo {
		attacker.Coords = attacker.Coords.Flip()
		for i := range viewTargets {
			viewTargets[i] = viewTargets[i].Flip()
		}
	}
	target, err := e.Players[player].GetAttack(e.view(player), attacker, viewTargets)
	if err != nil {
		return err
	}
	if player == game.PlayerTwo {
		target = target.Flip()
	}

	next, err := e.Rules.Attack(e.State, from, target)
	if err != nil {
		return err
	}
	e.State = next
	return nil
}

func (e *Local) view(player int) *game.GameState {
	if player == game.PlayerTwo {
		return e.State.Flip()
	}
	return e.State.Copy()
}

func (e *Local) winner() int {
	for _, player := range []int{game.PlayerOne, game.PlayerTwo} {
		if game.HasWon(e.State, player) {
			return player
		}
	}
	return NoWinner
}
