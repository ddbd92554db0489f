// Package equity estimates showdown equity between hands by Monte Carlo
// simulation: the board is completed at random from the unseen cards and
// each player's best five-card hand is compared.
package equity

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/poker"
)

// BoardSize is the number of community cards at showdown.
const BoardSize = 5

// checkEvery is how many iterations a worker runs between context checks.
const checkEvery = 1024

// Options controls a simulation.
type Options struct {
	Iterations int
	Workers    int   // 0 means one per CPU
	Seed       int64 // results are reproducible for a given seed and worker count
	Logger     *log.Logger
}

// PlayerResult is the outcome for one player's hole cards.
type PlayerResult struct {
	Hole       []poker.Card
	Wins       int     // showdowns won outright
	Ties       int     // showdowns split with at least one other player
	TieShare   float64 // sum of the fractional pots won in ties
	Categories map[poker.Category]int
}

// Equity is the fraction of pots won, counting split pots fractionally.
func (p PlayerResult) Equity(iterations int) float64 {
	if iterations == 0 {
		return 0
	}
	return (float64(p.Wins) + p.TieShare) / float64(iterations)
}

// Result aggregates a simulation.
type Result struct {
	Board      []poker.Card
	Players    []PlayerResult
	Iterations int
}

// Estimate runs the simulation for the given hole cards and partial board.
func Estimate(ctx context.Context, holes [][]poker.Card, board []poker.Card, opts Options) (*Result, error) {
	if err := validate(holes, board); err != nil {
		return nil, err
	}
	if opts.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be positive, got %d", poker.ErrInvalidInput, opts.Iterations)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("equity")

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Iterations {
		workers = opts.Iterations
	}

	available := poker.Without(poker.FreshDeck(), append([][]poker.Card{board}, holes...)...)
	seeds := randutil.Derive(randutil.New(opts.Seed), workers)
	partials := make([]*Result, workers)

	logger.Debug("Starting simulation", "players", len(holes), "board", poker.FormatCards(board),
		"iterations", opts.Iterations, "workers", workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		iterations := opts.Iterations / workers
		if w < opts.Iterations%workers {
			iterations++
		}

		g.Go(func() error {
			partial, err := simulate(ctx, holes, board, available, iterations, seeds[w])
			if err != nil {
				return err
			}
			partials[w] = partial
			logger.Debug("Worker finished", "worker", w, "iterations", iterations)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(holes, board, partials), nil
}

func validate(holes [][]poker.Card, board []poker.Card) error {
	if len(holes) < 2 {
		return fmt.Errorf("%w: need at least 2 players, got %d", poker.ErrInvalidInput, len(holes))
	}
	if len(board) > BoardSize {
		return fmt.Errorf("%w: board cannot have more than %d cards, got %d", poker.ErrInvalidInput, BoardSize, len(board))
	}

	seen := make(map[poker.Card]bool)
	for _, c := range board {
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s on board", poker.ErrInvalidInput, c)
		}
		seen[c] = true
	}
	for i, hole := range holes {
		if len(hole) == 0 {
			return fmt.Errorf("%w: player %d has no hole cards", poker.ErrInvalidInput, i+1)
		}
		for _, c := range hole {
			if seen[c] {
				return fmt.Errorf("%w: duplicate card %s in hand %d", poker.ErrInvalidInput, c, i+1)
			}
			seen[c] = true
		}
	}

	if need := BoardSize - len(board); need > poker.DeckSize-len(seen) {
		return fmt.Errorf("%w: not enough cards left to complete the board", poker.ErrInvalidInput)
	}
	return nil
}

func newResult(holes [][]poker.Card, board []poker.Card) *Result {
	res := &Result{
		Board:   board,
		Players: make([]PlayerResult, len(holes)),
	}
	for i, hole := range holes {
		res.Players[i] = PlayerResult{
			Hole:       hole,
			Categories: make(map[poker.Category]int),
		}
	}
	return res
}

// simulate runs iterations showdowns with its own rng.
func simulate(ctx context.Context, holes [][]poker.Card, board, available []poker.Card, iterations int, seed int64) (*Result, error) {
	rng := randutil.New(seed)
	res := newResult(holes, board)
	need := BoardSize - len(board)

	fullBoard := make([]poker.Card, BoardSize)
	copy(fullBoard, board)
	ranked := make([]poker.RankedHand, len(holes))

	for iter := range iterations {
		if iter%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if need > 0 {
			copy(fullBoard[len(board):], poker.Shuffle(available, rng)[:need])
		}

		for i, hole := range holes {
			cards := make([]poker.Card, 0, len(hole)+BoardSize)
			cards = append(cards, hole...)
			cards = append(cards, fullBoard...)

			_, rh, err := poker.BestHand(cards)
			if err != nil {
				return nil, err
			}
			ranked[i] = rh
			res.Players[i].Categories[rh.Category()]++
		}

		settle(res, ranked)
		res.Iterations++
	}
	return res, nil
}

// settle awards one showdown to the strongest hands.
func settle(res *Result, ranked []poker.RankedHand) {
	best := ranked[0]
	for _, rh := range ranked[1:] {
		if poker.CompareRankedHands(rh, best) > 0 {
			best = rh
		}
	}

	var winners []int
	for i, rh := range ranked {
		if poker.CompareRankedHands(rh, best) == 0 {
			winners = append(winners, i)
		}
	}

	if len(winners) == 1 {
		res.Players[winners[0]].Wins++
		return
	}
	share := 1 / float64(len(winners))
	for _, i := range winners {
		res.Players[i].Ties++
		res.Players[i].TieShare += share
	}
}

// merge combines worker results in worker order.
func merge(holes [][]poker.Card, board []poker.Card, partials []*Result) *Result {
	res := newResult(holes, board)
	for _, p := range partials {
		res.Iterations += p.Iterations
		for i := range res.Players {
			res.Players[i].Wins += p.Players[i].Wins
			res.Players[i].Ties += p.Players[i].Ties
			res.Players[i].TieShare += p.Players[i].TieShare
			for cat, n := range p.Players[i].Categories {
				res.Players[i].Categories[cat] += n
			}
		}
	}
	return res
}
