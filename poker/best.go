package poker

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidInput reports a caller-side precondition violation, such as too
// few cards for a hand or unparseable card notation.
var ErrInvalidInput = errors.New("invalid input")

// BestHand returns the strongest five-card hand that can be made from cards
// and its classification. Every 5-card combination is evaluated; when
// several tie, the first in enumeration order is kept.
func BestHand(cards []Card) (Hand, RankedHand, error) {
	if err := checkBestHandInput(cards); err != nil {
		return Hand{}, nil, err
	}

	var best candidate
	for i := 0; i <= len(cards)-5; i++ {
		best = best.merge(bestFrom(cards, i))
	}
	return best.hand, best.ranked, nil
}

// BestHandParallel is BestHand with the outermost combination cursor spread
// over up to workers goroutines. It returns exactly what BestHand returns.
// A non-positive workers uses GOMAXPROCS.
func BestHandParallel(ctx context.Context, cards []Card, workers int) (Hand, RankedHand, error) {
	if err := checkBestHandInput(cards); err != nil {
		return Hand{}, nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// One slot per first-card index so the reduction below sees candidates
	// in enumeration order regardless of which goroutine finished first.
	slots := make([]candidate, len(cards)-4)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range slots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = bestFrom(cards, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Hand{}, nil, err
	}

	var best candidate
	for _, c := range slots {
		best = best.merge(c)
	}
	return best.hand, best.ranked, nil
}

func checkBestHandInput(cards []Card) error {
	if len(cards) < 5 {
		return fmt.Errorf("%w: best hand needs at least 5 cards, got %d", ErrInvalidInput, len(cards))
	}
	return nil
}

type candidate struct {
	hand   Hand
	ranked RankedHand
}

// merge keeps c unless next is strictly stronger.
func (c candidate) merge(next candidate) candidate {
	if next.ranked == nil {
		return c
	}
	if c.ranked == nil || CompareRankedHands(c.ranked, next.ranked) < 0 {
		return next
	}
	return c
}

// bestFrom evaluates every combination whose first card is cards[i], with
// the remaining cursors strictly ascending after it.
func bestFrom(cards []Card, i int) candidate {
	n := len(cards)
	var best candidate
	for j := i + 1; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for l := k + 1; l < n; l++ {
				for m := l + 1; m < n; m++ {
					hand := Hand{cards[i], cards[j], cards[k], cards[l], cards[m]}
					best = best.merge(candidate{hand: hand, ranked: RankHand(hand)})
				}
			}
		}
	}
	return best
}
