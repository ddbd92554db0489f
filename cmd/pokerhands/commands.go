package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lox/pokerhands/internal/equity"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/poker"
)

// RankCmd classifies a single five-card hand.
type RankCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Ks Qs Js Ts'"`
}

func (c *RankCmd) Run(rt *Runtime) error {
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}
	if len(cards) != 5 {
		return fmt.Errorf("%w: rank needs exactly 5 cards, got %d", poker.ErrInvalidInput, len(cards))
	}

	var hand poker.Hand
	copy(hand[:], cards)
	rh := poker.RankHand(hand)
	rt.Logger.Debug("Ranked hand", "hand", hand, "category", rh.Category())

	fmt.Fprintf(rt.Out, "%s  %s\n", rt.View.Cards(cards), rt.View.Ranked(rh))
	return nil
}

// BestCmd finds the best five cards among many.
type BestCmd struct {
	Cards    []string `arg:"" help:"Five or more cards, e.g. 'AcKd 7h7s7d 2c9h'"`
	Parallel bool     `short:"p" help:"Search combinations on several goroutines"`
	Workers  int      `short:"w" help:"Goroutines for --parallel (default: config or one per CPU)"`
}

func (c *BestCmd) Run(ctx context.Context, rt *Runtime) error {
	cards, err := parseArgs(c.Cards)
	if err != nil {
		return err
	}

	var (
		hand poker.Hand
		rh   poker.RankedHand
	)
	if c.Parallel {
		workers := c.Workers
		if workers == 0 {
			workers = rt.Config.Odds.Workers
		}
		hand, rh, err = poker.BestHandParallel(ctx, cards, workers)
	} else {
		hand, rh, err = poker.BestHand(cards)
	}
	if err != nil {
		return err
	}
	rt.Logger.Debug("Best hand", "from", len(cards), "hand", hand, "parallel", c.Parallel)

	fmt.Fprintf(rt.Out, "%s  %s\n", rt.View.Cards(hand.Cards()), rt.View.Ranked(rh))
	return nil
}

// CompareCmd compares two card sets by their best hands.
type CompareCmd struct {
	First  string `arg:"" help:"First card set (5+ cards)"`
	Second string `arg:"" help:"Second card set (5+ cards)"`
}

func (c *CompareCmd) Run(rt *Runtime) error {
	first, err := poker.ParseCards(c.First)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	second, err := poker.ParseCards(c.Second)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	firstHand, firstRanked, err := poker.BestHand(first)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	secondHand, secondRanked, err := poker.BestHand(second)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}

	table, err := rt.View.Table([][]string{
		{"", "best five", "hand"},
		{"first", rt.View.Cards(firstHand.Cards()), rt.View.Ranked(firstRanked)},
		{"second", rt.View.Cards(secondHand.Cards()), rt.View.Ranked(secondRanked)},
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.Out, table)

	switch cmp := poker.CompareRankedHands(firstRanked, secondRanked); {
	case cmp > 0:
		fmt.Fprintln(rt.Out, rt.View.Win("first wins"))
	case cmp < 0:
		fmt.Fprintln(rt.Out, rt.View.Win("second wins"))
	default:
		fmt.Fprintln(rt.Out, rt.View.Tie("tie"))
	}
	return nil
}

// DealCmd shuffles a fresh deck and shows the top cards.
type DealCmd struct {
	Count int `short:"n" default:"7" help:"Number of cards to deal"`
}

func (c *DealCmd) Run(rt *Runtime) error {
	if c.Count < 1 || c.Count > poker.DeckSize {
		return fmt.Errorf("%w: count must be between 1 and %d, got %d", poker.ErrInvalidInput, poker.DeckSize, c.Count)
	}

	seed := randutil.Seed(rt.Config.Seed, rt.Clock)
	rt.Logger.Debug("Shuffling", "seed", seed)

	dealt := poker.Shuffle(poker.FreshDeck(), randutil.New(seed))[:c.Count]
	fmt.Fprintf(rt.Out, "%s %s\n", rt.View.Header("seed"), fmt.Sprint(seed))
	fmt.Fprintf(rt.Out, "%s %s\n", rt.View.Header("cards"), rt.View.Cards(dealt))

	if len(dealt) < 5 {
		return nil
	}
	hand, rh, err := poker.BestHand(dealt)
	if err != nil {
		return err
	}
	fmt.Fprintf(rt.Out, "%s %s  %s\n", rt.View.Header("best"), rt.View.Cards(hand.Cards()), rt.View.Ranked(rh))
	return nil
}

// OddsCmd runs a Monte Carlo showdown between hole cards.
type OddsCmd struct {
	Hands         []string `arg:"" help:"Hole cards per player, e.g. 'AcKd' 'QhQs'"`
	Board         string   `short:"b" help:"Community cards already dealt (up to 5)"`
	Iterations    int      `short:"i" help:"Simulated showdowns (default: config)"`
	Workers       int      `short:"w" help:"Worker goroutines (default: config or one per CPU)"`
	Possibilities bool     `short:"p" help:"Show how often each hand category is made"`
}

func (c *OddsCmd) Run(ctx context.Context, rt *Runtime) error {
	holes := make([][]poker.Card, len(c.Hands))
	for i, s := range c.Hands {
		hole, err := poker.ParseCards(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		holes[i] = hole
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	opts := equity.Options{
		Iterations: rt.Config.Odds.Iterations,
		Workers:    rt.Config.Odds.Workers,
		Seed:       randutil.Seed(rt.Config.Seed, rt.Clock),
		Logger:     rt.Logger,
	}
	if c.Iterations > 0 {
		opts.Iterations = c.Iterations
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}

	start := rt.Clock.Now()
	res, err := equity.Estimate(ctx, holes, board, opts)
	if err != nil {
		return err
	}
	elapsed := rt.Clock.Since(start)

	return c.render(rt, res, opts.Seed, elapsed)
}

func (c *OddsCmd) render(rt *Runtime, res *equity.Result, seed int64, elapsed time.Duration) error {
	if len(res.Board) > 0 {
		fmt.Fprintf(rt.Out, "%s %s\n\n", rt.View.Header("board"), rt.View.Cards(res.Board))
	}

	rows := [][]string{{"hand", "equity", "win", "tie"}}
	for _, p := range res.Players {
		rows = append(rows, []string{
			rt.View.Cards(p.Hole),
			percent(p.Equity(res.Iterations)),
			rt.View.Win(percent(float64(p.Wins) / float64(res.Iterations))),
			rt.View.Tie(percent(float64(p.Ties) / float64(res.Iterations))),
		})
	}
	table, err := rt.View.Table(rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(rt.Out, table)

	if c.Possibilities {
		header := []string{"category"}
		for _, p := range res.Players {
			header = append(header, rt.View.Cards(p.Hole))
		}
		rows := [][]string{header}
		for i := len(poker.Categories) - 1; i >= 0; i-- {
			cat := poker.Categories[i]
			row := []string{cat.String()}
			for _, p := range res.Players {
				if n := p.Categories[cat]; n > 0 {
					row = append(row, percent(float64(n)/float64(res.Iterations)))
				} else {
					row = append(row, ".")
				}
			}
			rows = append(rows, row)
		}
		table, err := rt.View.Table(rows)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.Out, table)
	}

	fmt.Fprintf(rt.Out, "%d iterations in %v (seed %d)\n", res.Iterations, elapsed.Truncate(time.Millisecond), seed)
	return nil
}

// parseArgs parses card notation spread over several arguments.
func parseArgs(args []string) ([]poker.Card, error) {
	return poker.ParseCards(strings.Join(args, " "))
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
