package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t testing.TB, s string) Hand {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	require.Len(t, cards, 5)
	var h Hand
	copy(h[:], cards)
	return h
}

func card(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestRankHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand string
		want RankedHand
	}{
		{
			name: "royal flush",
			hand: "Ts Js Qs Ks As",
			want: StraightFlushHand{HighCard: card("As")},
		},
		{
			name: "low straight flush",
			hand: "6h 2h 4h 3h 5h",
			want: StraightFlushHand{HighCard: card("6h")},
		},
		{
			name: "four of a kind low kicker",
			hand: "9s 9h 9c 9d 2s",
			want: FourOfAKindHand{Rank: Nine, Kicker: card("2s")},
		},
		{
			name: "four of a kind high kicker",
			hand: "4s 4h 4c 4d Ks",
			want: FourOfAKindHand{Rank: Four, Kicker: card("Ks")},
		},
		{
			name: "full house low trips",
			hand: "3s 3h 3d 7c 7s",
			want: FullHouseHand{ThreeOfAKindRank: Three, PairRank: Seven},
		},
		{
			name: "full house high trips",
			hand: "3s 3h 7d 7c 7s",
			want: FullHouseHand{ThreeOfAKindRank: Seven, PairRank: Three},
		},
		{
			name: "flush",
			hand: "2d 9d Jd 4d Kd",
			want: FlushHand{Kickers: [5]Card{card("Kd"), card("Jd"), card("9d"), card("4d"), card("2d")}},
		},
		{
			name: "straight",
			hand: "9c Td Js Qh 8s",
			want: StraightHand{HighCard: card("Qh")},
		},
		{
			name: "ace high straight",
			hand: "Tc Jd Qs Kh As",
			want: StraightHand{HighCard: card("As")},
		},
		{
			name: "wheel is high card",
			hand: "As 2h 3d 4c 5s",
			want: HighCardHand{Kickers: [5]Card{card("As"), card("5s"), card("4c"), card("3d"), card("2h")}},
		},
		{
			name: "wheel flush is a flush",
			hand: "As 2s 3s 4s 5s",
			want: FlushHand{Kickers: [5]Card{card("As"), card("5s"), card("4s"), card("3s"), card("2s")}},
		},
		{
			name: "three of a kind low",
			hand: "2s 2h 2d 5c 9s",
			want: ThreeOfAKindHand{Rank: Two, Kickers: [2]Card{card("9s"), card("5c")}},
		},
		{
			name: "three of a kind middle",
			hand: "2s 8h 8d 8c 9s",
			want: ThreeOfAKindHand{Rank: Eight, Kickers: [2]Card{card("9s"), card("2s")}},
		},
		{
			name: "three of a kind high",
			hand: "2s 5h Ad Ac As",
			want: ThreeOfAKindHand{Rank: Ace, Kickers: [2]Card{card("5h"), card("2s")}},
		},
		{
			name: "two pair kicker high",
			hand: "4s 4h 9d 9c Ks",
			want: TwoPairHand{HighPairRank: Nine, LowPairRank: Four, Kicker: card("Ks")},
		},
		{
			name: "two pair kicker middle",
			hand: "2s 2h 5d 9c 9s",
			want: TwoPairHand{HighPairRank: Nine, LowPairRank: Two, Kicker: card("5d")},
		},
		{
			name: "two pair kicker low",
			hand: "3s Jh Jd Qc Qs",
			want: TwoPairHand{HighPairRank: Queen, LowPairRank: Jack, Kicker: card("3s")},
		},
		{
			name: "pair low",
			hand: "5s 5h 8d Tc As",
			want: PairHand{Rank: Five, Kickers: [3]Card{card("As"), card("Tc"), card("8d")}},
		},
		{
			name: "pair high",
			hand: "5s 7h 8d Kc Ks",
			want: PairHand{Rank: King, Kickers: [3]Card{card("8d"), card("7h"), card("5s")}},
		},
		{
			name: "high card",
			hand: "2s 7h 9d Jc Ks",
			want: HighCardHand{Kickers: [5]Card{card("Ks"), card("Jc"), card("9d"), card("7h"), card("2s")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RankHand(mustHand(t, tt.hand))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Category(), got.Category())
		})
	}
}

func TestRankHandDoesNotMutate(t *testing.T) {
	t.Parallel()

	h := mustHand(t, "Ks 2h 9d 2c 5s")
	before := h
	RankHand(h)
	assert.Equal(t, before, h)
}

// Classification depends only on the multiset of cards.
func TestRankHandOrderInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 13))
	for range 500 {
		deck := Shuffle(FreshDeck(), rng)
		var h Hand
		copy(h[:], deck[:5])
		want := RankHand(h)

		for range 5 {
			var permuted Hand
			copy(permuted[:], Shuffle(h[:], rng))
			require.Equal(t, want, RankHand(permuted), "hand %s permuted to %s", h, permuted)
		}
	}
}

// Every category is reachable and the counts over all C(52,5) hands match
// the well-known distribution, adjusted for ace-low straights being high cards.
func TestRankHandDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive enumeration")
	}
	t.Parallel()

	counts := make(map[Category]int)
	deck := FreshDeck()
	n := len(deck)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					for m := l + 1; m < n; m++ {
						counts[RankHand(Hand{deck[i], deck[j], deck[k], deck[l], deck[m]}).Category()]++
					}
				}
			}
		}
	}

	// Standard counts with the 4 wheel straight flushes moved to flush and
	// the 1020 wheel straights moved to high card.
	want := map[Category]int{
		StraightFlush: 36,
		FourOfAKind:   624,
		FullHouse:     3744,
		Flush:         5108 + 4,
		Straight:      10200 - 1020,
		ThreeOfAKind:  54912,
		TwoPair:       123552,
		Pair:          1098240,
		HighCard:      1302540 + 1020,
	}
	assert.Equal(t, want, counts)
}
