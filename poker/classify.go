package poker

// Hand is exactly five cards. Card order carries no meaning.
type Hand [5]Card

// Cards returns the hand as a slice.
func (h Hand) Cards() []Card {
	return h[:]
}

// String returns the hand in card notation.
func (h Hand) String() string {
	return FormatCards(h[:])
}

// RankHand classifies five cards into the strongest category they form.
func RankHand(h Hand) RankedHand {
	var sorted Hand
	copy(sorted[:], OrderCards(h[:]))

	if sf, ok := findStraightFlush(sorted); ok {
		return sf
	}
	if quads, ok := findFourOfAKind(sorted); ok {
		return quads
	}
	if fh, ok := findFullHouse(sorted); ok {
		return fh
	}
	if flush, ok := findFlush(sorted); ok {
		return flush
	}
	if straight, ok := findStraight(sorted); ok {
		return straight
	}
	if trips, ok := findThreeOfAKind(sorted); ok {
		return trips
	}
	if twoPair, ok := findTwoPair(sorted); ok {
		return twoPair
	}
	if pair, ok := findPair(sorted); ok {
		return pair
	}
	return findHighCard(sorted)
}

// The find* detectors all take the hand sorted ascending by rank.

func findStraightFlush(sorted Hand) (StraightFlushHand, bool) {
	straight, isStraight := findStraight(sorted)
	_, isFlush := findFlush(sorted)
	if !isStraight || !isFlush {
		return StraightFlushHand{}, false
	}
	return StraightFlushHand{HighCard: straight.HighCard}, true
}

func findFourOfAKind(sorted Hand) (FourOfAKindHand, bool) {
	for i := 0; i < 2; i++ {
		if sameRank(sorted[i : i+4]...) {
			rest := remaining(sorted, i, i+1, i+2, i+3)
			return FourOfAKindHand{Rank: sorted[i].Rank, Kicker: rest[0]}, true
		}
	}
	return FourOfAKindHand{}, false
}

func findFullHouse(sorted Hand) (FullHouseHand, bool) {
	for i := 0; i < 3; i++ {
		if !sameRank(sorted[i : i+3]...) {
			continue
		}
		rest := remaining(sorted, i, i+1, i+2)
		if sameRank(rest...) && rest[0].Rank != sorted[i].Rank {
			return FullHouseHand{ThreeOfAKindRank: sorted[i].Rank, PairRank: rest[0].Rank}, true
		}
	}
	return FullHouseHand{}, false
}

func findFlush(sorted Hand) (FlushHand, bool) {
	for i := 0; i < 4; i++ {
		if sorted[i].Suit != sorted[i+1].Suit {
			return FlushHand{}, false
		}
	}
	return FlushHand{Kickers: descending(sorted)}, true
}

// findStraight requires strictly consecutive ordinals. Ace only plays high.
func findStraight(sorted Hand) (StraightHand, bool) {
	for i := 0; i < 4; i++ {
		if sorted[i].Rank.Ordinal()+1 != sorted[i+1].Rank.Ordinal() {
			return StraightHand{}, false
		}
	}
	return StraightHand{HighCard: sorted[4]}, true
}

func findThreeOfAKind(sorted Hand) (ThreeOfAKindHand, bool) {
	for i := 0; i < 3; i++ {
		if sameRank(sorted[i : i+3]...) {
			rest := remaining(sorted, i, i+1, i+2)
			return ThreeOfAKindHand{
				Rank:    sorted[i].Rank,
				Kickers: [2]Card{rest[1], rest[0]},
			}, true
		}
	}
	return ThreeOfAKindHand{}, false
}

// twoPairLayouts lists the start index of the low and high pair for every
// way two disjoint adjacent pairs fit into five sorted cards.
var twoPairLayouts = [...][2]int{{0, 2}, {0, 3}, {1, 3}}

func findTwoPair(sorted Hand) (TwoPairHand, bool) {
	for _, layout := range twoPairLayouts {
		lo, hi := layout[0], layout[1]
		if !sameRank(sorted[lo], sorted[lo+1]) || !sameRank(sorted[hi], sorted[hi+1]) {
			continue
		}
		if sorted[lo].Rank == sorted[hi].Rank {
			continue
		}
		rest := remaining(sorted, lo, lo+1, hi, hi+1)
		return TwoPairHand{
			HighPairRank: sorted[hi].Rank,
			LowPairRank:  sorted[lo].Rank,
			Kicker:       rest[0],
		}, true
	}
	return TwoPairHand{}, false
}

func findPair(sorted Hand) (PairHand, bool) {
	for i := 0; i < 4; i++ {
		if sameRank(sorted[i], sorted[i+1]) {
			rest := remaining(sorted, i, i+1)
			return PairHand{
				Rank:    sorted[i].Rank,
				Kickers: [3]Card{rest[2], rest[1], rest[0]},
			}, true
		}
	}
	return PairHand{}, false
}

func findHighCard(sorted Hand) HighCardHand {
	return HighCardHand{Kickers: descending(sorted)}
}

func sameRank(cards ...Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

// remaining returns the cards of sorted not at the given indexes, still ascending.
func remaining(sorted Hand, used ...int) []Card {
	rest := make([]Card, 0, len(sorted)-len(used))
next:
	for i, c := range sorted {
		for _, u := range used {
			if i == u {
				continue next
			}
		}
		rest = append(rest, c)
	}
	return rest
}

func descending(sorted Hand) [5]Card {
	return [5]Card{sorted[4], sorted[3], sorted[2], sorted[1], sorted[0]}
}
