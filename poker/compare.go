package poker

import "fmt"

// CompareRankedHands orders two classified hands. It returns a negative
// number if a is weaker than b, zero if they tie and a positive number if a
// is stronger. Categories are compared first; within a category the
// tie-break fields are compared left to right.
//
// Both values must come from RankHand. A hand-built value whose category
// disagrees with its variant is a programming error and panics.
func CompareRankedHands(a, b RankedHand) int {
	if cmp := int(a.Category()) - int(b.Category()); cmp != 0 {
		return cmp
	}

	switch a := a.(type) {
	case StraightFlushHand:
		return CompareCards(a.HighCard, mustMatch[StraightFlushHand](a, b).HighCard)
	case FourOfAKindHand:
		b := mustMatch[FourOfAKindHand](a, b)
		return firstNonZero(
			func() int { return CompareRanks(a.Rank, b.Rank) },
			func() int { return CompareCards(a.Kicker, b.Kicker) },
		)
	case FullHouseHand:
		b := mustMatch[FullHouseHand](a, b)
		return firstNonZero(
			func() int { return CompareRanks(a.ThreeOfAKindRank, b.ThreeOfAKindRank) },
			func() int { return CompareRanks(a.PairRank, b.PairRank) },
		)
	case FlushHand:
		return compareKickers(a.Kickers[:], mustMatch[FlushHand](a, b).Kickers[:])
	case StraightHand:
		return CompareCards(a.HighCard, mustMatch[StraightHand](a, b).HighCard)
	case ThreeOfAKindHand:
		b := mustMatch[ThreeOfAKindHand](a, b)
		return firstNonZero(
			func() int { return CompareRanks(a.Rank, b.Rank) },
			func() int { return compareKickers(a.Kickers[:], b.Kickers[:]) },
		)
	case TwoPairHand:
		b := mustMatch[TwoPairHand](a, b)
		return firstNonZero(
			func() int { return CompareRanks(a.HighPairRank, b.HighPairRank) },
			func() int { return CompareRanks(a.LowPairRank, b.LowPairRank) },
			func() int { return CompareCards(a.Kicker, b.Kicker) },
		)
	case PairHand:
		b := mustMatch[PairHand](a, b)
		return firstNonZero(
			func() int { return CompareRanks(a.Rank, b.Rank) },
			func() int { return compareKickers(a.Kickers[:], b.Kickers[:]) },
		)
	case HighCardHand:
		return compareKickers(a.Kickers[:], mustMatch[HighCardHand](a, b).Kickers[:])
	default:
		panic(fmt.Sprintf("poker: unknown ranked hand variant %T", a))
	}
}

// CompareHands classifies and compares two five-card hands.
func CompareHands(a, b Hand) int {
	return CompareRankedHands(RankHand(a), RankHand(b))
}

// mustMatch asserts that b is the same variant as a once their categories
// have compared equal.
func mustMatch[T RankedHand](a T, b RankedHand) T {
	other, ok := b.(T)
	if !ok {
		panic(fmt.Sprintf("poker: invariant violated: %s hand %T compared with %T", a.Category(), a, b))
	}
	return other
}

func compareKickers(a, b []Card) int {
	for i := range a {
		if cmp := CompareCards(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func firstNonZero(cmps ...func() int) int {
	for _, cmp := range cmps {
		if c := cmp(); c != 0 {
			return c
		}
	}
	return 0
}
