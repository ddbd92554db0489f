package poker

import "slices"

// CompareRanks returns a negative number if r1 is worth less than r2, zero if
// they are equal and a positive number if r1 is worth more.
func CompareRanks(r1, r2 Rank) int {
	return r1.Ordinal() - r2.Ordinal()
}

// CompareCards compares two cards by rank only. Suit never affects value.
func CompareCards(c1, c2 Card) int {
	return CompareRanks(c1.Rank, c2.Rank)
}

// OrderCards returns a copy of cards sorted from lowest to highest value.
// Cards of equal rank keep their relative order.
func OrderCards(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	slices.SortStableFunc(sorted, CompareCards)
	return sorted
}
