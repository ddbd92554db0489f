package poker

import (
	"math/rand/v2"
)

// DeckSize is the number of cards in a fresh deck.
const DeckSize = len(Suits) * len(Ranks)

// FreshDeck returns the 52 cards in opened-box order: suit-major, ranks
// ascending within each suit.
func FreshDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Shuffle returns a uniformly shuffled copy of cards using Fisher-Yates.
// The input is left untouched. A nil rng uses the global math/rand/v2 source.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)

	for i := len(shuffled) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Without returns the cards of deck that do not appear in any of the
// excluded sets, preserving deck order.
func Without(deck []Card, excluded ...[]Card) []Card {
	used := make(map[Card]struct{})
	for _, set := range excluded {
		for _, c := range set {
			used[c] = struct{}{}
		}
	}

	remaining := make([]Card, 0, len(deck))
	for _, c := range deck {
		if _, ok := used[c]; !ok {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
