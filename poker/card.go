// Package poker implements the five-card poker hand model: cards, decks,
// hand classification, comparison and the best-hand search over larger sets.
package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. Suits carry no value ordering.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Clubs, Diamonds}

// String returns the single-letter notation of the suit.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// Rank represents a card rank.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from least to most valuable. A rank's index in this
// table is its ordinal and the only basis for value comparisons.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const rankChars = "23456789TJQKA"

// Ordinal returns the position of the rank in Ranks.
func (r Rank) Ordinal() int {
	for i, rank := range Ranks {
		if rank == r {
			return i
		}
	}
	panic(fmt.Sprintf("poker: rank %d outside the rank table", uint8(r)))
}

// String returns the single-character notation of the rank.
func (r Rank) String() string {
	if int(r) < len(rankChars) {
		return rankChars[r : r+1]
	}
	return "?"
}

// Card is an immutable suit and rank pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card notation, e.g. "As" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses two-character card notation such as "As", "td" or "2C".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: card %q must be two characters", ErrInvalidInput, s)
	}

	rankIdx := strings.IndexByte(rankChars, upper(s[0]))
	if rankIdx < 0 {
		return Card{}, fmt.Errorf("%w: invalid rank in %q", ErrInvalidInput, s)
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("%w: invalid suit in %q", ErrInvalidInput, s)
	}

	return NewCard(Ranks[rankIdx], suit), nil
}

// ParseCards parses a run of card notation. Whitespace and commas between
// cards are ignored, so "AsKs", "As Ks" and "As,Ks" are equivalent.
func ParseCards(s string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == '\t' {
			return -1
		}
		return r
	}, s)

	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("%w: card list %q has odd length", ErrInvalidInput, s)
	}

	cards := make([]Card, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests
// and fixed tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins card notation with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
