package poker

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// RankedHand is a classified five-card hand. The concrete value is one of the
// nine *Hand variants below, each holding only what is needed to break ties
// within its category. The set of variants is closed to this package.
type RankedHand interface {
	Category() Category
	rankedHand()
}

// HighCardHand has no pattern; Kickers are sorted high to low.
type HighCardHand struct {
	Kickers [5]Card
}

// PairHand is two cards of Rank; Kickers are sorted high to low.
type PairHand struct {
	Rank    Rank
	Kickers [3]Card
}

// TwoPairHand is two pairs plus one kicker.
type TwoPairHand struct {
	HighPairRank Rank
	LowPairRank  Rank
	Kicker       Card
}

// ThreeOfAKindHand is three cards of Rank; Kickers are sorted high to low.
type ThreeOfAKindHand struct {
	Rank    Rank
	Kickers [2]Card
}

// StraightHand is five consecutive ranks topped by HighCard.
type StraightHand struct {
	HighCard Card
}

// FlushHand is five cards of one suit; Kickers are sorted high to low.
type FlushHand struct {
	Kickers [5]Card
}

// FullHouseHand is three of one rank and two of another.
type FullHouseHand struct {
	ThreeOfAKindRank Rank
	PairRank         Rank
}

// FourOfAKindHand is four cards of Rank plus a kicker.
type FourOfAKindHand struct {
	Rank   Rank
	Kicker Card
}

// StraightFlushHand is a straight in a single suit topped by HighCard.
type StraightFlushHand struct {
	HighCard Card
}

func (HighCardHand) Category() Category      { return HighCard }
func (PairHand) Category() Category          { return Pair }
func (TwoPairHand) Category() Category       { return TwoPair }
func (ThreeOfAKindHand) Category() Category  { return ThreeOfAKind }
func (StraightHand) Category() Category      { return Straight }
func (FlushHand) Category() Category         { return Flush }
func (FullHouseHand) Category() Category     { return FullHouse }
func (FourOfAKindHand) Category() Category   { return FourOfAKind }
func (StraightFlushHand) Category() Category { return StraightFlush }

func (HighCardHand) rankedHand()      {}
func (PairHand) rankedHand()          {}
func (TwoPairHand) rankedHand()       {}
func (ThreeOfAKindHand) rankedHand()  {}
func (StraightHand) rankedHand()      {}
func (FlushHand) rankedHand()         {}
func (FullHouseHand) rankedHand()     {}
func (FourOfAKindHand) rankedHand()   {}
func (StraightFlushHand) rankedHand() {}
