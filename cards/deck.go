package cards

import "math/rand/v2"

// NewDeck52 creates a standard deck of 52 card ids in suit order
func NewDeck52() []CardID {
	deck := make([]CardID, DeckSize)
	for i := range deck {
		deck[i] = CardID(i)
	}
	return deck
}

// Shuffler permutes a deck in place.
type Shuffler interface {
	Shuffle(deck []CardID)
}

// RandomShuffler is a Fisher-Yates shuffler. A nil Rand uses the
// automatically seeded global source, so no two processes share a sequence.
type RandomShuffler struct {
	Rand *rand.Rand
}

func (s RandomShuffler) Shuffle(deck []CardID) {
	swap := func(i, j int) { deck[i], deck[j] = deck[j], deck[i] }
	if s.Rand == nil {
		rand.Shuffle(len(deck), swap)
		return
	}
	s.Rand.Shuffle(len(deck), swap)
}

// ShuffleCards returns a shuffled copy of deck
func ShuffleCards(s Shuffler, deck []CardID) []CardID {
	shuffled := make([]CardID, len(deck))
	copy(shuffled, deck)

	s.Shuffle(shuffled)

	return shuffled
}
