package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CardID identifies one of the 52 cards of a standard deck.
// Ids 0-12 are spades, 13-25 hearts, 26-38 diamonds and 39-51 clubs,
// each suit running from ace to king.
type CardID int

const (
	DeckSize     = 52
	CardsPerSuit = 13
)

var (
	ErrSuitOutOfBounds = errors.New("Shape index out of bound!")
	ErrRankOutOfBounds = errors.New("Number index out of bound!")
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

var suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank. Ten is written as X so every label has
// a single character rank.
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "X"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

var ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// ToCard converts a card id into its card. The suit is checked before the rank.
func ToCard(id CardID) (Card, error) {
	if id < 0 || int(id)/CardsPerSuit >= len(suits) {
		return Card{}, fmt.Errorf("card id %d: %w", id, ErrSuitOutOfBounds)
	}

	rank := int(id) % CardsPerSuit
	if rank >= len(ranks) {
		return Card{}, fmt.Errorf("card id %d: %w", id, ErrRankOutOfBounds)
	}

	return Card{Suit: suits[int(id)/CardsPerSuit], Rank: ranks[rank]}, nil
}

// CardFromString parses a label produced by Card.String, e.g. "S-A" or "H-X".
func CardFromString(s string) (Card, error) {
	suit, rank, ok := strings.Cut(s, "-")
	if !ok {
		return Card{}, fmt.Errorf("invalid card label: %q", s)
	}

	var card Card
	switch Suit(suit) {
	case Spades, Hearts, Diamonds, Clubs:
		card.Suit = Suit(suit)
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", suit)
	}

	switch Rank(rank) {
	case Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King:
		card.Rank = Rank(rank)
	default:
		return Card{}, fmt.Errorf("invalid card rank: %q", rank)
	}

	return card, nil
}

// ID returns the card id of c, or -1 when c is not a valid card.
func (c Card) ID() CardID {
	suit, rank := -1, -1
	for i, s := range suits {
		if s == c.Suit {
			suit = i
		}
	}
	for i, r := range ranks {
		if r == c.Rank {
			rank = i
		}
	}
	if suit < 0 || rank < 0 {
		return -1
	}
	return CardID(suit*CardsPerSuit + rank)
}

// String returns the label of a card, suit first: "D-K".
func (c Card) String() string {
	return fmt.Sprintf("%s-%s", c.Suit, c.Rank)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// MarshalJSON encodes the card as its label.
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its label.
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	card, err := CardFromString(s)
	if err != nil {
		return err
	}
	*c = card
	return nil
}
