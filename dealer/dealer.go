package dealer

import (
	"errors"
	"fmt"

	"github.com/lazharichir/dealer/cards"
)

// Deal hands out a shuffled deck round-robin: the card at position i goes
// to player i mod players. The result always has one entry per player;
// players left without a card, possible only when there are more players
// than cards, get a nil hand.
func Deal(deck []cards.CardID, players int) (cards.DealResult, error) {
	const op = "dealer.deal"

	if players < MinPlayers {
		return nil, &Error{Op: op, Kind: KindOutOfRange, Msg: MsgOutOfRange}
	}
	if err := checkDeck(deck); err != nil {
		return nil, &Error{Op: op, Kind: KindInternalInconsistency, Msg: err.Error(), Err: err}
	}

	result := make(cards.DealResult, players)
	for i, id := range deck {
		card, err := cards.ToCard(id)
		if err != nil {
			return nil, encodeError(op, err)
		}
		result[i%players] = append(result[i%players], card)
	}

	return result, nil
}

// checkDeck verifies the deck holds every card id exactly once.
func checkDeck(deck []cards.CardID) error {
	if len(deck) != cards.DeckSize {
		return fmt.Errorf("deck has %d cards, want %d", len(deck), cards.DeckSize)
	}

	var seen [cards.DeckSize]bool
	for _, id := range deck {
		if id < 0 || id >= cards.DeckSize {
			return fmt.Errorf("deck holds unknown card id %d", id)
		}
		if seen[id] {
			return fmt.Errorf("deck holds card id %d twice", id)
		}
		seen[id] = true
	}
	return nil
}

func encodeError(op string, err error) error {
	kind := KindOutOfBoundsRank
	msg := cards.ErrRankOutOfBounds.Error()
	if errors.Is(err, cards.ErrSuitOutOfBounds) {
		kind = KindOutOfBoundsSuit
		msg = cards.ErrSuitOutOfBounds.Error()
	}
	return &Error{Op: op, Kind: kind, Msg: msg, Err: err}
}
