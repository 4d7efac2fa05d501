package cards

import "strings"

// Hand is the ordered list of cards dealt to one player. A nil Hand
// means the player received no hand at all and encodes as JSON null.
type Hand []Card

// Dealt reports whether the player was dealt a hand, even an empty one.
func (h Hand) Dealt() bool {
	return h != nil
}

func (h Hand) String() string {
	labels := make([]string, len(h))
	for i, c := range h {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

// DealResult maps a player index to the hand that player received.
type DealResult []Hand

// CardCount returns the number of cards across all hands.
func (r DealResult) CardCount() int {
	n := 0
	for _, h := range r {
		n += len(h)
	}
	return n
}
