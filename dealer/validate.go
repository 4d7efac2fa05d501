package dealer

import (
	"math/big"
	"strconv"
	"strings"
)

const (
	MinPlayers = 1
	MaxPlayers = 99
)

var (
	minPlayersRat = big.NewRat(MinPlayers, 1)
	maxPlayersRat = big.NewRat(MaxPlayers, 1)
)

// ParsePlayerCount turns raw input into a player count in [MinPlayers, MaxPlayers].
//
// Plain integers are accepted with an optional sign. Decimal and exponent
// forms are accepted only when they denote a whole number, so "4.0" and
// "1e1" parse while "4.5" and "4.0000000000000001" do not.
func ParsePlayerCount(raw string) (int, error) {
	const op = "dealer.parse_player_count"

	s := strings.TrimSpace(raw)

	n, err := strconv.Atoi(s)
	if err != nil {
		r, ok := parseWhole(s)
		if !ok {
			return 0, &Error{Op: op, Kind: KindInvalidFormat, Msg: MsgInvalidFormat, Err: err}
		}
		if r.Cmp(minPlayersRat) < 0 || r.Cmp(maxPlayersRat) > 0 {
			return 0, &Error{Op: op, Kind: KindOutOfRange, Msg: MsgOutOfRange}
		}
		n = int(r.Num().Int64())
	}

	if n < MinPlayers || n > MaxPlayers {
		return 0, &Error{Op: op, Kind: KindOutOfRange, Msg: MsgOutOfRange}
	}
	return n, nil
}

// parseWhole parses s exactly and accepts it only when it is an integer.
// Exponents too large for math/big to expand are rejected.
func parseWhole(s string) (*big.Rat, bool) {
	if s == "" {
		return nil, false
	}
	// Keeps out the "a/b", hex, underscore and inf forms SetString would take.
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return nil, false
		}
	}

	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() {
		return nil, false
	}
	return r, true
}
