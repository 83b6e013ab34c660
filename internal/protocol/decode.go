package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kethomassen/austerity/internal/cards"
)

// Decode classifies line by its fixed prefix and parses its payload. line
// must already have any trailing newline stripped; any trailing
// whitespace left in line is itself a protocol error.
func Decode(line string) (Message, error) {
	if strings.TrimRight(line, " \t\r") != line {
		return Message{}, fmt.Errorf("%w: trailing whitespace", ErrProtocol)
	}

	switch {
	case strings.HasPrefix(line, "rid"):
		return decodeRid(line[len("rid"):])
	case strings.HasPrefix(line, "playinfo"):
		return decodePlayInfo(line[len("playinfo"):])
	case strings.HasPrefix(line, "player"):
		return decodePlayerSnapshot(line[len("player"):])
	case strings.HasPrefix(line, "play"):
		return Message{Kind: KindPlayAuth, Key: line[len("play"):]}, nil
	case strings.HasPrefix(line, "reconnect"):
		return Message{Kind: KindReconnectAuth, Key: line[len("reconnect"):]}, nil
	case strings.HasPrefix(line, "tokens"):
		return decodeTokens(line[len("tokens"):])
	case strings.HasPrefix(line, "newcard"):
		return decodeNewCard(line[len("newcard"):])
	case strings.HasPrefix(line, "purchased"):
		return decodePurchased(line[len("purchased"):])
	case strings.HasPrefix(line, "purchase"):
		return decodePurchaseReq(line[len("purchase"):])
	case strings.HasPrefix(line, "took"):
		return decodeTook(line[len("took"):])
	case strings.HasPrefix(line, "take"):
		return decodeTakeReq(line[len("take"):])
	case strings.HasPrefix(line, "wild"):
		return decodeWild(line[len("wild"):])
	case line == "dowhat":
		return Message{Kind: KindDoWhat}, nil
	case strings.HasPrefix(line, "disco"):
		return decodeLetterOnly(KindDisco, line[len("disco"):])
	case strings.HasPrefix(line, "invalid"):
		return decodeLetterOnly(KindInvalid, line[len("invalid"):])
	case line == "eog":
		return Message{Kind: KindEOG}, nil
	case line == "yes":
		return Message{Kind: KindYes}, nil
	case line == "no":
		return Message{Kind: KindNo}, nil
	case line == "scores":
		return Message{Kind: KindScoresAuth}, nil
	default:
		return Message{}, fmt.Errorf("%w: unrecognised message %q", ErrProtocol, line)
	}
}

func parseSeatLetter(s string) (int, error) {
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return 0, fmt.Errorf("%w: bad seat letter %q", ErrProtocol, s)
	}
	return int(s[0] - 'A'), nil
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad integer %q", ErrProtocol, s)
	}
	return n, nil
}

func parseVector(s string) (cards.Vector, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return cards.Vector{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrProtocol, len(fields))
	}
	var v cards.Vector
	for i, f := range fields {
		n, err := parseNonNegativeInt(f)
		if err != nil {
			return cards.Vector{}, err
		}
		v[i] = n
	}
	return v, nil
}

func parseWallet(s string) ([5]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 5 {
		return [5]int{}, fmt.Errorf("%w: expected 5 fields, got %d", ErrProtocol, len(fields))
	}
	var w [5]int
	for i, f := range fields {
		n, err := parseNonNegativeInt(f)
		if err != nil {
			return [5]int{}, err
		}
		w[i] = n
	}
	return w, nil
}

func decodeRid(rest string) (Message, error) {
	parts := strings.Split(rest, ",")
	if len(parts) != 3 {
		return Message{}, fmt.Errorf("%w: rid expects 3 comma-separated fields", ErrProtocol)
	}
	gc, err := parseNonNegativeInt(parts[1])
	if err != nil {
		return Message{}, err
	}
	seat, err := parseNonNegativeInt(parts[2])
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindRid, GameName: parts[0], GameCounter: gc, Seat: seat}, nil
}

func decodePlayInfo(rest string) (Message, error) {
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return Message{}, fmt.Errorf("%w: playinfo expects L/N", ErrProtocol)
	}
	seat, err := parseSeatLetter(parts[0])
	if err != nil {
		return Message{}, err
	}
	total, err := parseNonNegativeInt(parts[1])
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindPlayInfo, Seat: seat, TotalPlayers: total}, nil
}

func decodeTokens(rest string) (Message, error) {
	n, err := parseNonNegativeInt(rest)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindTokens, InitialTokens: n}, nil
}

func decodeNewCard(rest string) (Message, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Message{}, fmt.Errorf("%w: newcard expects D:V:P,B,Y,R", ErrProtocol)
	}
	colour, err := cards.ParseRealColour(parts[0])
	if err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	value, err := parseNonNegativeInt(parts[1])
	if err != nil {
		return Message{}, err
	}
	price, err := parseVector(parts[2])
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindNewCard, Card: cards.Card{Discount: colour, Value: value, Price: price}}, nil
}

func decodePurchased(rest string) (Message, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Message{}, fmt.Errorf("%w: purchased expects L:c:P,B,Y,R,W", ErrProtocol)
	}
	seat, err := parseSeatLetter(parts[0])
	if err != nil {
		return Message{}, err
	}
	idx, err := parseNonNegativeInt(parts[1])
	if err != nil {
		return Message{}, err
	}
	wallet, err := parseWallet(parts[2])
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind: KindPurchased, Seat: seat, CardIndex: idx,
		Real: cards.Vector{wallet[0], wallet[1], wallet[2], wallet[3]}, Wild: wallet[4],
	}, nil
}

func decodePurchaseReq(rest string) (Message, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != 2 {
		return Message{}, fmt.Errorf("%w: purchase expects c:P,B,Y,R,W", ErrProtocol)
	}
	idx, err := parseNonNegativeInt(parts[0])
	if err != nil {
		return Message{}, err
	}
	wallet, err := parseWallet(parts[1])
	if err != nil {
		return Message{}, err
	}
	return Message{
		Kind: KindPurchaseReq, CardIndex: idx,
		Real: cards.Vector{wallet[0], wallet[1], wallet[2], wallet[3]}, Wild: wallet[4],
	}, nil
}

func decodeTook(rest string) (Message, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != 2 {
		return Message{}, fmt.Errorf("%w: took expects L:P,B,Y,R", ErrProtocol)
	}
	seat, err := parseSeatLetter(parts[0])
	if err != nil {
		return Message{}, err
	}
	vec, err := parseVector(parts[1])
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindTook, Seat: seat, Real: vec}, nil
}

func decodeTakeReq(rest string) (Message, error) {
	vec, err := parseVector(rest)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindTakeReq, Real: vec}, nil
}

func decodeWild(rest string) (Message, error) {
	if rest == "" {
		return Message{Kind: KindWildReq}, nil
	}
	seat, err := parseSeatLetter(rest)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindWild, Seat: seat}, nil
}

func decodeLetterOnly(kind Kind, rest string) (Message, error) {
	seat, err := parseSeatLetter(rest)
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: kind, Seat: seat}, nil
}

func decodePlayerSnapshot(rest string) (Message, error) {
	parts := strings.Split(rest, ":")
	if len(parts) != 4 {
		return Message{}, fmt.Errorf("%w: player expects L:s:d=...:t=...", ErrProtocol)
	}
	seat, err := parseSeatLetter(parts[0])
	if err != nil {
		return Message{}, err
	}
	score, err := parseNonNegativeInt(parts[1])
	if err != nil {
		return Message{}, err
	}
	if !strings.HasPrefix(parts[2], "d=") {
		return Message{}, fmt.Errorf("%w: expected d=... field", ErrProtocol)
	}
	discount, err := parseVector(strings.TrimPrefix(parts[2], "d="))
	if err != nil {
		return Message{}, err
	}
	if !strings.HasPrefix(parts[3], "t=") {
		return Message{}, fmt.Errorf("%w: expected t=... field", ErrProtocol)
	}
	wallet, err := parseWallet(strings.TrimPrefix(parts[3], "t="))
	if err != nil {
		return Message{}, err
	}
	return Message{Kind: KindPlayerSnapshot, Seat: seat, Score: score, Discount: discount, Wallet: wallet}, nil
}
