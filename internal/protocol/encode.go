package protocol

import (
	"fmt"

	"github.com/kethomassen/austerity/internal/cards"
)

func letter(seat int) byte {
	return byte('A' + seat)
}

func formatVector(v cards.Vector) string {
	return fmt.Sprintf("%d,%d,%d,%d", v[cards.Purple], v[cards.Brown], v[cards.Yellow], v[cards.Red])
}

func formatWallet(w [5]int) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d", w[cards.Purple], w[cards.Brown], w[cards.Yellow], w[cards.Red], w[cards.Wild])
}

// EncodeRid renders the rid<name>,<gc>,<p> reconnect-id triple, used both
// as the server's initial assignment and the player's reconnect claim.
func EncodeRid(gameName string, gameCounter, seat int) string {
	return fmt.Sprintf("rid%s,%d,%d", gameName, gameCounter, seat)
}

// EncodePlayInfo renders playinfo<L>/<N>.
func EncodePlayInfo(seat, total int) string {
	return fmt.Sprintf("playinfo%c/%d", letter(seat), total)
}

// EncodeTokens renders tokens<n>.
func EncodeTokens(n int) string {
	return fmt.Sprintf("tokens%d", n)
}

// EncodeNewCard renders newcard<D>:<V>:<P>,<B>,<Y>,<R>.
func EncodeNewCard(c cards.Card) string {
	return fmt.Sprintf("newcard%s:%d:%s", c.Discount, c.Value, formatVector(c.Price))
}

// EncodePurchased renders purchased<L>:<c>:<P>,<B>,<Y>,<R>,<W>.
func EncodePurchased(seat, cardIndex int, real cards.Vector, wild int) string {
	var w [5]int
	copy(w[:4], real[:])
	w[cards.Wild] = wild
	return fmt.Sprintf("purchased%c:%d:%s", letter(seat), cardIndex, formatWallet(w))
}

// EncodeTook renders took<L>:<P>,<B>,<Y>,<R>.
func EncodeTook(seat int, vec cards.Vector) string {
	return fmt.Sprintf("took%c:%s", letter(seat), formatVector(vec))
}

// EncodeWildBroadcast renders wild<L>.
func EncodeWildBroadcast(seat int) string {
	return fmt.Sprintf("wild%c", letter(seat))
}

// EncodePlayerSnapshot renders player<L>:<s>:d=<...>:t=<...>.
func EncodePlayerSnapshot(seat, score int, discount cards.Vector, wallet [5]int) string {
	return fmt.Sprintf("player%c:%d:d=%s:t=%s", letter(seat), score, formatVector(discount), formatWallet(wallet))
}

// EncodeDoWhat renders dowhat.
func EncodeDoWhat() string { return "dowhat" }

// EncodeDisco renders disco<L>.
func EncodeDisco(seat int) string { return fmt.Sprintf("disco%c", letter(seat)) }

// EncodeInvalid renders invalid<L>.
func EncodeInvalid(seat int) string { return fmt.Sprintf("invalid%c", letter(seat)) }

// EncodeEOG renders eog.
func EncodeEOG() string { return "eog" }

// EncodeYes renders yes.
func EncodeYes() string { return "yes" }

// EncodeNo renders no.
func EncodeNo() string { return "no" }

// EncodePlayAuth renders play<key>.
func EncodePlayAuth(key string) string { return "play" + key }

// EncodeReconnectAuth renders reconnect<key>.
func EncodeReconnectAuth(key string) string { return "reconnect" + key }

// EncodeScoresAuth renders scores.
func EncodeScoresAuth() string { return "scores" }

// EncodePurchaseReq renders purchase<c>:<P>,<B>,<Y>,<R>,<W>.
func EncodePurchaseReq(cardIndex int, real cards.Vector, wild int) string {
	var w [5]int
	copy(w[:4], real[:])
	w[cards.Wild] = wild
	return fmt.Sprintf("purchase%d:%s", cardIndex, formatWallet(w))
}

// EncodeTakeReq renders take<P>,<B>,<Y>,<R>.
func EncodeTakeReq(vec cards.Vector) string {
	return "take" + formatVector(vec)
}

// EncodeWildReq renders wild.
func EncodeWildReq() string { return "wild" }
