// Package protocol implements the line-oriented wire codec shared by the
// server and the player client: one Encode function per
// outbound message kind, and a single Decode that classifies an inbound
// line by its fixed prefix.
package protocol

import "github.com/kethomassen/austerity/internal/cards"

// Kind classifies a decoded Message by its wire prefix.
type Kind int

const (
	KindUnknown Kind = iota

	// Server -> player.
	KindRid
	KindPlayInfo
	KindTokens
	KindNewCard
	KindPurchased
	KindTook
	KindWild
	KindPlayerSnapshot
	KindDoWhat
	KindDisco
	KindInvalid
	KindEOG
	KindYes
	KindNo

	// Player -> server.
	KindPlayAuth
	KindReconnectAuth
	KindScoresAuth
	KindPurchaseReq
	KindTakeReq
	KindWildReq
)

// Message is the decoded form of one wire line. Only the fields relevant
// to Kind are populated; the zero value of the rest is meaningless.
type Message struct {
	Kind Kind

	Key string // play<key> / reconnect<key>

	GameName    string // rid, reconnect id
	GameCounter int    // rid, reconnect id
	Seat        int    // rid, reconnect id, purchased/took/wild/player/disco/invalid letters decode to Seat

	TotalPlayers  int // playinfo
	InitialTokens int // tokens

	Card cards.Card // newcard

	CardIndex int            // purchase request / purchased broadcast
	Real      cards.Vector   // take vector / payment real-colour part
	Wild      int            // payment wild count

	Score    int          // player snapshot
	Discount cards.Vector // player snapshot
	Wallet   [5]int       // player snapshot, indexed by cards.Colour
}
