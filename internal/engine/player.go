package engine

import "github.com/kethomassen/austerity/internal/cards"

// Wallet holds a player's five per-colour token counts, indexed by
// cards.Colour including cards.Wild.
type Wallet [5]int

// Player is one seat's mutable game state. Score, Discount and Wallet are
// mutated only by the game's owning turn-loop goroutine (see
// internal/turnloop); Sockets is swapped by the reconnect handler between
// its Rendezvous Claim and Resolve calls, while the turn loop waits in
// Surrender. SetSockets itself takes no lock.
type Player struct {
	Seat     int
	Name     string
	Score    int
	Discount cards.Vector
	Wallet   Wallet

	sockets *Sockets
}

// Letter returns the player's display letter, 'A'+Seat.
func (p *Player) Letter() byte {
	return byte('A' + p.Seat)
}

// Sockets returns the player's current socket pair.
func (p *Player) Sockets() *Sockets {
	return p.sockets
}

// SetSockets installs a new socket pair for the player, used both at game
// start and on a successful reconnect.
func (p *Player) SetSockets(s *Sockets) {
	p.sockets = s
}

// newPlayer builds a fresh player record for seat with name, zero score,
// zero discounts and zero wallet.
func newPlayer(seat int, name string) *Player {
	return &Player{Seat: seat, Name: name}
}
