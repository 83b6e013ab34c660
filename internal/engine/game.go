// Package engine implements the Austerity board/deck/player/token state
// machine: legality of token takes and card purchases, wild-token
// mechanics, discounts, and game-end detection. Every operation here is a
// pure data transition; the sole caller is the owning game's turn-loop
// goroutine (see internal/turnloop), so nothing in this package takes a
// lock.
package engine

import (
	"github.com/kethomassen/austerity/internal/cards"
	"github.com/tevino/abool"
)

const maxBoard = 8

// Game is one running or finished match: its players in seating order, the
// remaining deck, the face-up board, the token piles, and the rules that
// govern it.
type Game struct {
	ID      int
	Name    string
	Counter int // 1-based ordinal among games sharing Name

	Players       []*Player
	deck          *cards.Deck
	board         []cards.Card
	pile          cards.Vector
	WinThreshold  int
	InitialTokens int

	finished *abool.AtomicBool
}

// New builds a game from a full lobby: players already in final seating
// order, a fresh deck copy, and the port's configured rules. The board is
// dealt up to eight cards and every pile is seeded to initialTokens.
func New(id int, name string, counter int, playerNames []string, deck *cards.Deck, initialTokens, winThreshold int) *Game {
	players := make([]*Player, len(playerNames))
	for i, n := range playerNames {
		players[i] = newPlayer(i, n)
	}
	g := &Game{
		ID:            id,
		Name:          name,
		Counter:       counter,
		Players:       players,
		deck:          deck,
		InitialTokens: initialTokens,
		WinThreshold:  winThreshold,
		finished:      abool.New(),
	}
	for _, k := range cards.RealColours {
		g.pile[k] = initialTokens
	}
	for i := 0; i < maxBoard; i++ {
		if _, revealed := g.Reveal(); !revealed {
			break
		}
	}
	return g
}

// Board returns the current face-up cards, index 0 oldest.
func (g *Game) Board() []cards.Card {
	return g.board
}

// Pile returns the current per-colour token pile.
func (g *Game) Pile() cards.Vector {
	return g.pile
}

// Finished reports whether the game has ended.
func (g *Game) Finished() bool {
	return g.finished.IsSet()
}

// Finish marks the game as ended. It is idempotent; only the first caller
// observes a transition (invariant I6: finished flips exactly once).
func (g *Game) Finish() bool {
	return g.finished.SetToIf(false, true)
}

// Player returns the player at seat, or nil if out of range.
func (g *Game) Player(seat int) *Player {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	return g.Players[seat]
}

// DeckRemaining reports how many cards are left undrawn.
func (g *Game) DeckRemaining() int {
	return g.deck.Len()
}
