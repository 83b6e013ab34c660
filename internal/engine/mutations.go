package engine

import (
	"errors"
	"fmt"

	"github.com/kethomassen/austerity/internal/cards"
)

// ErrNoSuchCard is returned by Purchase when the board index is out of
// range.
var ErrNoSuchCard = errors.New("engine: no such board index")

// TakeTokens moves the three chosen real-colour tokens from the pile into
// the player's wallet. Callers must validate with IsValidTake first.
func (g *Game) TakeTokens(p *Player, vec cards.Vector) {
	for _, k := range cards.RealColours {
		g.pile[k] -= vec[k]
		p.Wallet[k] += vec[k]
	}
}

// TakeWild credits the player with one wild token. The server's wild
// supply is unbounded; invariant I3 covers only real colours.
func (g *Game) TakeWild(p *Player) {
	p.Wallet[cards.Wild]++
}

// Purchase removes board card index c, charges pay to the player's
// wallet, refunds pay's real-colour tokens to the pile, and credits the
// player's score and discount. Callers must validate affordability with
// CanAfford first. The returned card is the one purchased, for broadcast.
func (g *Game) Purchase(p *Player, c int, pay Payment) (cards.Card, error) {
	if c < 0 || c >= len(g.board) {
		return cards.Card{}, fmt.Errorf("%w: index %d", ErrNoSuchCard, c)
	}
	card := g.board[c]
	g.board = append(g.board[:c], g.board[c+1:]...)

	for _, k := range cards.RealColours {
		p.Wallet[k] -= pay.Real[k]
		g.pile[k] += pay.Real[k]
	}
	p.Wallet[cards.Wild] -= pay.Wild

	p.Score += card.Value
	p.Discount[card.Discount]++
	return card, nil
}

// Reveal moves the deck's top card onto the board tail, if the board has
// room and the deck is non-empty. It reports the revealed card and
// whether a reveal happened.
func (g *Game) Reveal() (cards.Card, bool) {
	if len(g.board) >= maxBoard {
		return cards.Card{}, false
	}
	card, ok := g.deck.Draw()
	if !ok {
		return cards.Card{}, false
	}
	g.board = append(g.board, card)
	return card, true
}
