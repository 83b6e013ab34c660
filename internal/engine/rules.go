package engine

import "github.com/kethomassen/austerity/internal/cards"

// CanTakeTokens reports whether at least three real-colour piles are
// non-empty (I3: a take is only offerable while three distinct colours
// remain stocked).
func (g *Game) CanTakeTokens() bool {
	nonEmpty := 0
	for _, k := range cards.RealColours {
		if g.pile[k] > 0 {
			nonEmpty++
		}
	}
	return nonEmpty >= 3
}

// IsValidTake reports whether vec names exactly three distinct real
// colours with count 1 each, all other entries zero, and each named
// colour currently has a non-empty pile.
func (g *Game) IsValidTake(vec cards.Vector) bool {
	ones := 0
	for _, k := range cards.RealColours {
		switch vec[k] {
		case 0:
		case 1:
			ones++
			if g.pile[k] <= 0 {
				return false
			}
		default:
			return false
		}
	}
	return ones == 3
}

// shortfall returns, per real colour, max(0, price-discount-wallet).
func shortfall(p *Player, card cards.Card) cards.Vector {
	var out cards.Vector
	for _, k := range cards.RealColours {
		need := card.Price[k] - p.Discount[k] - p.Wallet[k]
		if need > 0 {
			out[k] = need
		}
	}
	return out
}

// CanAfford reports whether player can buy card: the shortfall left after
// discounts and real-colour tokens does not exceed their wild tokens.
func CanAfford(p *Player, card cards.Card) bool {
	return shortfall(p, card).Sum() <= p.Wallet[cards.Wild]
}

// RequiredPayment returns the unique minimal-in-wilds payment for card:
// the minimum of (wallet, price-discount) of each real colour, plus the
// exact shortfall paid in wilds. Callers must check CanAfford first.
func RequiredPayment(p *Player, card cards.Card) Payment {
	var pay Payment
	for _, k := range cards.RealColours {
		owed := card.Price[k] - p.Discount[k]
		if owed < 0 {
			owed = 0
		}
		pay.Real[k] = min(p.Wallet[k], owed)
	}
	pay.Wild = shortfall(p, card).Sum()
	return pay
}

// Payment is a concrete set of tokens spent on a purchase: per-colour real
// tokens plus a wild count.
type Payment struct {
	Real cards.Vector
	Wild int
}

// Total returns the combined real-colour-plus-wild token count spent.
func (p Payment) Total() int {
	return p.Real.Sum() + p.Wild
}

// IsGameOver reports whether any player has reached the win threshold.
func (g *Game) IsGameOver() bool {
	for _, p := range g.Players {
		if p.Score >= g.WinThreshold {
			return true
		}
	}
	return false
}
