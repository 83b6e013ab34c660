// Package turnloop drives one running game's turn-by-turn play: prompting
// each seat in order, validating and applying its move, broadcasting the
// result, and detecting every way a game can end.
package turnloop

import (
	"time"

	"github.com/kethomassen/austerity/internal/engine"
	"github.com/kethomassen/austerity/internal/protocol"
	"github.com/kethomassen/austerity/internal/reconnect"
)

type outcome int

const (
	outcomeContinue outcome = iota
	outcomeDisconnect
	outcomeInvalidProtocol
	outcomeBoardExhausted
)

// Run is the goroutine entry point for one game: it owns every write to
// the game's state from this point on. It returns once the game has
// ended, by whichever of eog/disco/invalid terminates it.
func Run(g *engine.Game, rendez *reconnect.Rendezvous, timeout time.Duration) {
	sendInitialHandshake(g)

	n := len(g.Players)
	seat := 0
	roundEnding := false

	for {
		switch playSeat(g, rendez, timeout, seat) {
		case outcomeDisconnect:
			endGame(g, rendez, protocol.EncodeDisco(seat))
			return
		case outcomeInvalidProtocol:
			endGame(g, rendez, protocol.EncodeInvalid(seat))
			return
		case outcomeBoardExhausted:
			endGame(g, rendez, protocol.EncodeEOG())
			return
		}

		if !roundEnding && g.IsGameOver() {
			roundEnding = true
		}
		if roundEnding && seat == n-1 {
			endGame(g, rendez, protocol.EncodeEOG())
			return
		}
		seat = (seat + 1) % n
	}
}

// playSeat prompts seat, reads its reply, and applies it if legal. A
// disconnect triggers the reconnect rendezvous; a second consecutive
// syntactically or semantically bad reply ends the game.
func playSeat(g *engine.Game, rendez *reconnect.Rendezvous, timeout time.Duration, seat int) outcome {
	attempts := 0
	for {
		p := g.Player(seat)
		writeLine(p.Sockets(), protocol.EncodeDoWhat())

		line, err := readLine(p.Sockets())
		if err != nil {
			if rendez.Surrender(seat, timeout) {
				continue // reconnected; re-prompt the same seat, not a strike
			}
			return outcomeDisconnect
		}

		attempts++
		if msg, decodeErr := protocol.Decode(line); decodeErr == nil {
			if out, applied := tryApply(g, p, msg); applied {
				return out
			}
		}
		if attempts >= 2 {
			return outcomeInvalidProtocol
		}
	}
}

// tryApply attempts to apply msg as seat p's move. It reports the
// resulting outcome and whether the move was legal and applied; an
// illegal or unrecognised move reports (outcomeContinue, false) so the
// caller can count it as a strike.
func tryApply(g *engine.Game, p *engine.Player, msg protocol.Message) (outcome, bool) {
	switch msg.Kind {
	case protocol.KindTakeReq:
		if !g.IsValidTake(msg.Real) {
			return outcomeContinue, false
		}
		g.TakeTokens(p, msg.Real)
		broadcastAll(g, protocol.EncodeTook(p.Seat, msg.Real))
		return outcomeContinue, true

	case protocol.KindWildReq:
		g.TakeWild(p)
		broadcastAll(g, protocol.EncodeWildBroadcast(p.Seat))
		return outcomeContinue, true

	case protocol.KindPurchaseReq:
		board := g.Board()
		if msg.CardIndex < 0 || msg.CardIndex >= len(board) {
			return outcomeContinue, false
		}
		card := board[msg.CardIndex]
		if !engine.CanAfford(p, card) {
			return outcomeContinue, false
		}
		want := engine.RequiredPayment(p, card)
		got := engine.Payment{Real: msg.Real, Wild: msg.Wild}
		if got != want {
			return outcomeContinue, false
		}

		if _, err := g.Purchase(p, msg.CardIndex, want); err != nil {
			return outcomeContinue, false
		}
		broadcastAll(g, protocol.EncodePurchased(p.Seat, msg.CardIndex, want.Real, want.Wild))

		if revealed, ok := g.Reveal(); ok {
			broadcastAll(g, protocol.EncodeNewCard(revealed))
		}
		if len(g.Board()) == 0 && g.DeckRemaining() == 0 {
			return outcomeBoardExhausted, true
		}
		return outcomeContinue, true

	default:
		return outcomeContinue, false
	}
}

// Shutdown finishes g (if it has not already ended on its own) and
// broadcasts eog, closing every socket and waking rendez. Called by the
// lifecycle controller on SIGTERM; safe to race with a still-running
// Run goroutine, since Finish only ever succeeds once.
func Shutdown(g *engine.Game, rendez *reconnect.Rendezvous) {
	endGame(g, rendez, protocol.EncodeEOG())
}

// endGame finishes g exactly once, broadcasts the terminal message,
// closes every socket, and wakes the reconnect rendezvous so no waiter
// is left hanging.
func endGame(g *engine.Game, rendez *reconnect.Rendezvous, terminal string) {
	if !g.Finish() {
		return // another path (e.g. shutdown) already finished this game
	}
	broadcastAll(g, terminal)
	for _, p := range g.Players {
		p.Sockets().Close()
	}
	rendez.NotifyFinished()
}
