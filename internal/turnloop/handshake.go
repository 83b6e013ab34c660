package turnloop

import (
	"github.com/kethomassen/austerity/internal/engine"
	"github.com/kethomassen/austerity/internal/protocol"
)

// sendInitialHandshake tells every seat its reconnect id, seat letter and
// player count, the pile size, then reveals the dealt board to everyone.
func sendInitialHandshake(g *engine.Game) {
	for _, p := range g.Players {
		s := p.Sockets()
		writeLine(s, protocol.EncodeRid(g.Name, g.Counter, p.Seat))
		writeLine(s, protocol.EncodePlayInfo(p.Seat, len(g.Players)))
		writeLine(s, protocol.EncodeTokens(g.InitialTokens))
	}
	for _, c := range g.Board() {
		broadcastAll(g, protocol.EncodeNewCard(c))
	}
}

// SendCatchup replays current game state to a single reconnecting socket:
// acceptance, seat/player-count, pile size, every face-up card, then one
// snapshot per seat. Called by the reconnect handler before it hands
// control back to the waiting turn loop via Rendezvous.Resolve.
func SendCatchup(g *engine.Game, seat int, sockets *engine.Sockets) {
	writeLine(sockets, protocol.EncodeYes())
	writeLine(sockets, protocol.EncodePlayInfo(seat, len(g.Players)))
	writeLine(sockets, protocol.EncodeTokens(g.InitialTokens))
	for _, c := range g.Board() {
		writeLine(sockets, protocol.EncodeNewCard(c))
	}
	for _, p := range g.Players {
		writeLine(sockets, protocol.EncodePlayerSnapshot(p.Seat, p.Score, p.Discount, [5]int(p.Wallet)))
	}
}
