package turnloop

import (
	"github.com/kethomassen/austerity/internal/engine"
)

// writeLine sends line plus a trailing newline to sockets. A write
// failure is dropped rather than surfaced: a dead peer is discovered on
// its next read, not on this write (spec §9's "suppress the write-error
// signal" rule).
func writeLine(sockets *engine.Sockets, line string) {
	if sockets == nil || sockets.Conn == nil {
		return
	}
	_, _ = sockets.Conn.Write([]byte(line + "\n"))
}

// broadcastAll writes line to every seat's current sockets.
func broadcastAll(g *engine.Game, line string) {
	for _, p := range g.Players {
		writeLine(p.Sockets(), line)
	}
}
