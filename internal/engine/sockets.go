package engine

import (
	"bufio"
	"net"
)

// Sockets is the pair of file handles a connection handler hands to a
// game on behalf of one seat. Ownership transfers to the game the moment
// it is stored on a Player: the handler goroutine that accepted the
// connection exits without closing it.
type Sockets struct {
	Conn   net.Conn
	Reader *bufio.Reader
}

// NewSockets wraps conn with a line reader.
func NewSockets(conn net.Conn) *Sockets {
	return &Sockets{Conn: conn, Reader: bufio.NewReader(conn)}
}

// Close closes the underlying connection. A write or close against an
// already-dead peer is not an error worth reporting: the disconnect is
// discovered on the next read.
func (s *Sockets) Close() {
	if s == nil || s.Conn == nil {
		return
	}
	_ = s.Conn.Close()
}
