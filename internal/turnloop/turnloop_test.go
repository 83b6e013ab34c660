package turnloop

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kethomassen/austerity/internal/cards"
	"github.com/kethomassen/austerity/internal/engine"
	"github.com/kethomassen/austerity/internal/protocol"
	"github.com/kethomassen/austerity/internal/reconnect"
)

// testClient drives one side of a net.Pipe the way a player client would:
// it reads server lines and, on "dowhat", writes back whatever scripted
// reply is next in its queue.
type testClient struct {
	conn    net.Conn
	r       *bufio.Reader
	replies []string

	mu      sync.Mutex
	lines   []string
}

func newTestClient(conn net.Conn, replies []string) *testClient {
	return &testClient{conn: conn, r: bufio.NewReader(conn), replies: replies}
}

func (c *testClient) run() {
	next := 0
	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSuffix(line, "\n")
		c.mu.Lock()
		c.lines = append(c.lines, line)
		c.mu.Unlock()
		if line == "dowhat" && next < len(c.replies) {
			c.conn.Write([]byte(c.replies[next] + "\n"))
			next++
		}
	}
}

func (c *testClient) received(t *testing.T, timeout time.Duration, want string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		for _, l := range c.lines {
			if l == want {
				c.mu.Unlock()
				return
			}
		}
		c.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("never received %q", want)
}

func buildGame(t *testing.T, deckText string, tokens, win int, names ...string) (*engine.Game, []net.Conn) {
	t.Helper()
	deck, err := cards.ParseDeck(strings.NewReader(deckText))
	if err != nil {
		t.Fatalf("ParseDeck: %v", err)
	}
	g := engine.New(1, "g", 1, names, deck, tokens, win)
	conns := make([]net.Conn, len(names))
	for i := range names {
		serverSide, clientSide := net.Pipe()
		g.Player(i).SetSockets(engine.NewSockets(serverSide))
		conns[i] = clientSide
	}
	return g, conns
}

func TestRunRoundCompletesOnWinThreshold(t *testing.T) {
	g, conns := buildGame(t, strings.Repeat("P:1:0,0,0,0\n", 3), 3, 1, "A", "B")

	a := newTestClient(conns[0], []string{protocol.EncodePurchaseReq(0, cards.Vector{}, 0)})
	b := newTestClient(conns[1], []string{protocol.EncodeWildReq()})
	go a.run()
	go b.run()

	rendez := reconnect.New(g.Finished)
	go Run(g, rendez, time.Second)

	a.received(t, time.Second, protocol.EncodeEOG())
	b.received(t, time.Second, protocol.EncodeEOG())

	if g.Players[0].Score != 1 {
		t.Fatalf("expected A's score to be 1, got %d", g.Players[0].Score)
	}
	if !g.Finished() {
		t.Fatal("expected the game to be finished")
	}
}

func TestRunDisconnectEndsGameAfterTimeout(t *testing.T) {
	g, conns := buildGame(t, strings.Repeat("P:1:0,0,0,0\n", 3), 3, 10, "A", "B")
	b := newTestClient(conns[1], nil)
	go b.run()

	rendez := reconnect.New(g.Finished)
	go Run(g, rendez, 30*time.Millisecond)

	// A never replies and its connection is closed, simulating a drop.
	conns[0].Close()

	b.received(t, time.Second, protocol.EncodeDisco(0))
	if !g.Finished() {
		t.Fatal("expected the game to be finished after a disconnect")
	}
}

func TestRunSecondStrikeEndsGameAsInvalid(t *testing.T) {
	g, conns := buildGame(t, strings.Repeat("P:1:0,0,0,0\n", 3), 3, 10, "A", "B")
	a := newTestClient(conns[0], []string{"takemelon", "take1,0,0,0"})
	b := newTestClient(conns[1], nil)
	go a.run()
	go b.run()

	rendez := reconnect.New(g.Finished)
	go Run(g, rendez, time.Second)

	b.received(t, time.Second, protocol.EncodeInvalid(0))
}

func TestRunReconnectResumesSameSeat(t *testing.T) {
	g, conns := buildGame(t, strings.Repeat("P:1:0,0,0,0\n", 3), 3, 10, "A", "B")
	b := newTestClient(conns[1], []string{protocol.EncodeWildReq()})
	go b.run()

	rendez := reconnect.New(g.Finished)
	go Run(g, rendez, time.Second)

	conns[0].Close() // A drops on its first dowhat

	time.Sleep(20 * time.Millisecond) // let the turn loop register the surrender
	if !rendez.Claim(0) {
		t.Fatal("expected the claim for seat 0 to succeed")
	}
	newServerSide, newClientSide := net.Pipe()
	a := newTestClient(newClientSide, []string{protocol.EncodeWildReq()})
	go a.run()

	g.Player(0).SetSockets(engine.NewSockets(newServerSide))
	SendCatchup(g, 0, engine.NewSockets(newServerSide))
	rendez.Resolve(0)

	a.received(t, time.Second, "dowhat")
}
