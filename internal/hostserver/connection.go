package hostserver

import (
	"bufio"
	"log/slog"
	"net"
	"strings"

	"github.com/kethomassen/austerity/internal/austconfig"
	"github.com/kethomassen/austerity/internal/austerity"
	"github.com/kethomassen/austerity/internal/engine"
	"github.com/kethomassen/austerity/internal/lobby"
	"github.com/kethomassen/austerity/internal/protocol"
	"github.com/kethomassen/austerity/internal/scoreboard"
	"github.com/kethomassen/austerity/internal/turnloop"
)

// handleConnection reads the one authentication line a freshly accepted
// socket is required to open with, and dispatches to the join, reconnect
// or scoreboard path. A socket that is handed off to a game is not
// closed here: ownership has transferred.
func handleConnection(conn net.Conn, server *austerity.Server, entry austconfig.PortEntry, logger *slog.Logger) {
	reader := bufio.NewReader(conn)

	line, err := readLine(reader)
	if err != nil {
		conn.Close()
		return
	}

	msg, err := protocol.Decode(line)
	if err != nil {
		conn.Close()
		return
	}

	switch msg.Kind {
	case protocol.KindPlayAuth:
		handlePlay(conn, reader, msg.Key, server, entry, logger)
	case protocol.KindReconnectAuth:
		handleReconnect(conn, reader, msg.Key, server, logger)
	case protocol.KindScoresAuth:
		handleScores(conn, server)
	default:
		conn.Close()
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func writeLine(conn net.Conn, line string) {
	_, _ = conn.Write([]byte(line + "\n"))
}

func handlePlay(conn net.Conn, reader *bufio.Reader, key string, server *austerity.Server, entry austconfig.PortEntry, logger *slog.Logger) {
	if key != server.Key {
		writeLine(conn, protocol.EncodeNo())
		conn.Close()
		return
	}
	writeLine(conn, protocol.EncodeYes())

	gameName, err := readLine(reader)
	if err != nil {
		conn.Close()
		return
	}
	playerName, err := readLine(reader)
	if err != nil {
		conn.Close()
		return
	}

	cfg := lobby.PortConfig{Tokens: entry.Tokens, Points: entry.Points, Players: entry.Players}
	sockets := &engine.Sockets{Conn: conn, Reader: reader}
	if err := server.Join(gameName, playerName, sockets, cfg); err != nil {
		logger.Warn("rejected join", "game", gameName, "player", playerName, "error", err)
		conn.Close()
	}
}

func handleReconnect(conn net.Conn, reader *bufio.Reader, key string, server *austerity.Server, logger *slog.Logger) {
	if key != server.Key {
		writeLine(conn, protocol.EncodeNo())
		conn.Close()
		return
	}
	writeLine(conn, protocol.EncodeYes())

	line, err := readLine(reader)
	if err != nil {
		conn.Close()
		return
	}
	ridMsg, err := protocol.Decode(line)
	if err != nil || ridMsg.Kind != protocol.KindRid {
		writeLine(conn, protocol.EncodeNo())
		conn.Close()
		return
	}

	game, rendez, err := server.Lookup(ridMsg.GameName, ridMsg.GameCounter, ridMsg.Seat)
	if err != nil {
		writeLine(conn, protocol.EncodeNo())
		conn.Close()
		return
	}

	if !rendez.Claim(ridMsg.Seat) {
		// Either the game finished while we waited, or shutdown woke
		// every waiter: either way this reconnect is rejected.
		writeLine(conn, protocol.EncodeNo())
		conn.Close()
		return
	}

	sockets := &engine.Sockets{Conn: conn, Reader: reader}
	game.Player(ridMsg.Seat).SetSockets(sockets)
	turnloop.SendCatchup(game, ridMsg.Seat, sockets)
	rendez.Resolve(ridMsg.Seat)

	logger.Info("reconnected", "game", ridMsg.GameName, "counter", ridMsg.GameCounter, "seat", ridMsg.Seat)
}

func handleScores(conn net.Conn, server *austerity.Server) {
	defer conn.Close()
	writeLine(conn, protocol.EncodeYes())
	rows := scoreboard.Aggregate(server.Games())
	_ = scoreboard.WriteCSV(conn, rows)
}
