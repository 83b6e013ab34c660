// Command austerity-player is a minimal reference client: it
// authenticates, joins or reconnects to a game, and plays out its turns
// with a trivial always-legal strategy (request a wild token every
// time). It stands in for the scripted AI strategies that are out of
// scope for this module.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/kethomassen/austerity/internal/austconfig"
	"github.com/kethomassen/austerity/internal/lobby"
	"github.com/kethomassen/austerity/internal/protocol"
)

const (
	exitOK = iota
	exitWrongArgs
	exitBadKeyfile
	exitBadName
	_ // 4 is unused for this client
	exitConnectionFailed
	exitBadAuth
	exitBadReconnectID
	exitCommError
	exitDisconnectedByOther
	exitInvalidByOther
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: austerity-player <keyfile> <port> <game|reconnect> <player-name|reconnect-id>")
		return exitWrongArgs
	}
	keyfilePath, portArg, target, identifier := args[0], args[1], args[2], args[3]

	f, err := os.Open(keyfilePath)
	if err != nil {
		return exitBadKeyfile
	}
	key, err := austconfig.ParseKeyfile(f)
	f.Close()
	if err != nil {
		return exitBadKeyfile
	}

	port, err := strconv.Atoi(portArg)
	if err != nil {
		return exitWrongArgs
	}

	conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
	if err != nil {
		return exitConnectionFailed
	}
	defer conn.Close()
	r := bufio.NewReader(conn)

	if target == "reconnect" {
		return playReconnect(conn, r, key, identifier)
	}
	return playJoin(conn, r, key, target, identifier)
}

func playJoin(conn net.Conn, r *bufio.Reader, key, gameName, playerName string) int {
	if err := lobby.ValidateName(playerName); err != nil {
		return exitBadName
	}

	writeLine(conn, protocol.EncodePlayAuth(key))
	reply, err := readLine(r)
	if err != nil {
		return exitCommError
	}
	if reply != "yes" {
		return exitBadAuth
	}

	writeLine(conn, gameName)
	writeLine(conn, playerName)

	return playLoop(conn, r)
}

func playReconnect(conn net.Conn, r *bufio.Reader, key, reconnectID string) int {
	writeLine(conn, protocol.EncodeReconnectAuth(key))
	reply, err := readLine(r)
	if err != nil {
		return exitCommError
	}
	if reply != "yes" {
		return exitBadAuth
	}

	writeLine(conn, "rid"+reconnectID)
	reply, err = readLine(r)
	if err != nil {
		return exitCommError
	}
	if reply != "yes" {
		return exitBadReconnectID
	}

	return playLoop(conn, r)
}

// playLoop reads server lines until the game ends, replying "wild" to
// every dowhat prompt. It returns the exit code matching how the game
// ended.
func playLoop(conn net.Conn, r *bufio.Reader) int {
	for {
		line, err := readLine(r)
		if err != nil {
			return exitCommError
		}
		switch {
		case line == "dowhat":
			writeLine(conn, protocol.EncodeWildReq())
		case line == "eog":
			return exitOK
		case strings.HasPrefix(line, "disco"):
			return exitDisconnectedByOther
		case strings.HasPrefix(line, "invalid"):
			return exitInvalidByOther
		}
	}
}

func writeLine(conn net.Conn, line string) {
	_, _ = conn.Write([]byte(line + "\n"))
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
