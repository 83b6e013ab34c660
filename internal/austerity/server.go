// Package austerity ties the lobby, engine and reconnect packages
// together into the shared, concurrency-safe registry one listening
// process uses across all of its ports: every lobby waiting to fill,
// every running or finished game, and the rendezvous each game's turn
// loop uses to survive a dropped connection.
package austerity

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kethomassen/austerity/internal/cards"
	"github.com/kethomassen/austerity/internal/engine"
	"github.com/kethomassen/austerity/internal/lobby"
	"github.com/kethomassen/austerity/internal/reconnect"
	"github.com/kethomassen/austerity/internal/turnloop"
)

// ErrUnknownGame is returned when a reconnect names a game/counter/seat
// combination this server has no record of.
var ErrUnknownGame = errors.New("austerity: unknown game")

// gameRecord is everything the server keeps about one running or
// finished game, keyed by (name, counter).
type gameRecord struct {
	game   *engine.Game
	rendez *reconnect.Rendezvous
}

// Server is the process-wide registry for one running austerity-server
// instance. A single mutex guards lobby fill-and-promote so that a lobby
// can never be filled twice and two simultaneous "just became full"
// joins can never both start a game (spec's single-critical-section
// rule).
type Server struct {
	Key          string
	DeckTemplate *cards.Deck
	Logger       *slog.Logger
	Timeout      time.Duration

	mu       sync.Mutex
	lobbies  map[string]*lobby.Lobby
	games    map[string]*gameRecord // key: fmt.Sprintf("%s#%d", name, counter)
	counters map[string]int         // last counter assigned per game name
}

// New builds an empty registry.
func New(key string, deckTemplate *cards.Deck, logger *slog.Logger, timeout time.Duration) *Server {
	return &Server{
		Key:          key,
		DeckTemplate: deckTemplate,
		Logger:       logger,
		Timeout:      timeout,
		lobbies:      make(map[string]*lobby.Lobby),
		games:        make(map[string]*gameRecord),
		counters:     make(map[string]int),
	}
}

func gameKey(name string, counter int) string {
	return fmt.Sprintf("%s#%d", name, counter)
}

// Join registers a new player's sockets against gameName under cfg. If
// this join fills the lobby, it atomically promotes it to a running
// game and starts that game's turn loop. Join never blocks on network
// I/O; sockets is handed off without blocking reads or writes.
func (s *Server) Join(gameName, playerName string, sockets *engine.Sockets, cfg lobby.PortConfig) error {
	if err := lobby.ValidateName(gameName); err != nil {
		return err
	}
	if err := lobby.ValidateName(playerName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lobbies[gameName]
	if !ok {
		l = lobby.New(gameName, cfg)
		s.lobbies[gameName] = l
	}
	l.Add(lobby.Joiner{Name: playerName, Sockets: sockets, JoinedAt: len(l.Joiners)})

	if !l.Full() {
		return nil
	}

	delete(s.lobbies, gameName)
	s.startGame(l)
	return nil
}

// startGame promotes a filled lobby to a running game. Callers must
// already hold s.mu.
func (s *Server) startGame(l *lobby.Lobby) {
	seated := l.Seated()
	names := make([]string, len(seated))
	for i, j := range seated {
		names[i] = j.Name
	}

	counter := s.counters[l.Name] + 1
	s.counters[l.Name] = counter

	deck := s.DeckTemplate.Clone()
	game := engine.New(len(s.games)+1, l.Name, counter, names, deck, l.Cfg.Tokens, l.Cfg.Points)
	for i, j := range seated {
		game.Player(i).SetSockets(j.Sockets)
	}

	rendez := reconnect.New(game.Finished)
	s.games[gameKey(l.Name, counter)] = &gameRecord{game: game, rendez: rendez}

	s.Logger.Info("game started", "name", l.Name, "counter", counter, "players", names)
	go turnloop.Run(game, rendez, s.Timeout)
}

// Lookup resolves a reconnect's game name, counter and seat to the
// running game and its rendezvous. It fails if the triple is unknown or
// the seat is out of range.
func (s *Server) Lookup(gameName string, counter, seat int) (*engine.Game, *reconnect.Rendezvous, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.games[gameKey(gameName, counter)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s#%d", ErrUnknownGame, gameName, counter)
	}
	if p := rec.game.Player(seat); p == nil {
		return nil, nil, fmt.Errorf("%w: seat %d", ErrUnknownGame, seat)
	}
	return rec.game, rec.rendez, nil
}

// Games returns every game this server has ever started, running or
// finished, for scoreboard aggregation.
func (s *Server) Games() []*engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]*engine.Game, 0, len(s.games))
	for _, rec := range s.games {
		games = append(games, rec.game)
	}
	return games
}

// Shutdown finalises every game this server has started that has not
// already ended on its own: broadcasts eog, closes sockets, wakes the
// reconnect rendezvous. Running games are untouched by anything except
// this and their own natural end (SIGTERM's shutdown contract).
func (s *Server) Shutdown() {
	s.mu.Lock()
	recs := make([]*gameRecord, 0, len(s.games))
	for _, rec := range s.games {
		recs = append(recs, rec)
	}
	s.mu.Unlock()

	for _, rec := range recs {
		turnloop.Shutdown(rec.game, rec.rendez)
	}
}
