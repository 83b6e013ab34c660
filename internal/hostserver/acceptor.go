// Package hostserver implements the acceptor pool and per-connection
// authentication handshake: one listener per statfile entry, and the
// auth-line dispatch to new-player join, reconnect, or scoreboard
// streaming.
package hostserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/kethomassen/austerity/internal/austconfig"
	"github.com/kethomassen/austerity/internal/austerity"
	"golang.org/x/sync/errgroup"
)

// Acceptor owns one net.Listener per statfile entry and dispatches every
// accepted connection to a short-lived handler goroutine.
type Acceptor struct {
	server  *austerity.Server
	entries []austconfig.PortEntry
	logger  *slog.Logger

	mu        sync.Mutex
	listeners []net.Listener
}

// New builds an Acceptor for the given statfile entries, bound against
// server for join/reconnect/scoreboard dispatch.
func New(server *austerity.Server, entries []austconfig.PortEntry, logger *slog.Logger) *Acceptor {
	return &Acceptor{server: server, entries: entries, logger: logger}
}

// Listen binds every entry's port (0 meaning kernel-chosen ephemeral) and
// records the bound port back onto each entry, without yet accepting any
// connections. Splitting Listen from Serve lets the caller print the
// diagnostic bound-ports line before traffic starts.
func (a *Acceptor) Listen() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = make([]net.Listener, len(a.entries))
	for i, e := range a.entries {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", e.Port))
		if err != nil {
			for _, opened := range a.listeners[:i] {
				opened.Close()
			}
			return fmt.Errorf("hostserver: listening on port %d: %w", e.Port, err)
		}
		a.listeners[i] = ln
		a.entries[i].Port = ln.Addr().(*net.TCPAddr).Port
	}
	return nil
}

// BoundPorts returns the actually-bound port for every entry, in
// statfile order, once Listen has succeeded.
func (a *Acceptor) BoundPorts() []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	ports := make([]int, len(a.entries))
	for i, e := range a.entries {
		ports[i] = e.Port
	}
	return ports
}

// Serve accepts on every bound listener until ctx is cancelled, at which
// point every listener is closed and Serve returns once all in-flight
// accept loops have exited.
func (a *Acceptor) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	a.mu.Lock()
	listeners := append([]net.Listener(nil), a.listeners...)
	entries := append([]austconfig.PortEntry(nil), a.entries...)
	a.mu.Unlock()

	for i, ln := range listeners {
		ln := ln
		entry := entries[i]
		g.Go(func() error {
			return a.acceptLoop(ctx, ln, entry)
		})
	}

	go func() {
		<-ctx.Done()
		a.mu.Lock()
		for _, ln := range a.listeners {
			ln.Close()
		}
		a.mu.Unlock()
	}()

	return g.Wait()
}

func (a *Acceptor) acceptLoop(ctx context.Context, ln net.Listener, entry austconfig.PortEntry) error {
	a.logger.Info("acceptor listening", "port", entry.Port, "players", entry.Players)
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("hostserver: accept on port %d: %w", entry.Port, err)
		}
		go handleConnection(conn, a.server, entry, a.logger)
	}
}
