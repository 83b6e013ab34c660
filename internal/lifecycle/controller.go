// Package lifecycle implements the server's top-level signal-driven
// control loop: SIGINT reloads the statfile and re-listens without
// touching running games; SIGTERM finalises every game and exits.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kethomassen/austerity/internal/austconfig"
	"github.com/kethomassen/austerity/internal/austerity"
	"github.com/kethomassen/austerity/internal/hostserver"
)

// ErrListenFailed is returned when the acceptor pool cannot bind one of
// the statfile's configured ports.
var ErrListenFailed = errors.New("lifecycle: failed to listen")

// Controller owns the acceptor pool's start/stop/reload cycle for one
// running server process.
type Controller struct {
	Server       *austerity.Server
	StatfilePath string
	Logger       *slog.Logger

	// DiagnosticWriter receives the one line of bound ports after every
	// (re-)listen, space-separated in statfile order. Defaults to
	// os.Stdout when nil.
	DiagnosticWriter interface {
		WriteString(string) (int, error)
	}
}

// Run binds the acceptor pool from the statfile and blocks until ctx is
// cancelled or a fatal signal ends the process. SIGPIPE is ignored for
// the lifetime of the call.
func (c *Controller) Run(ctx context.Context) error {
	signal.Ignore(syscall.SIGPIPE)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	acc, acceptCtx, cancelAccept, err := c.listen()
	if err != nil {
		return err
	}
	go acc.Serve(acceptCtx)

	for {
		select {
		case <-ctx.Done():
			cancelAccept()
			c.Server.Shutdown()
			return nil

		case sig := <-sigCh:
			switch sig {
			case syscall.SIGINT:
				c.Logger.Info("SIGINT received, reloading statfile")
				cancelAccept()
				acc, acceptCtx, cancelAccept, err = c.listen()
				if err != nil {
					return err
				}
				go acc.Serve(acceptCtx)

			case syscall.SIGTERM:
				c.Logger.Info("SIGTERM received, shutting down")
				cancelAccept()
				c.Server.Shutdown()
				return nil
			}
		}
	}
}

func (c *Controller) listen() (*hostserver.Acceptor, context.Context, context.CancelFunc, error) {
	f, err := os.Open(c.StatfilePath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: opening %s: %w", austconfig.ErrBadStatfile, c.StatfilePath, err)
	}
	defer f.Close()

	entries, err := austconfig.ParseStatfile(f)
	if err != nil {
		return nil, nil, nil, err
	}

	acc := hostserver.New(c.Server, entries, c.Logger)
	if err := acc.Listen(); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrListenFailed, err)
	}
	c.printBoundPorts(acc.BoundPorts())

	ctx, cancel := context.WithCancel(context.Background())
	return acc, ctx, cancel, nil
}

func (c *Controller) printBoundPorts(ports []int) {
	line := ""
	for i, p := range ports {
		if i > 0 {
			line += " "
		}
		line += fmt.Sprintf("%d", p)
	}
	if c.DiagnosticWriter != nil {
		c.DiagnosticWriter.WriteString(line + "\n")
		return
	}
	fmt.Fprintln(os.Stdout, line)
}
