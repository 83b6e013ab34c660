// Command austerity-server runs one lobby-and-game host: it loads a
// shared authentication key, a card deck, and a per-port rules table,
// then listens for players until terminated.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/kethomassen/austerity/internal/austconfig"
	"github.com/kethomassen/austerity/internal/austerity"
	"github.com/kethomassen/austerity/internal/cards"
	"github.com/kethomassen/austerity/internal/lifecycle"
)

const (
	exitOK = iota
	exitWrongArgs
	exitBadKeyfile
	exitBadDeckfile
	exitBadStatfile
	exitBadTimeout
	exitFailedToListen
)

const exitSystemError = 10

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: austerity-server <keyfile> <deckfile> <statfile> <timeout>")
		return exitWrongArgs
	}
	keyfilePath, deckfilePath, statfilePath, timeoutArg := args[0], args[1], args[2], args[3]

	key, err := readKeyfile(keyfilePath)
	if err != nil {
		logger.Error("bad keyfile", "error", err)
		return exitBadKeyfile
	}

	deck, err := readDeckfile(deckfilePath)
	if err != nil {
		logger.Error("bad deckfile", "error", err)
		return exitBadDeckfile
	}

	timeoutSeconds, err := strconv.Atoi(timeoutArg)
	if err != nil || timeoutSeconds < 0 {
		logger.Error("bad timeout", "value", timeoutArg)
		return exitBadTimeout
	}

	server := austerity.New(key, deck, logger, time.Duration(timeoutSeconds)*time.Second)
	controller := &lifecycle.Controller{
		Server:       server,
		StatfilePath: statfilePath,
		Logger:       logger,
	}

	if err := controller.Run(context.Background()); err != nil {
		switch {
		case errors.Is(err, austconfig.ErrBadStatfile):
			logger.Error("bad statfile", "error", err)
			return exitBadStatfile
		case errors.Is(err, lifecycle.ErrListenFailed):
			logger.Error("failed to listen", "error", err)
			return exitFailedToListen
		default:
			logger.Error("system error", "error", err)
			return exitSystemError
		}
	}
	return exitOK
}

func readKeyfile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return austconfig.ParseKeyfile(f)
}

func readDeckfile(path string) (*cards.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cards.ParseDeck(f)
}
