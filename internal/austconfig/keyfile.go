// Package austconfig parses the three start-up configuration files:
// keyfile (shared authentication secret), deckfile (delegated to
// internal/cards), and statfile (per-port lobby rules).
package austconfig

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrBadKeyfile is returned for a keyfile that is not exactly one
// non-empty line with no trailing newline.
var ErrBadKeyfile = errors.New("austconfig: invalid keyfile")

// ParseKeyfile reads the shared-secret key: exactly one non-empty line,
// no trailing newline.
func ParseKeyfile(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("austconfig: reading keyfile: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrBadKeyfile)
	}
	if raw[len(raw)-1] == '\n' {
		return "", fmt.Errorf("%w: must not end in a newline", ErrBadKeyfile)
	}

	sc := bufio.NewScanner(bytes.NewReader(raw))
	if !sc.Scan() {
		return "", fmt.Errorf("%w: no key line", ErrBadKeyfile)
	}
	key := sc.Text()
	if key == "" {
		return "", fmt.Errorf("%w: empty key line", ErrBadKeyfile)
	}
	if sc.Scan() {
		return "", fmt.Errorf("%w: more than one line", ErrBadKeyfile)
	}
	return key, nil
}
