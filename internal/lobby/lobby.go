// Package lobby implements the pre-game registration slot: clients
// accumulate against a named lobby until it reaches its configured
// player count, at which point it is handed off to become a Game.
package lobby

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kethomassen/austerity/internal/engine"
)

// ErrInvalidName is returned for a player or game name containing a
// comma or a newline, which would corrupt the line-oriented wire format.
var ErrInvalidName = errors.New("lobby: invalid name")

// ValidateName rejects any name containing a comma or newline.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, ",\n") {
		return fmt.Errorf("%w: %q contains a comma or newline", ErrInvalidName, name)
	}
	return nil
}

// PortConfig is the target player count and per-game rules a listening
// port was configured with; a lobby created for a name inherits whichever
// port's config created it, regardless of which port later joiners
// arrive on.
type PortConfig struct {
	Tokens  int
	Points  int
	Players int
}

// Joiner is one client waiting in a lobby: its display name, its
// transferred sockets, and its arrival order (used as the seating
// tie-break for same-named players).
type Joiner struct {
	Name     string
	Sockets  *engine.Sockets
	JoinedAt int
}

// Lobby is an open registration slot for one game name. At most one open
// lobby per name exists at a time (enforced by the caller holding the
// join-lobby mutex across lookup/create/join/fill).
type Lobby struct {
	Name    string
	Cfg     PortConfig
	Joiners []Joiner
}

// New creates an empty lobby for name under cfg.
func New(name string, cfg PortConfig) *Lobby {
	return &Lobby{Name: name, Cfg: cfg}
}

// Add appends a joiner. Callers must already hold the join-lobby mutex.
func (l *Lobby) Add(j Joiner) {
	l.Joiners = append(l.Joiners, j)
}

// Full reports whether the lobby has reached its configured player
// count.
func (l *Lobby) Full() bool {
	return len(l.Joiners) >= l.Cfg.Players
}

// Seated returns the joiners in final seating order: alphabetical by
// name, ties broken by join order.
func (l *Lobby) Seated() []Joiner {
	seated := make([]Joiner, len(l.Joiners))
	copy(seated, l.Joiners)
	sort.SliceStable(seated, func(i, j int) bool {
		if seated[i].Name != seated[j].Name {
			return seated[i].Name < seated[j].Name
		}
		return seated[i].JoinedAt < seated[j].JoinedAt
	})
	return seated
}
