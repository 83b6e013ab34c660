package turnloop

import (
	"strings"

	"github.com/kethomassen/austerity/internal/engine"
)

// readLine reads one newline-terminated message from sockets and strips
// the trailing newline. Any read error (including io.EOF) is returned
// as-is; the caller treats every such error as a disconnect.
func readLine(sockets *engine.Sockets) (string, error) {
	line, err := sockets.Reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
