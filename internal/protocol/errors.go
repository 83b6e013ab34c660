package protocol

import "errors"

// ErrProtocol is the sentinel wrapped by every decode failure: a
// malformed prefix, wrong field count, or a non-integer where a decimal
// non-negative integer was required.
var ErrProtocol = errors.New("protocol: malformed message")
