package http

import (
	"fmt"
	"strings"
)

type RequestLine struct {
	Method  string
	Target  string
	Version string
}

// parse splits line on runs of whitespace. The first token is the method and
// the second the request target; a third, if present, is kept as the version
// without validation.
func (rl *RequestLine) parse(line string) error {
	// parts[0] = method, parts[1] = request-target, parts[2] = HTTP version
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}

	rl.Method = parts[0]
	rl.Target = parts[1]
	if len(parts) > 2 {
		rl.Version = parts[2]
	}

	return nil
}
