package stderr

import (
	"bufio"
	"io"
	"strings"

	zlog "github.com/rs/zerolog/log"
)

// Messages receives captured stderr lines for display in the UI.
var Messages = make(chan string, 100)

// forward logs each non-empty line of r and offers it on out,
// dropping it when out is full.
func forward(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		zlog.Warn().Str("source", "stderr").Msg(line)
		select {
		case out <- line:
		default:
		}
	}
}
