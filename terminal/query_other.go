//go:build !unix

package terminal

import (
	"os"
	"time"
)

// Interactive queries need termios and poll; elsewhere detection stays
// environment-only.
func runQueries(in, out *os.File, caps *Capabilities, timeout time.Duration, opts Options) (bool, error) {
	return false, nil
}
