//go:build unix

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// runQueries performs the interactive query stage. The input stream is
// switched to raw mode for the duration so responses arrive unbuffered and
// unechoed. Returns true when the terminal answered DA1, which is the
// fence confirming all earlier probes were either answered or ignored.
func runQueries(in, out *os.File, caps *Capabilities, timeout time.Duration, opts Options) (bool, error) {
	fd := int(in.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return false, err
	}
	defer term.Restore(fd, old)

	var probes []byte
	probes = append(probes, probeDECRQM2026...)
	probes = append(probes, probeXTVersion...)
	probes = append(probes, probeKittyGfx...)
	probes = append(probes, probeDA1...)
	if opts.TraceWriter != nil {
		fmt.Fprintf(opts.TraceWriter, "query send %q\n", probes)
	}
	if _, err := out.Write(probes); err != nil {
		return false, err
	}

	p := newQueryParser()
	buf := make([]byte, 256)
	retried := false
	deadline := time.Now().Add(timeout)

	for !p.da1 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			// One retry for the whole pass; a second silence means the
			// terminal will not answer
			if retried {
				break
			}
			retried = true
			if opts.TraceWriter != nil {
				fmt.Fprintf(opts.TraceWriter, "query retry %q\n", probeDA1)
			}
			if _, err := out.Write(probeDA1); err != nil {
				return false, err
			}
			deadline = time.Now().Add(timeout)
			continue
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remaining/time.Millisecond)+1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return false, err
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return false, err
		}
		if rn == 0 {
			break // EOF
		}
		if opts.TraceWriter != nil {
			fmt.Fprintf(opts.TraceWriter, "query recv %q\n", buf[:rn])
		}
		p.feed(buf[:rn])
	}

	if leftover := p.pending(); len(leftover) > 0 && opts.ExcessInput != nil {
		opts.ExcessInput.Write(leftover)
	}
	// Responses that did arrive override the env guess even when the DA1
	// fence stayed silent; only the verified tag needs the fence
	p.apply(caps)
	return p.da1, nil
}
