//go:build unix

package terminal

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

// scriptedTerminal answers capability probes on the master side of a pty
// the way a real emulator would
func scriptedTerminal(t *testing.T, master *os.File, response string, done chan<- struct{}) {
	t.Helper()
	go func() {
		defer close(done)
		buf := make([]byte, 256)
		var seen []byte
		for {
			n, err := master.Read(buf)
			if err != nil {
				return
			}
			seen = append(seen, buf[:n]...)
			// DA1 is the last probe; answer once the full batch arrived
			if bytes.HasSuffix(seen, probeDA1) {
				master.Write([]byte(response))
				return
			}
		}
	}()
}

func TestRunQueriesAgainstScriptedPty(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer master.Close()
	defer slave.Close()

	done := make(chan struct{})
	scriptedTerminal(t, master,
		"\x1b[?2026;2$y\x1bP>|kitty 0.32.2\x1b\\x\x1b[?62;4;22c", done)

	caps := Capabilities{Kind: KindXTerm}
	var excess bytes.Buffer
	verified, err := runQueries(slave, slave, &caps, 2*time.Second, Options{ExcessInput: &excess})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !verified {
		t.Fatal("Expected DA1 to verify the pass")
	}
	<-done

	if !caps.SynchronizedOutput {
		t.Error("Expected synchronized output from DECRQM reply")
	}
	if !caps.SixelGraphics {
		t.Error("Expected sixel from DA1 attributes")
	}
	if caps.Version != "kitty 0.32.2" {
		t.Errorf("Expected version banner, got %q", caps.Version)
	}
	if caps.Kind != KindKitty {
		t.Errorf("Expected family refined to kitty, got %q", caps.Kind)
	}
	if excess.String() != "x" {
		t.Errorf("Expected stray byte preserved as excess input, got %q", excess.String())
	}
}

func TestRunQueriesTimeoutIsBounded(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer master.Close()
	defer slave.Close()

	// Swallow the probes, never answer
	go func() {
		buf := make([]byte, 256)
		for {
			if _, err := master.Read(buf); err != nil {
				return
			}
		}
	}()

	timeout := 50 * time.Millisecond
	caps := Capabilities{}
	start := time.Now()
	verified, err := runQueries(slave, slave, &caps, timeout, Options{})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Expected silent timeout, got %v", err)
	}
	if verified {
		t.Error("Expected unverified result after silence")
	}
	// One deadline plus one retry, with generous scheduling slack
	if elapsed > 10*timeout {
		t.Errorf("Expected detection bounded near two deadlines, took %v", elapsed)
	}
}

func TestRunQueriesPartialResponseStillApplies(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer master.Close()
	defer slave.Close()

	// Answer DECRQM only; swallow everything else including the retry
	go func() {
		buf := make([]byte, 256)
		answered := false
		for {
			if _, err := master.Read(buf); err != nil {
				return
			}
			if !answered {
				answered = true
				master.Write([]byte("\x1b[?2026;1$y"))
			}
		}
	}()

	caps := Capabilities{}
	verified, err := runQueries(slave, slave, &caps, 50*time.Millisecond, Options{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verified {
		t.Error("Expected unverified without the DA1 fence")
	}
	if !caps.SynchronizedOutput {
		t.Error("Expected the arrived DECRQM reply applied despite the missing fence")
	}
}
