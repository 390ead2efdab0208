//go:build !unix

package terminal

import "os"

type stubBackend struct {
	out *os.File
}

func newBackend(in, out *os.File) Backend {
	if out == nil {
		out = os.Stdout
	}
	return &stubBackend{out: out}
}

func (b *stubBackend) Init() error { return ErrNotATerminal }

func (b *stubBackend) Fini() {}

func (b *stubBackend) Size() (int, int) { return 80, 24 }

func (b *stubBackend) Write(p []byte) (int, error) { return b.out.Write(p) }

func (b *stubBackend) Read(stop <-chan struct{}) ([]byte, error) {
	<-stop
	return nil, nil
}

func (b *stubBackend) SetResizeHandler(handler func(width, height int)) {}

func resetTermios() {}
