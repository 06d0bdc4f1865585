// Package ssh adapts gliderlabs/ssh sessions to tcell so every client gets
// its own screen.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Channel is the part of an SSH session a terminal needs: the raw byte
// stream in both directions. gossh.Session satisfies it.
type Channel interface {
	io.ReadWriteCloser
}

// SessionTty implements tcell.Tty on top of an SSH channel. Window size
// comes from the PTY request and later window-change requests.
type SessionTty struct {
	ch      Channel
	resizes <-chan gossh.Window

	mu       sync.Mutex
	size     tcell.WindowSize
	onResize func()
	watching bool
}

var _ tcell.Tty = (*SessionTty)(nil)

// NewSessionTty wraps ch. pty holds the initial window; resizes delivers
// window-change requests until the session ends.
func NewSessionTty(ch Channel, pty gossh.Pty, resizes <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		ch:      ch,
		resizes: resizes,
		size:    windowSize(pty.Window),
	}
}

func windowSize(w gossh.Window) tcell.WindowSize {
	return tcell.WindowSize{Width: w.Width, Height: w.Height}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *SessionTty) Close() error                { return t.ch.Close() }

// Start, Stop and Drain have nothing to do: the channel is already in raw
// mode on the client side and writes are not buffered here.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize registers cb to run after every window change. The first
// call starts a goroutine that follows the resize channel until it closes;
// later calls only swap the callback.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.resizes != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for w := range t.resizes {
		t.mu.Lock()
		t.size = windowSize(w)
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
