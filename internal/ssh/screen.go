package ssh

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// termMu serializes TERM changes: tcell resolves terminfo from the process
// environment.
var termMu sync.Mutex

// NewScreen builds and initializes a tcell screen for a session whose
// client requested a PTY. term is the terminfo name to render with.
func NewScreen(s gossh.Session, term string) (tcell.Screen, error) {
	pty, resizes, ok := s.Pty()
	if !ok {
		return nil, fmt.Errorf("session has no pty")
	}
	tty := NewSessionTty(s, pty, resizes)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal %q: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
