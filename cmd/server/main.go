// fovview-server serves the field-of-view explorer over SSH. Every
// connection gets its own map and light. Build:
//
//	go build -o fovview-server ./cmd/server
//
// Usage:
//
//	./fovview-server [--port 2222] [--key server_host_key] [--shape beveled]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"shadowcast/internal/fov"
	internalssh "shadowcast/internal/ssh"
	"shadowcast/internal/viewer"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// defaultTerm is used when the client sends no TERM or one we don't trust.
const defaultTerm = "xterm-256color"

// allowedTerms lists the TERM values passed through to terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// maxNameBytes bounds user names written to the log.
const maxNameBytes = 16

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	shapeName := flag.String("shape", "beveled", "Initial tile shape for new sessions")
	radius := flag.Int("radius", viewer.DefaultRadius, "Initial light radius for new sessions")
	ascii := flag.Bool("ascii", false, "Draw with ASCII glyphs instead of emoji")
	flag.Parse()

	shape, err := fov.ParseShape(*shapeName)
	if err != nil {
		log.Fatalf("shape: %v", err)
	}
	base := viewer.Config{Shape: shape, Radius: *radius, ASCII: *ascii}

	signer := loadOrCreateHostKey(*keyFile)
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, base)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every client gets a throwaway view.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("fovview SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one viewer for the lifetime of an SSH connection.
func handleSession(s gossh.Session, base viewer.Config) {
	name := sanitizeName(s.User())
	if _, _, hasPTY := s.Pty(); !hasPTY {
		fmt.Fprintln(s, "fovview needs a terminal. Connect with: ssh -t -p <port> <host>")
		log.Printf("%s from %s: rejected, no pty", name, s.RemoteAddr())
		return
	}

	term := sessionTerm(s.Environ())
	screen, err := internalssh.NewScreen(s, term)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Printf("%s from %s: %v", name, s.RemoteAddr(), err)
		return
	}

	cfg := base
	cfg.Seed = time.Now().UnixNano()
	v, err := viewer.New(screen, cfg)
	if err != nil {
		screen.Fini()
		log.Printf("%s: %v", name, err)
		return
	}

	// Unblock PollEvent when the client drops the connection.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	log.Printf("%s connected from %s (TERM=%s, seed %d)", name, s.RemoteAddr(), term, cfg.Seed)
	start := time.Now()
	v.Run()
	log.Printf("%s disconnected after %s", name, time.Since(start).Round(time.Second))
}

// sessionTerm picks the terminfo name for a session from its environment,
// falling back to defaultTerm for anything not in allowedTerms.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if allowedTerms[term] {
				return term
			}
			break
		}
	}
	return defaultTerm
}

// sanitizeName strips control characters from a client-supplied name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	signer, err := loadHostKey(path)
	if err == nil {
		log.Printf("Loaded host key from %s", path)
		return signer
	}

	log.Printf("Generating new ed25519 host key → %s (%v)", path, err)
	signer, err = createHostKey(path)
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	return signer
}

func loadHostKey(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	signer, err := xssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return signer, nil
}

// createHostKey generates an ed25519 key and writes it to path. A failed
// write is logged, not fatal: the key still serves this run.
func createHostKey(path string) (gossh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "fovview server")
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		log.Printf("could not save host key: %v", err)
	}
	return signer, nil
}
