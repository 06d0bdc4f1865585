package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"invalid utf-8 dropped", "ab\xffcd", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"xterm-256color", []string{"LANG=C", "TERM=xterm-256color"}, "xterm-256color"},
		{"tmux", []string{"TERM=tmux"}, "tmux"},
		{"linux", []string{"TERM=linux"}, "linux"},
		{"vt100", []string{"TERM=vt100"}, "vt100"},
		{"rxvt-unicode-256color", []string{"TERM=rxvt-unicode-256color"}, "rxvt-unicode-256color"},
		{"unknown term", []string{"TERM=evil-term"}, defaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, defaultTerm},
		{"empty string", []string{"TERM="}, defaultTerm},
		{"no TERM", []string{"LANG=C"}, defaultTerm},
		{"first TERM wins", []string{"TERM=bogus", "TERM=vt100"}, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sessionTerm(tc.environ); got != tc.want {
				t.Errorf("sessionTerm(%q) = %q, want %q", tc.environ, got, tc.want)
			}
		})
	}
}

func TestHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if _, err := loadHostKey(path); err == nil {
		t.Fatal("expected error for missing key")
	}

	created, err := createHostKey(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := loadHostKey(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if string(created.PublicKey().Marshal()) != string(loaded.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadHostKeyRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadHostKey(path); err == nil {
		t.Error("expected parse error")
	}
}
