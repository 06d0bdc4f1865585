package viewer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records statistics gathered during one viewer session.
type SessionLog struct {
	Started      time.Time      `json:"started"`
	Seconds      int            `json:"seconds"`
	Seed         int64          `json:"seed"`
	LoadedMap    bool           `json:"loaded_map"`
	MapsSeen     int            `json:"maps_seen"`
	Moves        int            `json:"moves"`
	Blocked      int            `json:"blocked"`
	MaxLit       int            `json:"max_lit"`
	FinalRadius  int            `json:"final_radius"`
	ShapeChanges int            `json:"shape_changes"`
	RayChecks    int            `json:"ray_checks"`
	Recomputes   map[string]int `json:"recomputes"` // shape name → FOV passes
}

// saveSessionLog appends the finished session as a single JSON line to
// sessions.jsonl. Errors are discarded so a disk problem never breaks
// shutdown.
func saveSessionLog(log SessionLog) {
	dir, err := sessionLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogDir follows the XDG Base Directory layout: $XDG_DATA_HOME/shadowcast,
// defaulting to ~/.local/share/shadowcast.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "shadowcast"), nil
}
