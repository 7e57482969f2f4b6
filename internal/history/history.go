package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxEntries is the number of recent topics kept.
const MaxEntries = 10

// Entry is one studied topic.
type Entry struct {
	Topic     string    `json:"topic"`
	MathMode  bool      `json:"mathMode"`
	Timestamp time.Time `json:"timestamp"`
}

// State is everything the terminal client persists between runs.
type State struct {
	TopicHistory []Entry `json:"topicHistory"`
	DarkMode     bool    `json:"darkMode"`
}

// Add puts topic at the front of entries, dropping any earlier entry for the
// same topic (case-insensitive) and everything beyond MaxEntries. entries is
// not modified.
func Add(entries []Entry, topic string, mathMode bool, now time.Time) []Entry {
	updated := make([]Entry, 0, min(len(entries)+1, MaxEntries))
	updated = append(updated, Entry{Topic: topic, MathMode: mathMode, Timestamp: now})
	for _, e := range entries {
		if len(updated) == MaxEntries {
			break
		}
		if strings.EqualFold(e.Topic, topic) {
			continue
		}
		updated = append(updated, e)
	}
	return updated
}

// RelativeTime formats how long ago ts was, relative to now.
func RelativeTime(ts, now time.Time) string {
	mins := int(now.Sub(ts) / time.Minute)
	if mins < 1 {
		return "Just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// DefaultPath returns the state file location under XDG_CONFIG_HOME
// (or ~/.config).
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "studyhelper", "state.json"), nil
}

// Store reads and writes State as a JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved state. A missing file yields the zero State.
func (s *Store) Load() (State, error) {
	var state State
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode state %s: %w", s.path, err)
	}
	return state, nil
}

// Save writes state atomically.
func (s *Store) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}

// Record adds a studied topic to the saved history.
func (s *Store) Record(topic string, mathMode bool, now time.Time) error {
	return s.update(func(state *State) {
		state.TopicHistory = Add(state.TopicHistory, topic, mathMode, now)
	})
}

// Clear removes all history entries and keeps the theme preference.
func (s *Store) Clear() error {
	return s.update(func(state *State) {
		state.TopicHistory = nil
	})
}

func (s *Store) SetDarkMode(dark bool) error {
	return s.update(func(state *State) {
		state.DarkMode = dark
	})
}

func (s *Store) update(fn func(*State)) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	fn(&state)
	return s.Save(state)
}
