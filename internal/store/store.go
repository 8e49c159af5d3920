package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	appLog "remindcal/internal/log"
	"remindcal/internal/model"
)

// ErrEmptyReminder is returned by Set when the reminder text is empty.
var ErrEmptyReminder = errors.New("reminder text is empty")

// Store maps date keys to reminder text and mirrors the whole mapping to a
// JSON file after every mutation.
//
// A key is present if and only if the date has an active reminder. Store is
// not safe for concurrent use; the UI owns it from a single goroutine.
type Store struct {
	path      string
	reminders map[model.DateKey]string
}

// New returns an empty store backed by path. Call LoadAll to read the file.
func New(path string) *Store {
	return &Store{
		path:      path,
		reminders: make(map[model.DateKey]string),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

func (s *Store) Has(key model.DateKey) bool {
	_, ok := s.reminders[key]
	return ok
}

func (s *Store) Get(key model.DateKey) (string, bool) {
	text, ok := s.reminders[key]
	return text, ok
}

func (s *Store) Len() int { return len(s.reminders) }

// Set inserts or overwrites the reminder for key and persists.
func (s *Store) Set(key model.DateKey, text string) error {
	if text == "" {
		return ErrEmptyReminder
	}
	s.reminders[key] = text
	appLog.Debug("reminder set", "key", key)
	return s.SaveAll()
}

// Remove deletes the reminder for key, if any, and persists.
func (s *Store) Remove(key model.DateKey) error {
	delete(s.reminders, key)
	appLog.Debug("reminder removed", "key", key)
	return s.SaveAll()
}

// Merge adds entries in one write. Existing keys are kept unless overwrite
// is set. It returns how many entries changed the mapping.
func (s *Store) Merge(entries []model.ReminderEntry, overwrite bool) (int, error) {
	changed := 0
	for _, e := range entries {
		if e.Text == "" {
			continue
		}
		if old, ok := s.reminders[e.Key]; ok && (!overwrite || old == e.Text) {
			continue
		}
		s.reminders[e.Key] = e.Text
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.SaveAll()
}

// Entries returns all reminders ordered by date. Keys that do not parse
// sort last, by string.
func (s *Store) Entries() []model.ReminderEntry {
	out := make([]model.ReminderEntry, 0, len(s.reminders))
	for k, v := range s.reminders {
		out = append(out, model.ReminderEntry{Key: k, Text: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return keyLess(out[i].Key, out[j].Key)
	})
	return out
}

func keyLess(a, b model.DateKey) bool {
	ta, errA := a.Date()
	tb, errB := b.Date()
	switch {
	case errA == nil && errB == nil:
		return ta.Before(tb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// LoadAll replaces the in-memory mapping with the file contents. A missing
// file leaves the store empty; unreadable or malformed content is an error
// and the mapping is left untouched. Zero-padded keys are rewritten to the
// unpadded form; keys that do not parse are kept as they are.
func (s *Store) LoadAll() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			appLog.Info("no reminders file; starting empty", "path", s.path)
			return nil
		}
		return fmt.Errorf("read reminders: %w", err)
	}

	raw := make(map[model.DateKey]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode reminders %s: %w", s.path, err)
	}
	loaded := normalizeKeys(raw)
	s.reminders = loaded

	appLog.Info("reminders loaded", "path", s.path, "count", len(loaded))
	return nil
}

// normalizeKeys maps every parseable key to its canonical form. When two
// keys name the same date, the canonical one wins, then the lexically
// smallest padded one.
func normalizeKeys(raw map[model.DateKey]string) map[model.DateKey]string {
	out := make(map[model.DateKey]string, len(raw))
	var padded []model.DateKey
	for k, v := range raw {
		y, m, d, err := model.ParseDateKey(string(k))
		if err != nil || model.NewDateKey(y, m, d) == k {
			out[k] = v
			continue
		}
		padded = append(padded, k)
	}

	sort.Slice(padded, func(i, j int) bool { return padded[i] < padded[j] })
	for _, k := range padded {
		y, m, d, _ := model.ParseDateKey(string(k))
		canon := model.NewDateKey(y, m, d)
		if _, ok := out[canon]; ok {
			appLog.Warn("dropping duplicate reminder key", "key", k, "kept", canon)
			continue
		}
		out[canon] = raw[k]
		appLog.Debug("normalized reminder key", "from", k, "to", canon)
	}
	return out
}

// SaveAll writes the entire mapping to the file, replacing it. The data is
// written to a temp file in the same directory and renamed over the target.
func (s *Store) SaveAll() error {
	data, err := json.MarshalIndent(s.reminders, "", "    ")
	if err != nil {
		return fmt.Errorf("encode reminders: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".remind-*.tmp")
	if err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save reminders: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("save reminders: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("save reminders: %w", err)
	}

	appLog.Info("reminders saved", "path", s.path, "count", len(s.reminders))
	return nil
}
