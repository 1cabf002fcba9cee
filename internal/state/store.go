package state

import (
	"StudyDeck/internal/model"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrBadImport is returned when an imported document fails the shape check.
// State on disk is left untouched in that case.
var ErrBadImport = errors.New("import: not a StudyDeck state document")

// ErrUnknownSection is returned by ReplaceSection for a section name
// that is not part of the state document.
var ErrUnknownSection = errors.New("unknown state section")

const stateKeyPrefix = "studydeck-state-"

// Store keeps the whole structured app state (subjects, tasks, goals,
// habits, attendance, sessions, settings) as a single JSON document under a
// fixed, version-suffixed key in a plain key-value table. Changing the
// suffix abandons the old document instead of migrating it.
//
// This domain is deliberately separate from the file store: JSON cannot
// efficiently hold large binaries, so file payloads never travel through it.
type Store struct {
	db  *sql.DB
	key string
}

// Open opens (and creates if needed) the state DB at path. suffix is the
// schema version appended to the document key.
func Open(path, suffix string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty state store path")
	}
	if suffix == "" {
		return nil, errors.New("empty state key suffix")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, key: stateKeyPrefix + suffix}, nil
}

// Close closes the underlying DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate ensures the single required table exists.
func (s *Store) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`
	_, err := s.db.Exec(ddl)
	return err
}

// Load reads the state document. A missing key yields the default state,
// not an error.
func (s *Store) Load() (*model.AppState, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultState(), nil
	}
	if err != nil {
		return nil, err
	}
	var st model.AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	return &st, nil
}

// Save writes the whole document back (last write wins).
func (s *Store) Save(st *model.AppState) error {
	if st == nil {
		return errors.New("nil state")
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO kv(key, value) VALUES(?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`, s.key, raw)
	return err
}

// ReplaceSection заменяет одну именованную секцию документа целиком —
// примитив записи для внешних потребителей (дашборд, ассистент): они
// никогда не патчат отдельные поля, только секцию в сборе.
func (s *Store) ReplaceSection(name string, raw json.RawMessage) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	switch name {
	case "subjects":
		err = json.Unmarshal(raw, &st.Subjects)
	case "tasks":
		err = json.Unmarshal(raw, &st.Tasks)
	case "goals":
		err = json.Unmarshal(raw, &st.Goals)
	case "habits":
		err = json.Unmarshal(raw, &st.Habits)
	case "attendance":
		err = json.Unmarshal(raw, &st.Attendance)
	case "sessions":
		err = json.Unmarshal(raw, &st.Sessions)
	case "settings":
		err = json.Unmarshal(raw, &st.Settings)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	if err != nil {
		return fmt.Errorf("decode section %q: %w", name, err)
	}
	return s.Save(st)
}

// Update применяет fn к загруженному состоянию и сохраняет результат.
func (s *Store) Update(fn func(st *model.AppState) error) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.Save(st)
}
