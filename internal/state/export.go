package state

import (
	"StudyDeck/internal/model"
	"encoding/json"
	"fmt"
	"io"
)

// Export streams the whole state document as indented JSON — the same
// document the user would download as a .json backup.
func (s *Store) Export(w io.Writer) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// Import replaces the state document wholesale with the supplied JSON after
// a minimal shape check: the document must carry the subjects and tasks
// top-level fields. On any failure the stored state is left unchanged.
func (s *Store) Import(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	if _, ok := shape["subjects"]; !ok {
		return ErrBadImport
	}
	if _, ok := shape["tasks"]; !ok {
		return ErrBadImport
	}
	var st model.AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	return s.Save(&st)
}
