package bootstrap

import (
	"fmt"

	"StudyDeck/internal/config"
	"StudyDeck/internal/filestore"
	"StudyDeck/internal/state"
)

// OpenFileStore открывает хранилище файлового домена, выполняет миграции и
// возвращает (store, cleanup, error). cleanup закрывает соединение с БД.
func OpenFileStore(cfg *config.Config) (*filestore.Store, func() error, error) {
	s, err := filestore.Open(cfg.FileStorePath())
	if err != nil {
		return nil, nil, fmt.Errorf("open file store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("migrate file store: %w", err)
	}
	return s, s.Close, nil
}

// OpenStateStore открывает хранилище структурированного состояния.
func OpenStateStore(cfg *config.Config) (*state.Store, func() error, error) {
	s, err := state.Open(cfg.StateStorePath(), cfg.StateKeySuffix)
	if err != nil {
		return nil, nil, fmt.Errorf("open state store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("migrate state store: %w", err)
	}
	return s, s.Close, nil
}
