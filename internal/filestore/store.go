package filestore

import (
	"StudyDeck/internal/model"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Store — durable keyed storage of file/folder records. It has no awareness
// of hierarchy: records form a flat map keyed by id, and ParentID is just
// another column. All tree semantics live in the tree controller.
//
// The store only exposes whole-object Put: callers editing a single field
// must read-modify-write the entire record. Each operation runs in its own
// implicit transaction; failures are returned to the caller, never retried.
type Store struct {
	db *gorm.DB
}

// Open открывает (и при необходимости создаёт) файл БД по указанному пути.
// Используется cgo-free драйвер modernc.org/sqlite через GORM-диалектор.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty file store path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open file store: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate гарантирует наличие таблицы записей.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&model.Record{})
}

// Close закрывает соединение с БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Put вставляет запись или целиком заменяет существующую с тем же id (upsert).
// Возвращает id сохранённой записи.
func (s *Store) Put(ctx context.Context, rec *model.Record) (string, error) {
	if rec == nil {
		return "", errors.New("nil record")
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(rec)
	if tx.Error != nil {
		return "", tx.Error
	}
	return rec.ID, nil
}

// Get возвращает запись по id. Отсутствие записи — не ошибка: (nil, nil).
func (s *Store) Get(ctx context.Context, id string) (*model.Record, error) {
	var rec model.Record
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete удаляет ровно одну запись по id. Каскада нет; удаление
// несуществующего id — тихий no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Record{}, "id = ?", id).Error
}

// ListAll возвращает все записи без гарантии порядка. Единственный bulk-read
// примитив хранилища: вся фильтрация выполняется потребителем. O(N) на каждый
// рендер дерева — осознанный компромисс для персональных объёмов данных.
func (s *Store) ListAll(ctx context.Context) ([]model.Record, error) {
	var recs []model.Record
	if err := s.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
