package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Виды записей файлового хранилища.
const (
	KindFolder = "folder"
	KindFile   = "file"
)

// Record — единица файлового хранилища: папка или файл.
// Иерархия задаётся единственным полем ParentID (nil — корень);
// само хранилище о дереве ничего не знает.
type Record struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"not null;index" json:"name"`
	Kind string `gorm:"not null" json:"kind"` // KindFolder | KindFile

	ParentID *string `gorm:"type:uuid;index" json:"parent_id"`

	// Поля только для файлов (Kind == KindFile).
	MimeType  string `json:"mime_type,omitempty"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
	Payload   []byte `json:"-"`

	Subject string `gorm:"index" json:"subject,omitempty"`
	Tags    Tags   `gorm:"type:text" json:"tags,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsFolder reports whether the record can hold children.
func (r *Record) IsFolder() bool { return r.Kind == KindFolder }

// Validate проверяет инварианты записи перед сохранением.
func (r *Record) Validate() error {
	if r.ID == "" {
		return errors.New("record id is required")
	}
	if r.Name == "" {
		return errors.New("record name is required")
	}
	switch r.Kind {
	case KindFolder:
		if len(r.Payload) != 0 {
			return errors.New("folder must not carry a payload")
		}
	case KindFile:
	default:
		return fmt.Errorf("unknown record kind: %q", r.Kind)
	}
	return nil
}

// Tags — набор свободных меток файла; в SQLite хранится как JSON-текст.
type Tags []string

// Value serializes tags for storage. Empty set is stored as NULL.
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores tags from the stored JSON text.
func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(t))
}

// Breadcrumb — элемент навигационной цепочки от корня к текущей папке.
type Breadcrumb struct {
	ID   *string `json:"id"` // nil — синтетический корень
	Name string  `json:"name"`
}
