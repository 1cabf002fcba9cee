package archive

import (
	"StudyDeck/internal/model"
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// RecordLister — минимальный порт чтения файлового домена для бэкапа.
type RecordLister interface {
	ListAll(ctx context.Context) ([]model.Record, error)
}

// manifestEntry — строка метаданных в records.json внутри архива.
// Нужна, чтобы при восстановлении можно было собрать иерархию и метки,
// которые не переживают плоскую раскладку по путям.
type manifestEntry struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	ParentID  *string    `json:"parent_id"`
	Path      string     `json:"path"`
	MimeType  string     `json:"mime_type,omitempty"`
	SizeBytes int64      `json:"size_bytes,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	Tags      model.Tags `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ExportZip выгружает весь файловый домен в zip: дерево папок превращается
// в пути архива, содержимое файлов пишется как есть, метаданные — в
// records.json. Резервная копия файлового домена нарочно отделена от
// JSON-экспорта состояния: бинарные данные в JSON не пакуем.
func ExportZip(ctx context.Context, store RecordLister, w io.Writer) error {
	recs, err := store.ListAll(ctx)
	if err != nil {
		return err
	}

	// стабильный порядок записей в архиве
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	byID := make(map[string]*model.Record, len(recs))
	for i := range recs {
		byID[recs[i].ID] = &recs[i]
	}

	paths := make(map[string]string, len(recs))
	var pathOf func(id string, hops int) (string, error)
	pathOf = func(id string, hops int) (string, error) {
		if p, ok := paths[id]; ok {
			return p, nil
		}
		if hops > len(recs) {
			return "", fmt.Errorf("parent chain of %s does not terminate", id)
		}
		r := byID[id]
		if r == nil {
			return "", fmt.Errorf("dangling parent reference: %s", id)
		}
		p := r.Name
		if r.ParentID != nil {
			pp, err := pathOf(*r.ParentID, hops+1)
			if err != nil {
				return "", err
			}
			p = pp + "/" + r.Name
		}
		paths[id] = p
		return p, nil
	}

	zw := zip.NewWriter(w)
	manifest := make([]manifestEntry, 0, len(recs))
	for i := range recs {
		r := &recs[i]
		p, err := pathOf(r.ID, 0)
		if err != nil {
			return err
		}
		manifest = append(manifest, manifestEntry{
			ID:        r.ID,
			Name:      r.Name,
			Kind:      r.Kind,
			ParentID:  r.ParentID,
			Path:      p,
			MimeType:  r.MimeType,
			SizeBytes: r.SizeBytes,
			Subject:   r.Subject,
			Tags:      r.Tags,
			CreatedAt: r.CreatedAt,
		})
		if r.IsFolder() {
			if _, err := zw.Create(p + "/"); err != nil {
				return err
			}
			continue
		}
		f, err := zw.Create(p)
		if err != nil {
			return err
		}
		if _, err := f.Write(r.Payload); err != nil {
			return err
		}
	}

	mf, err := zw.Create("records.json")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(mf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(manifest); err != nil {
		return err
	}
	return zw.Close()
}
