package tree

import (
	"StudyDeck/internal/model"
	"context"
	"strings"
)

// SubjectAll отключает фильтр по предмету.
const SubjectAll = "All"

// Search ищет среди прямых детей папки folderID (в подпапки поиск не
// спускается): подстрока без учёта регистра по имени и меткам, плюс фильтр
// по предмету. Папки под фильтр предмета не попадают никогда.
func (c *Controller) Search(folderID *string, query, subject string) []model.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Record
	for _, r := range c.ListChildren(folderID) {
		if q != "" && !matchQuery(&r, q) {
			continue
		}
		if subject != "" && subject != SubjectAll && !r.IsFolder() && r.Subject != subject {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchQuery(r *model.Record, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ResolvePath разрешает путь вида "Notes/week1/lecture1.pdf" от корня до
// записи, сверяя имена на каждом уровне. Пустой путь или "/" — корень,
// для него возвращается (nil, nil).
func (c *Controller) ResolvePath(ctx context.Context, path string) (*model.Record, error) {
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	var cur *model.Record
	var curID *string
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		var next *model.Record
		for _, r := range c.ListChildren(curID) {
			if r.Name == part {
				rr := r
				next = &rr
				break
			}
		}
		if next == nil {
			return nil, ErrNotFound
		}
		cur = next
		id := next.ID
		curID = &id
	}
	return cur, nil
}
