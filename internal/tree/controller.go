package tree

import (
	"StudyDeck/internal/model"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Ошибки контроллера дерева.
var (
	ErrNotFound       = errors.New("record not found")
	ErrNotFolder      = errors.New("target is not a folder")
	ErrParentNotFound = errors.New("parent folder not found")
	ErrCycle          = errors.New("move would make a folder its own descendant")
	ErrFolderNotEmpty = errors.New("folder is not empty")
)

// RecordStore — порт плоского хранилища записей (см. internal/filestore).
type RecordStore interface {
	Put(ctx context.Context, rec *model.Record) (string, error)
	Get(ctx context.Context, id string) (*model.Record, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]model.Record, error)
}

// FileMeta — метаданные, задаваемые при загрузке файла.
type FileMeta struct {
	MimeType string
	Subject  string
	Tags     model.Tags
}

// Controller presents the flat record set as a navigable tree rooted at
// ParentID == nil and mediates every structural mutation. It owns the
// navigation state (current folder + breadcrumb trail) for one session:
// construct one instance per session and pass it by reference.
//
// After every successful mutation the full record list is reloaded from the
// store instead of patching the cached slice: latency is traded for staying
// consistent with the durable store. A failed mutation leaves the cache as
// it was, so the view keeps showing the pre-mutation list.
type Controller struct {
	store   RecordStore
	current *string
	crumbs  []model.Breadcrumb
	records []model.Record
}

// NewController создаёт контроллер в корне дерева с пустым кэшем.
// Перед первым чтением вызовите Reload.
func NewController(store RecordStore) *Controller {
	return &Controller{store: store}
}

// Reload перечитывает полный список записей из хранилища.
func (c *Controller) Reload(ctx context.Context) error {
	recs, err := c.store.ListAll(ctx)
	if err != nil {
		return err
	}
	c.records = recs
	return nil
}

// Current возвращает id текущей папки (nil — корень).
func (c *Controller) Current() *string { return c.current }

// Path возвращает копию навигационной цепочки от корня к текущей папке.
func (c *Controller) Path() []model.Breadcrumb {
	out := make([]model.Breadcrumb, len(c.crumbs))
	copy(out, c.crumbs)
	return out
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ListChildren возвращает прямых детей папки folderID (nil — корень):
// сначала папки, затем файлы, внутри группы — по имени без учёта регистра.
// Папки всегда впереди независимо от имени — это контракт отображения.
func (c *Controller) ListChildren(folderID *string) []model.Record {
	var out []model.Record
	for _, r := range c.records {
		if sameParent(r.ParentID, folderID) {
			out = append(out, r)
		}
	}
	sortChildren(out)
	return out
}

func sortChildren(recs []model.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		fi, fj := recs[i].IsFolder(), recs[j].IsFolder()
		if fi != fj {
			return fi
		}
		return strings.ToLower(recs[i].Name) < strings.ToLower(recs[j].Name)
	})
}

// NavigateInto заходит в папку: устанавливает текущую папку и дополняет
// цепочку. Для файла навигация не определена — его «открывают», а не входят.
func (c *Controller) NavigateInto(rec *model.Record) error {
	if rec == nil {
		return ErrNotFound
	}
	if !rec.IsFolder() {
		return ErrNotFolder
	}
	id := rec.ID
	c.current = &id
	c.crumbs = append(c.crumbs, model.Breadcrumb{ID: &id, Name: rec.Name})
	return nil
}

// NavigateToBreadcrumb прыгает к произвольному предку по индексу цепочки.
// Отрицательный индекс возвращает в корень. «Вверх на один уровень» — это
// тот же самый переход с индексом len(path)-2, отдельной операции нет.
func (c *Controller) NavigateToBreadcrumb(index int) {
	if index < 0 || len(c.crumbs) == 0 {
		c.crumbs = nil
		c.current = nil
		return
	}
	if index >= len(c.crumbs) {
		index = len(c.crumbs) - 1
	}
	c.crumbs = c.crumbs[:index+1]
	c.current = c.crumbs[index].ID
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if strings.ContainsRune(name, '/') {
		return fmt.Errorf("invalid name %q: must not contain '/'", name)
	}
	return nil
}

// requireFolder проверяет, что parentID (если задан) указывает на
// существующую папку. Лист не может иметь детей.
func (c *Controller) requireFolder(ctx context.Context, parentID *string) error {
	if parentID == nil {
		return nil
	}
	parent, err := c.store.Get(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	if !parent.IsFolder() {
		return ErrNotFolder
	}
	return nil
}

// CreateFolder создаёт папку в parentID (nil — корень) и обновляет кэш.
func (c *Controller) CreateFolder(ctx context.Context, name string, parentID *string) (*model.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := c.requireFolder(ctx, parentID); err != nil {
		return nil, err
	}
	rec := &model.Record{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     model.KindFolder,
		ParentID: parentID,
	}
	if _, err := c.store.Put(ctx, rec); err != nil {
		return nil, err
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateFile создаёт файл с бинарным содержимым и метаданными.
func (c *Controller) CreateFile(ctx context.Context, name string, payload []byte, meta FileMeta, parentID *string) (*model.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := c.requireFolder(ctx, parentID); err != nil {
		return nil, err
	}
	rec := &model.Record{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      model.KindFile,
		ParentID:  parentID,
		MimeType:  meta.MimeType,
		SizeBytes: int64(len(payload)),
		Payload:   payload,
		Subject:   meta.Subject,
		Tags:      meta.Tags,
	}
	if _, err := c.store.Put(ctx, rec); err != nil {
		return nil, err
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}

// Rename меняет только имя записи (read-modify-write: хранилище умеет
// лишь полную замену объекта).
func (c *Controller) Rename(ctx context.Context, id, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	rec.Name = newName
	if _, err := c.store.Put(ctx, rec); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// MoveTo перевешивает запись под новую папку (nil — корень). Меняется
// только ParentID. Перемещение в себя или в собственного потомка
// отклоняется: граф родителей обязан оставаться ацикличным.
func (c *Controller) MoveTo(ctx context.Context, id string, newParentID *string) error {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if newParentID != nil {
		if *newParentID == id {
			return ErrCycle
		}
		parent, err := c.store.Get(ctx, *newParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrParentNotFound
		}
		if !parent.IsFolder() {
			return ErrNotFolder
		}
		// подъём по цепочке предков новой папки
		seen := map[string]bool{}
		for cur := parent.ParentID; cur != nil; {
			if *cur == id {
				return ErrCycle
			}
			if seen[*cur] {
				break // повреждённая цепочка, не зацикливаемся
			}
			seen[*cur] = true
			anc, err := c.store.Get(ctx, *cur)
			if err != nil {
				return err
			}
			if anc == nil {
				break
			}
			cur = anc.ParentID
		}
	}
	rec.ParentID = newParentID
	if _, err := c.store.Put(ctx, rec); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// SetMeta обновляет предмет и метки файла (read-modify-write).
func (c *Controller) SetMeta(ctx context.Context, id, subject string, tags model.Tags) error {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	rec.Subject = subject
	rec.Tags = tags
	if _, err := c.store.Put(ctx, rec); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Delete удаляет одну запись. Непустую папку не трогает, чтобы не плодить
// сирот — для каскада есть DeleteRecursive.
func (c *Controller) Delete(ctx context.Context, id string) error {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.IsFolder() {
		all, err := c.store.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, r := range all {
			if r.ParentID != nil && *r.ParentID == id {
				return ErrFolderNotEmpty
			}
		}
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// DeleteRecursive удаляет запись вместе со всеми потомками (сначала
// глубина, потом сама запись).
func (c *Controller) DeleteRecursive(ctx context.Context, id string) error {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	all, err := c.store.ListAll(ctx)
	if err != nil {
		return err
	}
	children := map[string][]string{}
	for _, r := range all {
		if r.ParentID != nil {
			children[*r.ParentID] = append(children[*r.ParentID], r.ID)
		}
	}
	var walk func(string) error
	walk = func(cur string) error {
		for _, child := range children[cur] {
			if err := walk(child); err != nil {
				return err
			}
		}
		return c.store.Delete(ctx, cur)
	}
	if err := walk(id); err != nil {
		return err
	}
	return c.Reload(ctx)
}
