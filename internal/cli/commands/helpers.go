package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/filestore"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
	"strings"
)

// openTree открывает файловое хранилище и заводит контроллер дерева на
// время одного вызова CLI.
func openTree(cfg *config.Config) (*tree.Controller, *filestore.Store, func() error, error) {
	store, done, err := bootstrap.OpenFileStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return tree.NewController(store), store, done, nil
}

// resolveFolderID разрешает путь папки в id (nil — корень).
func resolveFolderID(ctx context.Context, ctrl *tree.Controller, path string) (*string, error) {
	rec, err := ctrl.ResolvePath(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("folder %q: %w", path, err)
	}
	if rec == nil {
		return nil, nil // корень
	}
	if !rec.IsFolder() {
		return nil, fmt.Errorf("%q: %w", path, tree.ErrNotFolder)
	}
	id := rec.ID
	return &id, nil
}

// splitPath отделяет имя последнего компонента от пути родителя.
func splitPath(p string) (parent, name string) {
	p = strings.Trim(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i], p[i+1:]
	}
	return "", p
}

// fmtSize печатает размер файла в человекочитаемом виде.
func fmtSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
