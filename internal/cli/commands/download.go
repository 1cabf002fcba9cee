package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type downloadCmd struct{}

func (downloadCmd) Name() string { return "download" }
func (downloadCmd) Description() string {
	return "Сохранить содержимое файла на диск"
}
func (downloadCmd) Usage() string { return "download <path> [<dest>]" }

func (downloadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	ctrl, store, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()
	rec, err := ctrl.ResolvePath(ctx, args[0])
	if err != nil {
		return err
	}
	if rec == nil || rec.IsFolder() {
		return fmt.Errorf("%q: не файл", args[0])
	}
	// свежее чтение по id прямо перед записью на диск
	full, err := store.Get(ctx, rec.ID)
	if err != nil {
		return err
	}
	if full == nil {
		return tree.ErrNotFound
	}
	dest := full.Name
	if len(args) == 2 {
		dest = args[1]
		if st, err := os.Stat(dest); err == nil && st.IsDir() {
			dest = filepath.Join(dest, full.Name)
		}
	}
	if err := os.WriteFile(dest, full.Payload, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %s (%s)\n", dest, fmtSize(full.SizeBytes))
	return nil
}

func init() { RegisterCmd(downloadCmd{}) }
