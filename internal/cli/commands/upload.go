package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

type uploadCmd struct{}

func (uploadCmd) Name() string { return "upload" }
func (uploadCmd) Description() string {
	return "Загрузить локальный файл в хранилище (по умолчанию в корень)"
}
func (uploadCmd) Usage() string { return "upload <local-file> [<folder-path>]" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("чтение файла: %w", err)
	}
	name := filepath.Base(args[0])

	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()

	var parentID *string
	if len(args) == 2 {
		parentID, err = resolveFolderID(ctx, ctrl, args[1])
		if err != nil {
			return err
		}
	} else if err := ctrl.Reload(ctx); err != nil {
		return err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	rec, err := ctrl.CreateFile(ctx, name, data, tree.FileMeta{MimeType: mimeType}, parentID)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Uploaded:")
	fmt.Fprintf(Out, "  id:   %s\n", rec.ID)
	fmt.Fprintf(Out, "  name: %s\n", rec.Name)
	fmt.Fprintf(Out, "  size: %s\n", fmtSize(rec.SizeBytes))
	fmt.Fprintf(Out, "  mime: %s\n", rec.MimeType)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
