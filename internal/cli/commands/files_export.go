package commands

import (
	"StudyDeck/internal/archive"
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"context"
	"fmt"
	"os"
)

type filesExportCmd struct{}

func (filesExportCmd) Name() string { return "files-export" }
func (filesExportCmd) Description() string {
	return "Выгрузить весь файловый домен в zip-архив"
}
func (filesExportCmd) Usage() string { return "files-export <archive.zip>" }

func (filesExportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	store, done, err := bootstrap.OpenFileStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := archive.ExportZip(ctx, store, f); err != nil {
		_ = f.Close()
		_ = os.Remove(args[0])
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported file store to %s\n", args[0])
	return nil
}

func init() { RegisterCmd(filesExportCmd{}) }
