package commands

import (
	"StudyDeck/internal/config"
	"context"
	"fmt"
)

type mkdirCmd struct{}

func (mkdirCmd) Name() string { return "mkdir" }
func (mkdirCmd) Description() string {
	return "Создать папку по указанному пути"
}
func (mkdirCmd) Usage() string { return "mkdir <folder-path>" }

func (mkdirCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	parentPath, name := splitPath(args[0])
	if name == "" {
		return ErrUsage
	}
	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()
	parentID, err := resolveFolderID(ctx, ctrl, parentPath)
	if err != nil {
		return err
	}
	rec, err := ctrl.CreateFolder(ctx, name, parentID)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created folder %s (id %s)\n", args[0], rec.ID)
	return nil
}

func init() { RegisterCmd(mkdirCmd{}) }
