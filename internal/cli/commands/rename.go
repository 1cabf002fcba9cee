package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
)

type renameCmd struct{}

func (renameCmd) Name() string { return "rename" }
func (renameCmd) Description() string {
	return "Переименовать файл или папку"
}
func (renameCmd) Usage() string { return "rename <path> <new-name>" }

func (renameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()
	rec, err := ctrl.ResolvePath(ctx, args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return tree.ErrNotFound
	}
	if err := ctrl.Rename(ctx, rec.ID, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Renamed %q -> %q\n", rec.Name, args[1])
	return nil
}

func init() { RegisterCmd(renameCmd{}) }
