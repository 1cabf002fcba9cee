package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
)

type mvCmd struct{}

func (mvCmd) Name() string { return "mv" }
func (mvCmd) Description() string {
	return "Переместить запись в другую папку (\"/\" — в корень)"
}
func (mvCmd) Usage() string { return "mv <path> <dest-folder-path>" }

func (mvCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	destID, err := resolveFolderID(ctx, ctrl, args[1])
	if err != nil {
		return err
	}
	if err := ctrl.MoveTo(ctx, rec.ID, destID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Moved %q -> %q\n", args[0], args[1])
	return nil
}

func init() { RegisterCmd(mvCmd{}) }
