package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"errors"
	"fmt"
)

type rmCmd struct{}

func (rmCmd) Name() string { return "rm" }
func (rmCmd) Description() string {
	return "Удалить запись; -r удаляет папку вместе с содержимым"
}
func (rmCmd) Usage() string { return "rm [-r] <path>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	recursive := false
	if len(args) == 2 && args[0] == "-r" {
		recursive = true
		args = args[1:]
	}
	if len(args) != 1 {
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
	if recursive {
		err = ctrl.DeleteRecursive(ctx, rec.ID)
	} else {
		err = ctrl.Delete(ctx, rec.ID)
	}
	if errors.Is(err, tree.ErrFolderNotEmpty) {
		return fmt.Errorf("%w (используйте rm -r)", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Removed %q\n", args[0])
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
