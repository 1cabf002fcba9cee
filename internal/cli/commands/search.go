package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }
func (searchCmd) Description() string {
	return "Поиск по имени и меткам среди детей папки (без рекурсии)"
}
func (searchCmd) Usage() string { return "search <query> [<subject>] [<folder-path>]" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	subject := tree.SubjectAll
	if len(args) >= 2 {
		subject = args[1]
	}
	path := ""
	if len(args) == 3 {
		path = args[2]
	}

	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()
	folderID, err := resolveFolderID(ctx, ctrl, path)
	if err != nil {
		return err
	}
	found := ctrl.Search(folderID, args[0], subject)
	if len(found) == 0 {
		fmt.Fprintln(Out, "Ничего не найдено")
		return nil
	}
	for _, r := range found {
		if r.IsFolder() {
			fmt.Fprintf(Out, "  %s/\n", r.Name)
			continue
		}
		fmt.Fprintf(Out, "  %-32s %s\n", r.Name, fmtSize(r.SizeBytes))
	}
	fmt.Fprintf(Out, "Найдено: %d\n", len(found))
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
