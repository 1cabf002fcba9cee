package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
	"strings"
)

type treeCmd struct{}

func (treeCmd) Name() string { return "tree" }
func (treeCmd) Description() string {
	return "Показать всё дерево файлов"
}
func (treeCmd) Usage() string { return "tree" }

func (treeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()
	if err := ctrl.Reload(ctx); err != nil {
		return err
	}
	printLevel(ctrl, nil, 0)
	return nil
}

func printLevel(ctrl *tree.Controller, folderID *string, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, r := range ctrl.ListChildren(folderID) {
		if r.IsFolder() {
			fmt.Fprintf(Out, "%s%s/\n", indent, r.Name)
			id := r.ID
			printLevel(ctrl, &id, depth+1)
			continue
		}
		fmt.Fprintf(Out, "%s%s (%s)\n", indent, r.Name, fmtSize(r.SizeBytes))
	}
}

func init() { RegisterCmd(treeCmd{}) }
