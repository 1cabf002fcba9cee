package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
)

type lsCmd struct{}

func (lsCmd) Name() string { return "ls" }
func (lsCmd) Description() string {
	return "Показать содержимое папки (папки всегда впереди)"
}
func (lsCmd) Usage() string { return "ls [<folder-path>]" }

func (lsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	ctrl, _, done, err := openTree(cfg)
	if err != nil {
		return err
	}
	defer done()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	folderID, err := resolveFolderID(ctx, ctrl, path)
	if err != nil {
		return err
	}
	children := ctrl.ListChildren(folderID)
	if len(children) == 0 {
		fmt.Fprintln(Out, "Пусто")
		return nil
	}
	for _, r := range children {
		if r.IsFolder() {
			fmt.Fprintf(Out, "  %s/\n", r.Name)
			continue
		}
		class := model.ClassifyMIME(r.Kind, r.MimeType)
		extra := ""
		if r.Subject != "" {
			extra = "  [" + r.Subject + "]"
		}
		fmt.Fprintf(Out, "  %-32s %-12s %s%s\n", r.Name, class, fmtSize(r.SizeBytes), extra)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(children))
	return nil
}

func init() { RegisterCmd(lsCmd{}) }
