package commands

import (
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"StudyDeck/internal/tree"
	"context"
	"fmt"
	"strings"
)

type tagCmd struct{}

func (tagCmd) Name() string { return "tag" }
func (tagCmd) Description() string {
	return "Назначить файлу предмет и метки (\"-\" сбрасывает предмет)"
}
func (tagCmd) Usage() string { return "tag <path> <subject> [<tag,tag,...>]" }

func (tagCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	subject := args[1]
	if subject == "-" {
		subject = ""
	}
	var tags model.Tags
	if len(args) == 3 {
		for _, t := range strings.Split(args[2], ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
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
	if rec.IsFolder() {
		return fmt.Errorf("%q: метки назначаются только файлам", args[0])
	}
	if err := ctrl.SetMeta(ctx, rec.ID, subject, tags); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Tagged %q: subject=%q tags=%v\n", args[0], subject, []string(tags))
	return nil
}

func init() { RegisterCmd(tagCmd{}) }
