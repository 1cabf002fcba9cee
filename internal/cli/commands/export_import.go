package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"context"
	"fmt"
	"os"
)

type exportCmd struct{}

func (exportCmd) Name() string { return "export" }
func (exportCmd) Description() string {
	return "Выгрузить документ состояния в .json (без содержимого файлов)"
}
func (exportCmd) Usage() string { return "export <state.json>" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := st.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported state to %s\n", args[0])
	return nil
}

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Заменить состояние документом из .json (после проверки формы)"
}
func (importCmd) Usage() string { return "import <state.json>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := st.Import(f); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Imported state from %s\n", args[0])
	return nil
}

func init() {
	RegisterCmd(exportCmd{})
	RegisterCmd(importCmd{})
}
