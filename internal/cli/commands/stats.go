package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"context"
	"fmt"
)

type statsCmd struct{}

func (statsCmd) Name() string { return "stats" }
func (statsCmd) Description() string {
	return "Краткая сводка по обоим хранилищам"
}
func (statsCmd) Usage() string { return "stats" }

func (statsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store, doneF, err := bootstrap.OpenFileStore(cfg)
	if err != nil {
		return err
	}
	defer doneF()
	st, doneS, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer doneS()

	recs, err := store.ListAll(ctx)
	if err != nil {
		return err
	}
	var folders, files int
	var bytes int64
	for _, r := range recs {
		if r.IsFolder() {
			folders++
		} else {
			files++
			bytes += r.SizeBytes
		}
	}
	s, err := st.Load()
	if err != nil {
		return err
	}
	openTasks := 0
	for _, t := range s.Tasks {
		if !t.Done {
			openTasks++
		}
	}

	fmt.Fprintf(Out, "Files:    %d (%s) in %d folders\n", files, fmtSize(bytes), folders)
	fmt.Fprintf(Out, "Subjects: %d\n", len(s.Subjects))
	fmt.Fprintf(Out, "Tasks:    %d open / %d total\n", openTasks, len(s.Tasks))
	fmt.Fprintf(Out, "Goals:    %d\n", len(s.Goals))
	fmt.Fprintf(Out, "Habits:   %d\n", len(s.Habits))
	fmt.Fprintf(Out, "Sessions: %d\n", len(s.Sessions))
	return nil
}

func init() { RegisterCmd(statsCmd{}) }
