package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type subjectAddCmd struct{}

func (subjectAddCmd) Name() string { return "subject-add" }
func (subjectAddCmd) Description() string {
	return "Добавить учебный предмет"
}
func (subjectAddCmd) Usage() string { return "subject-add <name> [<teacher>]" }

func (subjectAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	teacher := ""
	if len(args) == 2 {
		teacher = args[1]
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	err = st.Update(func(s *model.AppState) error {
		for _, sub := range s.Subjects {
			if sub.Name == args[0] {
				return fmt.Errorf("предмет %q уже существует", args[0])
			}
		}
		s.Subjects = append(s.Subjects, model.Subject{
			ID:        uuid.NewString(),
			Name:      args[0],
			Teacher:   teacher,
			CreatedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added subject %q\n", args[0])
	return nil
}

type subjectsCmd struct{}

func (subjectsCmd) Name() string { return "subjects" }
func (subjectsCmd) Description() string {
	return "Показать все предметы"
}
func (subjectsCmd) Usage() string { return "subjects" }

func (subjectsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	s, err := st.Load()
	if err != nil {
		return err
	}
	if len(s.Subjects) == 0 {
		fmt.Fprintln(Out, "Нет предметов")
		return nil
	}
	for _, sub := range s.Subjects {
		line := "- " + sub.Name
		if sub.Teacher != "" {
			line += " (" + sub.Teacher + ")"
		}
		fmt.Fprintln(Out, line)
	}
	return nil
}

func init() {
	RegisterCmd(subjectAddCmd{})
	RegisterCmd(subjectsCmd{})
}
