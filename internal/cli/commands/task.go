package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type taskAddCmd struct{}

func (taskAddCmd) Name() string { return "task-add" }
func (taskAddCmd) Description() string {
	return "Добавить задачу (срок в формате 2006-01-02)"
}
func (taskAddCmd) Usage() string { return "task-add <title> [<subject>] [<due>]" }

func (taskAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	task := model.Task{
		ID:        uuid.NewString(),
		Title:     args[0],
		CreatedAt: time.Now(),
	}
	if len(args) >= 2 {
		task.Subject = args[1]
	}
	if len(args) == 3 {
		due, err := time.Parse("2006-01-02", args[2])
		if err != nil {
			return fmt.Errorf("неверный срок %q: ожидается 2006-01-02", args[2])
		}
		task.Due = &due
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	err = st.Update(func(s *model.AppState) error {
		s.Tasks = append(s.Tasks, task)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added task %q (id %s)\n", task.Title, task.ID)
	return nil
}

type tasksCmd struct{}

func (tasksCmd) Name() string { return "tasks" }
func (tasksCmd) Description() string {
	return "Показать задачи (невыполненные впереди)"
}
func (tasksCmd) Usage() string { return "tasks" }

func (tasksCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if len(s.Tasks) == 0 {
		fmt.Fprintln(Out, "Нет задач")
		return nil
	}
	printGroup := func(done bool) {
		for _, t := range s.Tasks {
			if t.Done != done {
				continue
			}
			mark := "[ ]"
			if t.Done {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, t.Title)
			if t.Subject != "" {
				line += "  [" + t.Subject + "]"
			}
			if t.Due != nil {
				line += "  due " + t.Due.Format("2006-01-02")
			}
			fmt.Fprintln(Out, line)
		}
	}
	printGroup(false)
	printGroup(true)
	return nil
}

type taskDoneCmd struct{}

func (taskDoneCmd) Name() string { return "task-done" }
func (taskDoneCmd) Description() string {
	return "Отметить задачу выполненной (по id или точному названию)"
}
func (taskDoneCmd) Usage() string { return "task-done <id-or-title>" }

func (taskDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	var title string
	err = st.Update(func(s *model.AppState) error {
		for i := range s.Tasks {
			t := &s.Tasks[i]
			if t.ID == args[0] || strings.EqualFold(t.Title, args[0]) {
				if t.Done {
					return fmt.Errorf("задача %q уже выполнена", t.Title)
				}
				now := time.Now()
				t.Done = true
				t.DoneAt = &now
				title = t.Title
				return nil
			}
		}
		return fmt.Errorf("задача %q не найдена", args[0])
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Done: %s\n", title)
	return nil
}

func init() {
	RegisterCmd(taskAddCmd{})
	RegisterCmd(tasksCmd{})
	RegisterCmd(taskDoneCmd{})
}
