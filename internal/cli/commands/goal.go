package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type goalAddCmd struct{}

func (goalAddCmd) Name() string { return "goal-add" }
func (goalAddCmd) Description() string {
	return "Добавить цель"
}
func (goalAddCmd) Usage() string { return "goal-add <title>" }

func (goalAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	goal := model.Goal{ID: uuid.NewString(), Title: args[0], CreatedAt: time.Now()}
	err = st.Update(func(s *model.AppState) error {
		s.Goals = append(s.Goals, goal)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added goal %q\n", goal.Title)
	return nil
}

type goalProgressCmd struct{}

func (goalProgressCmd) Name() string { return "goal-progress" }
func (goalProgressCmd) Description() string {
	return "Обновить прогресс цели (0..100)"
}
func (goalProgressCmd) Usage() string { return "goal-progress <title> <percent>" }

func (goalProgressCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	pct, err := strconv.Atoi(args[1])
	if err != nil || pct < 0 || pct > 100 {
		return fmt.Errorf("неверный процент %q: ожидается число 0..100", args[1])
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	err = st.Update(func(s *model.AppState) error {
		for i := range s.Goals {
			if strings.EqualFold(s.Goals[i].Title, args[0]) {
				s.Goals[i].Progress = pct
				return nil
			}
		}
		return fmt.Errorf("цель %q не найдена", args[0])
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Goal %q: %d%%\n", args[0], pct)
	return nil
}

type goalsCmd struct{}

func (goalsCmd) Name() string { return "goals" }
func (goalsCmd) Description() string {
	return "Показать цели и прогресс"
}
func (goalsCmd) Usage() string { return "goals" }

func (goalsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if len(s.Goals) == 0 {
		fmt.Fprintln(Out, "Нет целей")
		return nil
	}
	for _, g := range s.Goals {
		fmt.Fprintf(Out, "- %-32s %3d%%\n", g.Title, g.Progress)
	}
	return nil
}

func init() {
	RegisterCmd(goalAddCmd{})
	RegisterCmd(goalProgressCmd{})
	RegisterCmd(goalsCmd{})
}
