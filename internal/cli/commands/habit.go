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

type habitAddCmd struct{}

func (habitAddCmd) Name() string { return "habit-add" }
func (habitAddCmd) Description() string {
	return "Завести привычку"
}
func (habitAddCmd) Usage() string { return "habit-add <name>" }

func (habitAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	err = st.Update(func(s *model.AppState) error {
		for _, h := range s.Habits {
			if strings.EqualFold(h.Name, args[0]) {
				return fmt.Errorf("привычка %q уже существует", args[0])
			}
		}
		s.Habits = append(s.Habits, model.Habit{
			ID:      uuid.NewString(),
			Name:    args[0],
			Created: time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Added habit %q\n", args[0])
	return nil
}

type habitTickCmd struct{}

func (habitTickCmd) Name() string { return "habit-tick" }
func (habitTickCmd) Description() string {
	return "Отметить привычку выполненной сегодня"
}
func (habitTickCmd) Usage() string { return "habit-tick <name>" }

func (habitTickCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	today := time.Now().Format("2006-01-02")
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	var streak int
	err = st.Update(func(s *model.AppState) error {
		for i := range s.Habits {
			h := &s.Habits[i]
			if !strings.EqualFold(h.Name, args[0]) {
				continue
			}
			for _, d := range h.Ticks {
				if d == today {
					return fmt.Errorf("привычка %q уже отмечена сегодня", h.Name)
				}
			}
			h.Ticks = append(h.Ticks, today)
			h.Streak = habitStreak(h.Ticks, time.Now())
			streak = h.Streak
			return nil
		}
		return fmt.Errorf("привычка %q не найдена", args[0])
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Ticked %q, streak %d\n", args[0], streak)
	return nil
}

// habitStreak считает длину непрерывной серии отметок, заканчивающейся сегодня.
func habitStreak(ticks []string, now time.Time) int {
	set := make(map[string]bool, len(ticks))
	for _, d := range ticks {
		set[d] = true
	}
	streak := 0
	for d := now; set[d.Format("2006-01-02")]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

type habitsCmd struct{}

func (habitsCmd) Name() string { return "habits" }
func (habitsCmd) Description() string {
	return "Показать привычки и серии"
}
func (habitsCmd) Usage() string { return "habits" }

func (habitsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if len(s.Habits) == 0 {
		fmt.Fprintln(Out, "Нет привычек")
		return nil
	}
	for _, h := range s.Habits {
		fmt.Fprintf(Out, "- %-24s серия %d, всего отметок %d\n", h.Name, h.Streak, len(h.Ticks))
	}
	return nil
}

func init() {
	RegisterCmd(habitAddCmd{})
	RegisterCmd(habitTickCmd{})
	RegisterCmd(habitsCmd{})
}
