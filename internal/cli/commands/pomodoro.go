package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
	"strconv"
	"time"
)

type pomodoroCmd struct{}

func (pomodoroCmd) Name() string { return "pomodoro" }
func (pomodoroCmd) Description() string {
	return "Запустить помодоро-таймер; сессия записывается по завершении"
}
func (pomodoroCmd) Usage() string { return "pomodoro [<minutes>] [<subject>]" }

func (pomodoroCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 2 {
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
	minutes := s.Settings.PomodoroMinutes
	if minutes <= 0 {
		minutes = 25
	}
	if len(args) >= 1 {
		m, err := strconv.Atoi(args[0])
		if err != nil || m <= 0 {
			return fmt.Errorf("неверная длительность %q", args[0])
		}
		minutes = m
	}
	subject := ""
	if len(args) == 2 {
		subject = args[1]
	}

	fmt.Fprintf(Out, "Pomodoro: %d мин", minutes)
	if subject != "" {
		fmt.Fprintf(Out, " (%s)", subject)
	}
	fmt.Fprintln(Out)

	timer := time.NewTimer(time.Duration(minutes) * time.Minute)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		// прерванная сессия не записывается
		fmt.Fprintln(Out, "Прервано")
		return nil
	case <-timer.C:
	}

	err = st.Update(func(s *model.AppState) error {
		s.Sessions = append(s.Sessions, model.PomodoroSession{
			Subject:    subject,
			Minutes:    minutes,
			FinishedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Готово! Перерыв %d мин\n", s.Settings.BreakMinutes)
	return nil
}

func init() { RegisterCmd(pomodoroCmd{}) }
