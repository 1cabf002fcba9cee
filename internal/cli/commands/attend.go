package commands

import (
	"StudyDeck/internal/cli/bootstrap"
	"StudyDeck/internal/config"
	"StudyDeck/internal/model"
	"context"
	"fmt"
	"time"
)

type attendCmd struct{}

func (attendCmd) Name() string { return "attend" }
func (attendCmd) Description() string {
	return "Отметить посещение занятия (по умолчанию сегодня)"
}
func (attendCmd) Usage() string { return "attend <subject> <present|absent> [<date>]" }

func (attendCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	var present bool
	switch args[1] {
	case "present":
		present = true
	case "absent":
		present = false
	default:
		return ErrUsage
	}
	date := time.Now().Format("2006-01-02")
	if len(args) == 3 {
		if _, err := time.Parse("2006-01-02", args[2]); err != nil {
			return fmt.Errorf("неверная дата %q: ожидается 2006-01-02", args[2])
		}
		date = args[2]
	}
	st, done, err := bootstrap.OpenStateStore(cfg)
	if err != nil {
		return err
	}
	defer done()
	err = st.Update(func(s *model.AppState) error {
		// повторная отметка за тот же день перезаписывает предыдущую
		for i := range s.Attendance {
			if s.Attendance[i].Subject == args[0] && s.Attendance[i].Date == date {
				s.Attendance[i].Present = present
				return nil
			}
		}
		s.Attendance = append(s.Attendance, model.AttendanceEntry{
			Subject: args[0],
			Date:    date,
			Present: present,
		})
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Attendance: %s %s %s\n", args[0], date, args[1])
	return nil
}

type attendanceCmd struct{}

func (attendanceCmd) Name() string { return "attendance" }
func (attendanceCmd) Description() string {
	return "Сводка посещаемости по предметам"
}
func (attendanceCmd) Usage() string { return "attendance" }

func (attendanceCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if len(s.Attendance) == 0 {
		fmt.Fprintln(Out, "Нет отметок посещаемости")
		return nil
	}
	type counter struct{ present, total int }
	bySubject := map[string]*counter{}
	var order []string
	for _, e := range s.Attendance {
		c := bySubject[e.Subject]
		if c == nil {
			c = &counter{}
			bySubject[e.Subject] = c
			order = append(order, e.Subject)
		}
		c.total++
		if e.Present {
			c.present++
		}
	}
	for _, subj := range order {
		c := bySubject[subj]
		pct := 100 * float64(c.present) / float64(c.total)
		fmt.Fprintf(Out, "- %-24s %d/%d (%.0f%%)\n", subj, c.present, c.total, pct)
	}
	return nil
}

func init() {
	RegisterCmd(attendCmd{})
	RegisterCmd(attendanceCmd{})
}
