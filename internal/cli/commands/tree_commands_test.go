package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMkdirLsFlow(t *testing.T) {
	cfg := testCfg(t)
	ctx := context.Background()

	out := withStdoutCapture(t, func() {
		if err := (mkdirCmd{}).Run(ctx, cfg, []string{"Notes"}); err != nil {
			t.Fatalf("mkdir Notes: %v", err)
		}
		if err := (mkdirCmd{}).Run(ctx, cfg, []string{"Notes/week1"}); err != nil {
			t.Fatalf("mkdir Notes/week1: %v", err)
		}
	})
	if !strings.Contains(out, "Created folder Notes") {
		t.Fatalf("mkdir output: %s", out)
	}

	// вложенная папка видна только внутри родителя
	out = withStdoutCapture(t, func() {
		if err := (lsCmd{}).Run(ctx, cfg, []string{}); err != nil {
			t.Fatalf("ls: %v", err)
		}
	})
	if !strings.Contains(out, "Notes/") || strings.Contains(out, "week1") {
		t.Fatalf("root listing: %s", out)
	}
	out = withStdoutCapture(t, func() {
		if err := (lsCmd{}).Run(ctx, cfg, []string{"Notes"}); err != nil {
			t.Fatalf("ls Notes: %v", err)
		}
	})
	if !strings.Contains(out, "week1/") {
		t.Fatalf("Notes listing: %s", out)
	}

	// родитель должен существовать
	if err := (mkdirCmd{}).Run(ctx, cfg, []string{"missing/sub"}); err == nil {
		t.Fatalf("mkdir under missing parent must fail")
	}
	if err := (mkdirCmd{}).Run(ctx, cfg, []string{}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestUploadDownloadRoundTrip(t *testing.T) {
	cfg := testCfg(t)
	ctx := context.Background()
	src := filepath.Join(t.TempDir(), "lecture1.pdf")
	if err := os.WriteFile(src, []byte("pdf-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := (mkdirCmd{}).Run(ctx, cfg, []string{"Notes"}); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	out := withStdoutCapture(t, func() {
		if err := (uploadCmd{}).Run(ctx, cfg, []string{src, "Notes"}); err != nil {
			t.Fatalf("upload: %v", err)
		}
	})
	if !strings.Contains(out, "lecture1.pdf") || !strings.Contains(out, "application/pdf") {
		t.Fatalf("upload output: %s", out)
	}

	dest := filepath.Join(t.TempDir(), "copy.pdf")
	withStdoutCapture(t, func() {
		if err := (downloadCmd{}).Run(ctx, cfg, []string{"Notes/lecture1.pdf", dest}); err != nil {
			t.Fatalf("download: %v", err)
		}
	})
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "pdf-bytes" {
		t.Fatalf("payload mismatch: %q", got)
	}

	// папку скачать нельзя
	if err := (downloadCmd{}).Run(ctx, cfg, []string{"Notes"}); err == nil {
		t.Fatalf("download of a folder must fail")
	}
}

func TestRenameMoveRemove(t *testing.T) {
	cfg := testCfg(t)
	ctx := context.Background()

	if err := (mkdirCmd{}).Run(ctx, cfg, []string{"a"}); err != nil {
		t.Fatalf("mkdir a: %v", err)
	}
	if err := (mkdirCmd{}).Run(ctx, cfg, []string{"a/b"}); err != nil {
		t.Fatalf("mkdir a/b: %v", err)
	}

	withStdoutCapture(t, func() {
		if err := (renameCmd{}).Run(ctx, cfg, []string{"a/b", "c"}); err != nil {
			t.Fatalf("rename: %v", err)
		}
	})
	// перенос поддерева в корень
	withStdoutCapture(t, func() {
		if err := (mvCmd{}).Run(ctx, cfg, []string{"a/c", "/"}); err != nil {
			t.Fatalf("mv: %v", err)
		}
	})
	out := withStdoutCapture(t, func() {
		if err := (lsCmd{}).Run(ctx, cfg, []string{}); err != nil {
			t.Fatalf("ls: %v", err)
		}
	})
	if !strings.Contains(out, "a/") || !strings.Contains(out, "c/") {
		t.Fatalf("root after mv: %s", out)
	}

	// перенос папки в саму себя запрещён
	if err := (mvCmd{}).Run(ctx, cfg, []string{"a", "a"}); err == nil {
		t.Fatalf("mv into itself must fail")
	}

	withStdoutCapture(t, func() {
		if err := (rmCmd{}).Run(ctx, cfg, []string{"c"}); err != nil {
			t.Fatalf("rm: %v", err)
		}
	})
	out = withStdoutCapture(t, func() {
		if err := (lsCmd{}).Run(ctx, cfg, []string{}); err != nil {
			t.Fatalf("ls: %v", err)
		}
	})
	if strings.Contains(out, "c/") {
		t.Fatalf("c must be gone: %s", out)
	}
}

func TestTaskCommands(t *testing.T) {
	cfg := testCfg(t)
	ctx := context.Background()

	withStdoutCapture(t, func() {
		if err := (taskAddCmd{}).Run(ctx, cfg, []string{"read chapter 3", "Math", "2026-09-01"}); err != nil {
			t.Fatalf("task-add: %v", err)
		}
	})
	out := withStdoutCapture(t, func() {
		if err := (tasksCmd{}).Run(ctx, cfg, []string{}); err != nil {
			t.Fatalf("tasks: %v", err)
		}
	})
	if !strings.Contains(out, "[ ] read chapter 3") || !strings.Contains(out, "[Math]") || !strings.Contains(out, "due 2026-09-01") {
		t.Fatalf("tasks output: %s", out)
	}

	withStdoutCapture(t, func() {
		if err := (taskDoneCmd{}).Run(ctx, cfg, []string{"read chapter 3"}); err != nil {
			t.Fatalf("task-done: %v", err)
		}
	})
	out = withStdoutCapture(t, func() { _ = (tasksCmd{}).Run(ctx, cfg, []string{}) })
	if !strings.Contains(out, "[x] read chapter 3") {
		t.Fatalf("task not done: %s", out)
	}

	// повторное выполнение и незнакомая задача
	if err := (taskDoneCmd{}).Run(ctx, cfg, []string{"read chapter 3"}); err == nil {
		t.Fatalf("double done must fail")
	}
	if err := (taskDoneCmd{}).Run(ctx, cfg, []string{"nope"}); err == nil {
		t.Fatalf("unknown task must fail")
	}

	// кривой срок
	if err := (taskAddCmd{}).Run(ctx, cfg, []string{"x", "Math", "01.09.2026"}); err == nil {
		t.Fatalf("bad due date must fail")
	}
}

func TestHabitStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	day := func(off int) string { return now.AddDate(0, 0, off).Format("2006-01-02") }

	if got := habitStreak(nil, now); got != 0 {
		t.Fatalf("empty ticks: %d", got)
	}
	// серия обрывается на пропущенном дне
	ticks := []string{day(0), day(-1), day(-2), day(-4)}
	if got := habitStreak(ticks, now); got != 3 {
		t.Fatalf("streak: %d", got)
	}
	// без отметки за сегодня серии нет
	if got := habitStreak([]string{day(-1), day(-2)}, now); got != 0 {
		t.Fatalf("stale streak: %d", got)
	}
}

func TestHabitCommands(t *testing.T) {
	cfg := testCfg(t)
	ctx := context.Background()

	withStdoutCapture(t, func() {
		if err := (habitAddCmd{}).Run(ctx, cfg, []string{"morning review"}); err != nil {
			t.Fatalf("habit-add: %v", err)
		}
	})
	if err := (habitAddCmd{}).Run(ctx, cfg, []string{"Morning Review"}); err == nil {
		t.Fatalf("duplicate habit must fail")
	}

	out := withStdoutCapture(t, func() {
		if err := (habitTickCmd{}).Run(ctx, cfg, []string{"morning review"}); err != nil {
			t.Fatalf("habit-tick: %v", err)
		}
	})
	if !strings.Contains(out, "streak 1") {
		t.Fatalf("tick output: %s", out)
	}
	if err := (habitTickCmd{}).Run(ctx, cfg, []string{"morning review"}); err == nil {
		t.Fatalf("second tick same day must fail")
	}
}
