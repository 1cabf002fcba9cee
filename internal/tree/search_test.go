package tree

import (
	"StudyDeck/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func names(recs []model.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestSearch_SubstringOnNameAndTags(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	_, err := c.CreateFolder(ctx, "Math", nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "lecture1.pdf", []byte("1"), FileMeta{Subject: "Math"}, nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "homework.docx", []byte("2"), FileMeta{
		Subject: "Math",
		Tags:    model.Tags{"lecture", "week1"},
	}, nil)
	require.NoError(t, err)

	// подстрока имени ловит файл, метка ловит второй, папка "Math" мимо
	got := c.Search(nil, "lec", "")
	require.Equal(t, []string{"homework.docx", "lecture1.pdf"}, names(got))

	// регистр не важен
	got = c.Search(nil, "LEC", "")
	require.Len(t, got, 2)

	// пустой запрос возвращает всех детей
	got = c.Search(nil, "  ", "")
	require.Len(t, got, 3)
}

func TestSearch_DoesNotRecurse(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	folder, err := c.CreateFolder(ctx, "Notes", nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "lecture1.pdf", []byte("1"), FileMeta{}, &folder.ID)
	require.NoError(t, err)

	// файл лежит в подпапке, поиск от корня его не видит
	require.Empty(t, c.Search(nil, "lecture", ""))
	require.Len(t, c.Search(&folder.ID, "lecture", ""), 1)
}

func TestSearch_SubjectFilter(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	_, err := c.CreateFolder(ctx, "Archive", nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "calc.pdf", []byte("1"), FileMeta{Subject: "Math"}, nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "essay.docx", []byte("2"), FileMeta{Subject: "History"}, nil)
	require.NoError(t, err)
	_, err = c.CreateFile(ctx, "untagged.txt", []byte("3"), FileMeta{}, nil)
	require.NoError(t, err)

	// фильтр по предмету отсекает чужие файлы, но папки проходят всегда
	got := c.Search(nil, "", "Math")
	require.Equal(t, []string{"Archive", "calc.pdf"}, names(got))

	// "All" отключает фильтр целиком
	got = c.Search(nil, "", SubjectAll)
	require.Len(t, got, 4)

	// фильтр сочетается с текстовым запросом
	got = c.Search(nil, "pdf", "History")
	require.Empty(t, got)
}

func TestResolvePath(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	notes, err := c.CreateFolder(ctx, "Notes", nil)
	require.NoError(t, err)
	week, err := c.CreateFolder(ctx, "week1", &notes.ID)
	require.NoError(t, err)
	file, err := c.CreateFile(ctx, "lecture1.pdf", []byte("pdf"), FileMeta{}, &week.ID)
	require.NoError(t, err)

	got, err := c.ResolvePath(ctx, "Notes/week1/lecture1.pdf")
	require.NoError(t, err)
	require.Equal(t, file.ID, got.ID)

	got, err = c.ResolvePath(ctx, "Notes/week1")
	require.NoError(t, err)
	require.Equal(t, week.ID, got.ID)

	// корень
	got, err = c.ResolvePath(ctx, "/")
	require.NoError(t, err)
	require.Nil(t, got)

	// промах на любом уровне
	_, err = c.ResolvePath(ctx, "Notes/week2/lecture1.pdf")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = c.ResolvePath(ctx, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
