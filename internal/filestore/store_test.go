package filestore

import (
	"StudyDeck/internal/model"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "files.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Migrate())
	return s
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := &model.Record{
		ID:        uuid.NewString(),
		Name:      "lecture1.pdf",
		Kind:      model.KindFile,
		MimeType:  "application/pdf",
		SizeBytes: 4,
		Payload:   []byte{0xde, 0xad, 0xbe, 0xef},
		Subject:   "Math",
		Tags:      model.Tags{"exam", "week1"},
		CreatedAt: time.Now().Truncate(time.Second),
	}
	id, err := s.Put(ctx, rec)
	require.NoError(t, err)
	require.Equal(t, rec.ID, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, rec.Name, got.Name)
	require.Equal(t, rec.Kind, got.Kind)
	require.Equal(t, rec.MimeType, got.MimeType)
	require.Equal(t, rec.SizeBytes, got.SizeBytes)
	require.Equal(t, rec.Payload, got.Payload)
	require.Equal(t, rec.Subject, got.Subject)
	require.Equal(t, rec.Tags, got.Tags)
	require.Nil(t, got.ParentID)
}

func TestPut_UpsertReplacesWholeRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := &model.Record{ID: uuid.NewString(), Name: "Notes", Kind: model.KindFolder}
	_, err := s.Put(ctx, rec)
	require.NoError(t, err)

	// та же запись с новым именем — полная замена, id стабилен
	rec.Name = "Lecture Notes"
	_, err = s.Put(ctx, rec)
	require.NoError(t, err)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, "Lecture Notes", got.Name)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "upsert must not create a second logical object")
}

func TestPut_RejectsInvalidRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, &model.Record{Name: "x", Kind: model.KindFile})
	require.Error(t, err, "missing id")

	_, err = s.Put(ctx, &model.Record{ID: uuid.NewString(), Kind: model.KindFile})
	require.Error(t, err, "missing name")

	_, err = s.Put(ctx, &model.Record{ID: uuid.NewString(), Name: "f", Kind: model.KindFolder, Payload: []byte{1}})
	require.Error(t, err, "folder with payload")
}

func TestGet_MissingIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDelete_RemovesAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := &model.Record{ID: uuid.NewString(), Name: "tmp.txt", Kind: model.KindFile, Payload: []byte("x"), SizeBytes: 1}
	_, err := s.Put(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, rec.ID))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	// удаление несуществующего id — тихий no-op
	require.NoError(t, s.Delete(ctx, rec.ID))
}

func TestListAll_ReturnsEveryRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := map[string]bool{}
	for _, name := range []string{"a", "b", "c"} {
		rec := &model.Record{ID: uuid.NewString(), Name: name, Kind: model.KindFolder}
		_, err := s.Put(ctx, rec)
		require.NoError(t, err)
		ids[rec.ID] = true
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, r := range all {
		require.True(t, ids[r.ID], "unexpected record %s", r.ID)
	}
}
