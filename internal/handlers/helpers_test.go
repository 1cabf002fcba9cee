package handlers_test

import (
	"StudyDeck/internal/filestore"
	"StudyDeck/internal/handlers"
	"StudyDeck/internal/state"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter поднимает роутер на настоящих SQLite-хранилищах во
// временном каталоге: маршруты проверяются насквозь, без моков.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()

	fs, err := filestore.Open(filepath.Join(dir, "files.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fs.Close() })
	require.NoError(t, fs.Migrate())

	ss, err := state.Open(filepath.Join(dir, "state.sqlite"), "v2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })
	require.NoError(t, ss.Migrate())

	h := handlers.NewHandler(fs, ss, zap.NewNop().Sugar())
	return h.Router
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(v))
}

// createFolder — сокращение для тестов: POST /api/folders и разбор ответа.
func createFolder(t *testing.T, router http.Handler, name string, parentID *string) map[string]any {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/folders", map[string]any{
		"name":      name,
		"parent_id": parentID,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	var rec map[string]any
	decodeBody(t, rr, &rec)
	return rec
}

// uploadFile — сокращение для multipart-загрузки.
func uploadFile(t *testing.T, router http.Handler, name string, payload []byte, fields map[string]string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var rec map[string]any
	decodeBody(t, rr, &rec)
	return rec
}
