package handlers

import (
	"StudyDeck/internal/archive"
	"StudyDeck/internal/model"
	"StudyDeck/internal/tree"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadBytes ограничивает размер одного загружаемого файла.
const maxUploadBytes = 64 << 20

// RecordHandler обслуживает файловый домен и навигацию по дереву.
// Структурные мутации сериализуются мьютексом: контроллер рассчитан на
// одного писателя за раз (аналог блокировки drop-целей на время переноса).
type RecordHandler struct {
	Store  tree.RecordStore
	Ctrl   *tree.Controller
	Logger *zap.SugaredLogger

	mu sync.Mutex
}

// NewRecordHandler создаёт хендлер файлового домена.
func NewRecordHandler(store tree.RecordStore, logger *zap.SugaredLogger) *RecordHandler {
	return &RecordHandler{
		Store:  store,
		Ctrl:   tree.NewController(store),
		Logger: logger,
	}
}

// recordDTO — запись плюс производный класс отображения.
type recordDTO struct {
	model.Record
	Class model.Class `json:"class"`
}

func toDTO(recs []model.Record) []recordDTO {
	out := make([]recordDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordDTO{Record: r, Class: model.ClassifyMIME(r.Kind, r.MimeType)})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeTreeError переводит ошибки контроллера в HTTP-статусы.
func (h *RecordHandler) writeTreeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tree.ErrNotFound), errors.Is(err, tree.ErrParentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, tree.ErrCycle), errors.Is(err, tree.ErrFolderNotEmpty), errors.Is(err, tree.ErrNotFolder):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.Logger.Errorw("file store error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parentParam читает ?parent= (пусто — корень).
func parentParam(r *http.Request) *string {
	p := r.URL.Query().Get("parent")
	if p == "" {
		return nil
	}
	return &p
}

// ListRecords отдаёт весь плоский список записей.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.ListAll(r.Context())
	if err != nil {
		h.writeTreeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(recs))
}

// ListChildren отдаёт прямых детей папки (папки впереди, затем по имени).
func (h *RecordHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Ctrl.Reload(r.Context()); err != nil {
		h.writeTreeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDTO(h.Ctrl.ListChildren(parentParam(r))))
}

type createFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CreateFolder создаёт папку.
func (h *RecordHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	rec, err := h.Ctrl.CreateFolder(r.Context(), req.Name, req.ParentID)
	if err != nil {
		if errors.Is(err, tree.ErrParentNotFound) || errors.Is(err, tree.ErrNotFolder) {
			h.writeTreeError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, recordDTO{Record: *rec, Class: model.ClassFolder})
}

// UploadFile принимает multipart-форму: file (обязателен), name, parent_id,
// subject, tags (через запятую).
func (h *RecordHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadFile: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	f, fh, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer f.Close()
	payload, err := io.ReadAll(f)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = fh.Filename
	}
	var parentID *string
	if p := r.FormValue("parent_id"); p != "" {
		parentID = &p
	}
	mimeType := fh.Header.Get("Content-Type")
	if mt := r.FormValue("mime_type"); mt != "" {
		mimeType = mt
	}
	var tags model.Tags
	if raw := r.FormValue("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	rec, err := h.Ctrl.CreateFile(r.Context(), name, payload, tree.FileMeta{
		MimeType: mimeType,
		Subject:  r.FormValue("subject"),
		Tags:     tags,
	}, parentID)
	if err != nil {
		if errors.Is(err, tree.ErrParentNotFound) || errors.Is(err, tree.ErrNotFolder) {
			h.writeTreeError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, recordDTO{Record: *rec, Class: model.ClassifyMIME(rec.Kind, rec.MimeType)})
}

// Download отдаёт содержимое файла с его MIME-типом.
func (h *RecordHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.Store.Get(r.Context(), id)
	if err != nil {
		h.writeTreeError(w, err)
		return
	}
	if rec == nil || rec.IsFolder() {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	ct := rec.MimeType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rec.Payload)
}

type renameRequest struct {
	Name string `json:"name"`
}

// Rename переименовывает запись.
func (h *RecordHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Ctrl.Rename(r.Context(), chi.URLParam(r, "id"), req.Name); err != nil {
		h.writeTreeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	ParentID *string `json:"parent_id"` // null — в корень
}

// Move перевешивает запись под новую папку.
func (h *RecordHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Ctrl.MoveTo(r.Context(), chi.URLParam(r, "id"), req.ParentID); err != nil {
		h.writeTreeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type metaRequest struct {
	Subject string     `json:"subject"`
	Tags    model.Tags `json:"tags"`
}

// SetMeta обновляет предмет и метки файла.
func (h *RecordHandler) SetMeta(w http.ResponseWriter, r *http.Request) {
	var req metaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Ctrl.SetMeta(r.Context(), chi.URLParam(r, "id"), req.Subject, req.Tags); err != nil {
		h.writeTreeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет запись; ?recursive=1 включает каскад.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.mu.Lock()
	defer h.mu.Unlock()
	var err error
	if r.URL.Query().Get("recursive") == "1" {
		err = h.Ctrl.DeleteRecursive(r.Context(), id)
	} else {
		err = h.Ctrl.Delete(r.Context(), id)
	}
	if err != nil {
		h.writeTreeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search ищет среди детей папки ?parent= по ?q= и ?subject=.
func (h *RecordHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Ctrl.Reload(r.Context()); err != nil {
		h.writeTreeError(w, err)
		return
	}
	q := r.URL.Query().Get("q")
	subject := r.URL.Query().Get("subject")
	writeJSON(w, http.StatusOK, toDTO(h.Ctrl.Search(parentParam(r), q, subject)))
}

// ExportZip выгружает весь файловый домен одним zip-архивом.
func (h *RecordHandler) ExportZip(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="studydeck-files.zip"`)
	if err := archive.ExportZip(r.Context(), h.Store, w); err != nil {
		h.Logger.Errorw("files export failed", "error", err)
	}
}

type navResponse struct {
	Current *string            `json:"current"`
	Path    []model.Breadcrumb `json:"path"`
}

// Nav отдаёт текущую папку и хлебные крошки.
func (h *RecordHandler) Nav(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, navResponse{Current: h.Ctrl.Current(), Path: h.Ctrl.Path()})
}

type navIntoRequest struct {
	ID string `json:"id"`
}

// NavigateInto заходит в папку по id.
func (h *RecordHandler) NavigateInto(w http.ResponseWriter, r *http.Request) {
	var req navIntoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	rec, err := h.Store.Get(r.Context(), req.ID)
	if err != nil {
		h.writeTreeError(w, err)
		return
	}
	if rec == nil {
		http.Error(w, "folder not found", http.StatusNotFound)
		return
	}
	if err := h.Ctrl.NavigateInto(rec); err != nil {
		h.writeTreeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, navResponse{Current: h.Ctrl.Current(), Path: h.Ctrl.Path()})
}

type navCrumbRequest struct {
	Index int `json:"index"` // -1 — корень
}

// NavigateToBreadcrumb прыгает к предку по индексу цепочки.
func (h *RecordHandler) NavigateToBreadcrumb(w http.ResponseWriter, r *http.Request) {
	var req navCrumbRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Ctrl.NavigateToBreadcrumb(req.Index)
	writeJSON(w, http.StatusOK, navResponse{Current: h.Ctrl.Current(), Path: h.Ctrl.Path()})
}
