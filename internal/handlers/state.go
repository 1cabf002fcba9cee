package handlers

import (
	"StudyDeck/internal/state"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StateHandler обслуживает домен структурированного состояния.
type StateHandler struct {
	State  *state.Store
	Logger *zap.SugaredLogger
}

// NewStateHandler создаёт хендлер состояния.
func NewStateHandler(st *state.Store, logger *zap.SugaredLogger) *StateHandler {
	return &StateHandler{State: st, Logger: logger}
}

// GetState отдаёт весь документ состояния.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.State.Load()
	if err != nil {
		h.Logger.Errorw("load state", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ReplaceSection целиком заменяет одну секцию документа. Этим примитивом
// пишут внешние потребители (виджеты дашборда, ассистент) — файлового
// домена они не касаются.
func (h *StateHandler) ReplaceSection(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.State.ReplaceSection(name, json.RawMessage(raw)); err != nil {
		if errors.Is(err, state.ErrUnknownSection) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export выгружает документ состояния как скачиваемый .json.
func (h *StateHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="studydeck-state.json"`)
	if err := h.State.Export(w); err != nil {
		h.Logger.Errorw("state export failed", "error", err)
	}
}

// Import целиком заменяет состояние присланным документом после проверки
// формы. При ошибке состояние остаётся прежним.
func (h *StateHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := h.State.Import(r.Body); err != nil {
		if errors.Is(err, state.ErrBadImport) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("state import failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
