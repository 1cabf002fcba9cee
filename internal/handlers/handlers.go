package handlers

import (
	"StudyDeck/internal/middleware"
	"StudyDeck/internal/state"
	"StudyDeck/internal/tree"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров локального дашборда.
// Контроллер дерева создаётся один на серверную сессию: навигационное
// состояние (текущая папка, хлебные крошки) живёт в нём.
func NewHandler(
	store tree.RecordStore,
	stateStore *state.Store,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)

	// Handlers
	recordHandler := NewRecordHandler(store, logger)
	stateHandler := NewStateHandler(stateStore, logger)

	// File-store domain
	r.Get("/api/records", recordHandler.ListRecords)
	r.Get("/api/tree", recordHandler.ListChildren)
	r.Post("/api/folders", recordHandler.CreateFolder)
	r.Post("/api/files", recordHandler.UploadFile)
	r.Get("/api/files/{id}", recordHandler.Download)
	r.Patch("/api/records/{id}", recordHandler.Rename)
	r.Post("/api/records/{id}/move", recordHandler.Move)
	r.Post("/api/records/{id}/meta", recordHandler.SetMeta)
	r.Delete("/api/records/{id}", recordHandler.Delete)
	r.Get("/api/search", recordHandler.Search)
	r.Get("/api/files-export", recordHandler.ExportZip)

	// Navigation (session state)
	r.Get("/api/nav", recordHandler.Nav)
	r.Post("/api/nav/into", recordHandler.NavigateInto)
	r.Post("/api/nav/breadcrumb", recordHandler.NavigateToBreadcrumb)

	// Structured app state domain
	r.Get("/api/state", stateHandler.GetState)
	r.Put("/api/state/sections/{name}", stateHandler.ReplaceSection)
	r.Get("/api/state/export", stateHandler.Export)
	r.Post("/api/state/import", stateHandler.Import)

	r.Method("GET", "/metrics", promhttp.Handler())

	return &Handler{Router: r}
}
