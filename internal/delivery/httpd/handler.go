package httpd

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pixiegarden/english-backend/internal/docstore"
	"github.com/pixiegarden/english-backend/internal/service"
)

type Handler struct {
	catalogService    service.CatalogService
	enrollmentService service.EnrollmentService
	store             docstore.Gateway
	logger            zerolog.Logger
}

func NewHandler(
	catalogService service.CatalogService,
	enrollmentService service.EnrollmentService,
	store docstore.Gateway,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		catalogService:    catalogService,
		enrollmentService: enrollmentService,
		store:             store,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Root)
	router.Get("/health", h.HealthCheck)
	router.Get("/test", h.Status)
	router.Post("/seed", h.SeedLessons)
	router.Get("/lessons", h.ListLessons)
	router.Post("/start-lesson", h.StartLesson)
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "PixieGarden English Backend Running",
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "english-backend",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

// Status — диагностика для фронтенда: процесс, переменные окружения,
// живость базы и список коллекций. Всегда отвечает 200.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":       "✅ Running",
		"database":      "❌ Not Connected",
		"database_url":  envFlag("DATABASE_URL"),
		"database_name": envFlag("DATABASE_NAME"),
		"collections":   []string{},
	}

	if h.store.Available() {
		collections, err := h.store.ListCollections(r.Context())
		if err != nil {
			response["database"] = "❌ Error: " + truncate(err.Error(), 120)
		} else {
			response["database"] = "✅ Connected"
			if collections != nil {
				response["collections"] = collections
			}
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func envFlag(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func getIntQueryParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}
