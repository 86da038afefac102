package httpd

import (
	"net/http"
)

func (h *Handler) SeedLessons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.catalogService.Seed(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to seed lessons")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.AlreadySeeded {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"message": "Lessons already seeded",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"inserted": result.Inserted,
	})
}

func (h *Handler) ListLessons(w http.ResponseWriter, r *http.Request) {
	limit := getIntQueryParam(r, "limit", 50)
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	list := h.catalogService.List(r.Context(), limit)

	writeJSON(w, http.StatusOK, list)
}
