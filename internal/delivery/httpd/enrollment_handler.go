package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixiegarden/english-backend/internal/models"
	"github.com/pixiegarden/english-backend/internal/service"
)

func (h *Handler) StartLesson(w http.ResponseWriter, r *http.Request) {
	var req models.StartLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StudentName == "" {
		writeError(w, http.StatusBadRequest, "student_name is required")
		return
	}

	if req.LessonID == "" {
		writeError(w, http.StatusBadRequest, "lesson_id is required")
		return
	}

	ctx := r.Context()
	resp, err := h.enrollmentService.StartLesson(ctx, &req)
	if err != nil {
		h.handleEnrollmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleEnrollmentError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.Is(err, service.ErrInvalidLessonID):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLessonNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	default:
		h.logger.Error().Err(err).Msg("Enrollment failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
