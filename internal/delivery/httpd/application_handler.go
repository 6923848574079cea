package httpd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/internsetu/internship-service/internal/models"
)

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	internshipID := chi.URLParam(r, "id")
	if internshipID == "" {
		writeError(w, http.StatusBadRequest, "Internship ID is required")
		return
	}

	accountID, _ := AccountIDFromContext(r.Context())

	// Cover letter is optional; an empty or absent body is a valid submission.
	var req models.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.applicationService.Apply(r.Context(), accountID, internshipID, req.CoverLetter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    response,
	})
}
