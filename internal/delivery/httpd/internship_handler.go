package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/internsetu/internship-service/internal/models"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	internships, err := h.internshipService.GetFeatured(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if internships == nil {
		internships = []models.Internship{}
	}

	writeSuccess(w, internships)
}

func (h *Handler) BrowseInternships(w http.ResponseWriter, r *http.Request) {
	filter := models.InternshipFilter{
		Page:        getIntQueryParam(r, "page", 1),
		CompanyType: getStringQueryParam(r, "company_type", "all"),
		Category:    getStringQueryParam(r, "category", "all"),
		Search:      r.URL.Query().Get("search"),
	}

	response, err := h.internshipService.Browse(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) InternshipDetail(w http.ResponseWriter, r *http.Request) {
	internshipID := chi.URLParam(r, "id")
	if internshipID == "" {
		writeError(w, http.StatusBadRequest, "Internship ID is required")
		return
	}

	// Session is optional here: it only drives the already_applied flag.
	accountID, _ := AccountIDFromContext(r.Context())

	detail, err := h.internshipService.GetDetail(r.Context(), internshipID, accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, detail)
}

func (h *Handler) APIInternships(w http.ResponseWriter, r *http.Request) {
	internships, err := h.internshipService.ListVerified(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, internships)
}

func (h *Handler) APIStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.internshipService.Stats(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
