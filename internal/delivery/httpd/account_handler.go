package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/internsetu/internship-service/internal/models"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountIDFromContext(r.Context())

	ctx := r.Context()
	account, err := h.accountService.GetByID(ctx, accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	applications, err := h.applicationService.GetRecent(ctx, accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	recommended, err := h.internshipService.Recommend(ctx, account)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if applications == nil {
		applications = []models.ApplicationWithInternship{}
	}
	if recommended == nil {
		recommended = []models.Internship{}
	}

	writeSuccess(w, models.DashboardResponse{
		Account:            *account,
		RecentApplications: applications,
		Recommended:        recommended,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountIDFromContext(r.Context())

	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, account)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountIDFromContext(r.Context())

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Mobile == "" || req.EducationLevel == "" ||
		req.FieldOfStudy == "" || req.University == "" {
		writeError(w, http.StatusBadRequest, "All profile fields are required")
		return
	}

	if req.GraduationYear <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid graduation year")
		return
	}

	account, err := h.accountService.UpdateProfile(r.Context(), accountID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, account)
}

func (h *Handler) VerifyAadhar(w http.ResponseWriter, r *http.Request) {
	accountID, _ := AccountIDFromContext(r.Context())

	var req models.VerifyAadharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.accountService.VerifyAadhar(r.Context(), accountID, req.AadharNumber); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Aadhar verified successfully"})
}
