package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/internsetu/internship-service/internal/models"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Mobile == "" ||
		req.EducationLevel == "" || req.FieldOfStudy == "" || req.University == "" {
		writeError(w, http.StatusBadRequest, "All profile fields are required")
		return
	}

	if req.GraduationYear <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid graduation year")
		return
	}

	ctx := r.Context()
	account, err := h.accountService.Register(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.openSession(w, r, account.ID); err != nil {
		h.logger.Error().Err(err).Msg("Failed to open session")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, account)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx := r.Context()
	account, err := h.accountService.Login(ctx, req.Email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.openSession(w, r, account.ID); err != nil {
		h.logger.Error().Err(err).Msg("Failed to open session")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeSuccess(w, account)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.sessionCfg.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("Failed to delete session")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
	})

	writeSuccess(w, map[string]string{"message": "Logged out"})
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, accountID string) error {
	token, err := h.sessions.Create(r.Context(), accountID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
