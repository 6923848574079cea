package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/config"
	"github.com/internsetu/internship-service/internal/service"
	"github.com/internsetu/internship-service/internal/session"
)

type Handler struct {
	accountService     service.AccountService
	internshipService  service.InternshipService
	applicationService service.ApplicationService
	sessions           session.Store
	sessionCfg         config.SessionConfig
	logger             zerolog.Logger
}

func NewHandler(
	accountService service.AccountService,
	internshipService service.InternshipService,
	applicationService service.ApplicationService,
	sessions session.Store,
	sessionCfg config.SessionConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		accountService:     accountService,
		internshipService:  internshipService,
		applicationService: applicationService,
		sessions:           sessions,
		sessionCfg:         sessionCfg,
		logger:             logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)

	router.Group(func(r chi.Router) {
		r.Use(h.WithSession)

		r.Get("/", h.Home)
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Get("/logout", h.Logout)
		r.Get("/internships", h.BrowseInternships)
		r.Get("/internship/{id}", h.InternshipDetail)

		r.Group(func(protected chi.Router) {
			protected.Use(h.RequireSession)

			protected.Get("/dashboard", h.Dashboard)
			protected.Post("/apply/{id}", h.Apply)
			protected.Get("/profile", h.Profile)
			protected.Post("/update_profile", h.UpdateProfile)
			protected.Post("/verify_aadhar", h.VerifyAadhar)
		})
	})

	router.Route("/api", func(api chi.Router) {
		api.Get("/internships", h.APIInternships)
		api.Get("/stats", h.APIStats)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "internship-service",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
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

func getStringQueryParam(r *http.Request, key, defaultValue string) string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	return value
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

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrInternshipNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyApplied):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrDeadlinePassed),
		errors.Is(err, service.ErrInvalidAadhar),
		errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
