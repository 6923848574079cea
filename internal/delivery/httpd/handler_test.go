package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internsetu/internship-service/internal/config"
	"github.com/internsetu/internship-service/internal/models"
	"github.com/internsetu/internship-service/internal/service"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) Create(ctx context.Context, accountID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	token := "token-" + accountID
	s.sessions[token] = accountID
	return token, nil
}

func (s *fakeSessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token], nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *fakeSessionStore) Close() error { return nil }

type fakeAccountService struct {
	accounts map[string]*models.Account
}

func (s *fakeAccountService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	for _, account := range s.accounts {
		if account.Email == req.Email {
			return nil, service.ErrEmailTaken
		}
	}
	account := &models.Account{ID: "acc-1", Name: req.Name, Email: req.Email}
	s.accounts[account.ID] = account
	return account, nil
}

func (s *fakeAccountService) Login(ctx context.Context, email string) (*models.Account, error) {
	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, service.ErrAccountNotFound
}

func (s *fakeAccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	return account, nil
}

func (s *fakeAccountService) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, service.ErrAccountNotFound
	}
	account.Name = req.Name
	return account, nil
}

func (s *fakeAccountService) VerifyAadhar(ctx context.Context, id, aadharNumber string) error {
	if len(aadharNumber) != 12 {
		return service.ErrInvalidAadhar
	}
	for _, ch := range aadharNumber {
		if ch < '0' || ch > '9' {
			return service.ErrInvalidAadhar
		}
	}
	return nil
}

type fakeInternshipService struct {
	detail     *models.InternshipDetailResponse
	lastFilter models.InternshipFilter
}

func (s *fakeInternshipService) Browse(ctx context.Context, filter models.InternshipFilter) (*models.InternshipsResponse, error) {
	s.lastFilter = filter
	return &models.InternshipsResponse{
		Internships: []models.Internship{},
		Page:        filter.Page,
		PerPage:     service.PerPage,
	}, nil
}

func (s *fakeInternshipService) GetFeatured(ctx context.Context) ([]models.Internship, error) {
	return []models.Internship{}, nil
}

func (s *fakeInternshipService) GetDetail(ctx context.Context, id, accountID string) (*models.InternshipDetailResponse, error) {
	if s.detail == nil || s.detail.Internship.ID != id {
		return nil, service.ErrInternshipNotFound
	}
	detail := *s.detail
	detail.AlreadyApplied = accountID != ""
	return &detail, nil
}

func (s *fakeInternshipService) Recommend(ctx context.Context, account *models.Account) ([]models.Internship, error) {
	return []models.Internship{}, nil
}

func (s *fakeInternshipService) ListVerified(ctx context.Context) ([]models.InternshipAPI, error) {
	return []models.InternshipAPI{}, nil
}

func (s *fakeInternshipService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	return &models.StatsResponse{TotalInternships: 3, TrustInternships: 1, GovernmentInternships: 1, PrivateInternships: 1}, nil
}

type fakeApplicationService struct {
	lastCoverLetter string
	err             error
}

func (s *fakeApplicationService) Apply(ctx context.Context, accountID, internshipID, coverLetter string) (*models.ApplyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastCoverLetter = coverLetter
	return &models.ApplyResponse{
		ID:        "app-1",
		Status:    models.ApplicationStatusPending.String(),
		AppliedAt: time.Now(),
	}, nil
}

func (s *fakeApplicationService) GetRecent(ctx context.Context, accountID string) ([]models.ApplicationWithInternship, error) {
	return []models.ApplicationWithInternship{}, nil
}

type testEnv struct {
	router       chi.Router
	sessions     *fakeSessionStore
	accounts     *fakeAccountService
	internships  *fakeInternshipService
	applications *fakeApplicationService
}

func newTestEnv() *testEnv {
	sessions := newFakeSessionStore()
	accounts := &fakeAccountService{accounts: make(map[string]*models.Account)}
	internships := &fakeInternshipService{}
	applications := &fakeApplicationService{}

	handler := NewHandler(
		accounts,
		internships,
		applications,
		sessions,
		config.SessionConfig{CookieName: "session_id", TTL: time.Hour},
		zerolog.Nop(),
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return &testEnv{
		router:       router,
		sessions:     sessions,
		accounts:     accounts,
		internships:  internships,
		applications: applications,
	}
}

func (e *testEnv) loginAs(accountID string) *http.Cookie {
	e.accounts.accounts[accountID] = &models.Account{ID: accountID, Email: accountID + "@example.com"}
	token, _ := e.sessions.Create(context.Background(), accountID)
	return &http.Cookie{Name: "session_id", Value: token}
}

func (e *testEnv) do(method, target string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodPost, "/login", `{"email":"nobody@example.com"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv()
	env.accounts.accounts["acc-1"] = &models.Account{ID: "acc-1", Email: "asha@example.com"}

	rec := env.do(http.MethodPost, "/login", `{"email":"asha@example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv()
	env.accounts.accounts["acc-1"] = &models.Account{ID: "acc-1", Email: "asha@example.com"}

	body := `{"name":"Asha","email":"asha@example.com","mobile":"9876543210",
		"education_level":"Bachelors","field_of_study":"CS","university":"IIT",
		"graduation_year":2027}`
	rec := env.do(http.MethodPost, "/register", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidatesGraduationYear(t *testing.T) {
	env := newTestEnv()

	body := `{"name":"Asha","email":"a@example.com","mobile":"1","education_level":"B",
		"field_of_study":"CS","university":"IIT","graduation_year":0}`
	rec := env.do(http.MethodPost, "/register", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardRequiresSession(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := env.loginAs("acc-1")
	rec = env.do(http.MethodGet, "/dashboard", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBrowseDefaultsFilterValues(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/internships", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.internships.lastFilter.Page)
	assert.Equal(t, "all", env.internships.lastFilter.CompanyType)
	assert.Equal(t, "all", env.internships.lastFilter.Category)
	assert.Equal(t, "", env.internships.lastFilter.Search)

	rec = env.do(http.MethodGet, "/internships?page=3&company_type=trust&category=Data&search=ml", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, env.internships.lastFilter.Page)
	assert.Equal(t, "trust", env.internships.lastFilter.CompanyType)
	assert.Equal(t, "Data", env.internships.lastFilter.Category)
	assert.Equal(t, "ml", env.internships.lastFilter.Search)
}

func TestInternshipDetailNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/internship/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternshipDetailUsesOptionalSession(t *testing.T) {
	env := newTestEnv()
	env.internships.detail = &models.InternshipDetailResponse{
		Internship: models.Internship{ID: "int-1", Title: "Alpha"},
	}

	rec := env.do(http.MethodGet, "/internship/int-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"already_applied":false`)

	cookie := env.loginAs("acc-1")
	rec = env.do(http.MethodGet, "/internship/int-1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"already_applied":true`)
}

func TestApplyRequiresSession(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodPost, "/apply/int-1", `{"cover_letter":"hi"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApplySubmits(t *testing.T) {
	env := newTestEnv()
	cookie := env.loginAs("acc-1")

	rec := env.do(http.MethodPost, "/apply/int-1", `{"cover_letter":"hi"}`, cookie)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hi", env.applications.lastCoverLetter)

	// Body is optional.
	rec = env.do(http.MethodPost, "/apply/int-1", "", cookie)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "", env.applications.lastCoverLetter)
}

func TestApplyErrorMapping(t *testing.T) {
	env := newTestEnv()
	cookie := env.loginAs("acc-1")

	env.applications.err = service.ErrAlreadyApplied
	rec := env.do(http.MethodPost, "/apply/int-1", "", cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	env.applications.err = service.ErrDeadlinePassed
	rec = env.do(http.MethodPost, "/apply/int-1", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyAadharRejectsBadInput(t *testing.T) {
	env := newTestEnv()
	cookie := env.loginAs("acc-1")

	rec := env.do(http.MethodPost, "/verify_aadhar", `{"aadhar_number":"12345"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/verify_aadhar", `{"aadhar_number":"123456789012"}`, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv()
	cookie := env.loginAs("acc-1")

	rec := env.do(http.MethodGet, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)

	accountID, err := env.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Empty(t, accountID)
}

func TestAPIStats(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalInternships)
}

func TestAPIInternshipsIsPublic(t *testing.T) {
	env := newTestEnv()

	rec := env.do(http.MethodGet, "/api/internships", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
