package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/internsetu/internship-service/internal/models"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	verified map[string]string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*models.Account),
		verified: make(map[string]string),
	}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) SetAadharVerified(ctx context.Context, id, aadharNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account, ok := r.accounts[id]; ok {
		account.AadharNumber = aadharNumber
		account.AadharVerified = true
		account.IsVerified = true
	}
	r.verified[id] = aadharNumber
	return nil
}

func (r *fakeAccountRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.accounts[id]
	return ok, nil
}

type fakeInternshipRepo struct {
	mu          sync.Mutex
	internships []models.Internship
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{}
}

func (r *fakeInternshipRepo) Create(ctx context.Context, internship *models.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.internships = append(r.internships, *internship)
	return nil
}

func (r *fakeInternshipRepo) GetByID(ctx context.Context, id string) (*models.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, internship := range r.internships {
		if internship.ID == id {
			copied := internship
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInternshipRepo) ExistsByTitleAndCompany(ctx context.Context, title, company string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, internship := range r.internships {
		if internship.Title == title && internship.Company == company {
			return true, nil
		}
	}
	return false, nil
}

func matchesFilter(internship models.Internship, filter models.InternshipFilter) bool {
	if !internship.IsVerified {
		return false
	}
	if filter.CompanyType != "" && filter.CompanyType != "all" && internship.CompanyType != filter.CompanyType {
		return false
	}
	if filter.Category != "" && filter.Category != "all" && !strings.Contains(internship.Category, filter.Category) {
		return false
	}
	if filter.Search != "" &&
		!strings.Contains(internship.Title, filter.Search) &&
		!strings.Contains(internship.Company, filter.Search) &&
		!strings.Contains(internship.Description, filter.Search) {
		return false
	}
	return true
}

func (r *fakeInternshipRepo) Find(ctx context.Context, filter models.InternshipFilter, limit, offset int) ([]models.Internship, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Internship
	for _, internship := range r.internships {
		if matchesFilter(internship, filter) {
			matched = append(matched, internship)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *fakeInternshipRepo) GetVerified(ctx context.Context, limit int) ([]models.Internship, error) {
	internships, _, err := r.Find(ctx, models.InternshipFilter{}, len(r.internships)+1, 0)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(internships) > limit {
		internships = internships[:limit]
	}
	return internships, nil
}

func (r *fakeInternshipRepo) GetByCategoryContains(ctx context.Context, fieldOfStudy string, limit int) ([]models.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Internship
	for _, internship := range r.internships {
		if internship.IsVerified && strings.Contains(internship.Category, fieldOfStudy) {
			matched = append(matched, internship)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}

func (r *fakeInternshipRepo) CountVerifiedByCompanyType(ctx context.Context) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, internship := range r.internships {
		if internship.IsVerified {
			counts[internship.CompanyType]++
		}
	}
	return counts, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications []models.Application
	details      map[string]models.Internship
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{details: make(map[string]models.Internship)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applications = append(r.applications, *application)
	return nil
}

func (r *fakeApplicationRepo) GetByAccountAndInternship(ctx context.Context, accountID, internshipID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, application := range r.applications {
		if application.AccountID == accountID && application.InternshipID == internshipID {
			copied := application
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) GetRecentByAccount(ctx context.Context, accountID string, limit int) ([]models.ApplicationWithInternship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Application
	for _, application := range r.applications {
		if application.AccountID == accountID {
			matched = append(matched, application)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].AppliedAt.After(matched[j].AppliedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	result := make([]models.ApplicationWithInternship, 0, len(matched))
	for _, application := range matched {
		detail := r.details[application.InternshipID]
		result = append(result, models.ApplicationWithInternship{
			Application:       application,
			InternshipTitle:   detail.Title,
			InternshipCompany: detail.Company,
		})
	}
	return result, nil
}

func (r *fakeApplicationRepo) CountByAccountAndInternship(ctx context.Context, accountID, internshipID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, application := range r.applications {
		if application.AccountID == accountID && application.InternshipID == internshipID {
			count++
		}
	}
	return count, nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []*models.ApplicationSubmittedEvent
}

func (p *fakeEventPublisher) PublishApplicationSubmitted(ctx context.Context, event *models.ApplicationSubmittedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeEventPublisher) Close() error {
	return nil
}
