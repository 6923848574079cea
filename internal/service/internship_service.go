package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
	"github.com/internsetu/internship-service/internal/repository"
)

const (
	// PerPage is the fixed browse page size.
	PerPage = 12
	// FeaturedLimit caps the homepage listing block.
	FeaturedLimit = 6
	// RecommendedLimit caps dashboard recommendations.
	RecommendedLimit = 6
)

type InternshipService interface {
	Browse(ctx context.Context, filter models.InternshipFilter) (*models.InternshipsResponse, error)
	GetFeatured(ctx context.Context) ([]models.Internship, error)
	GetDetail(ctx context.Context, id, accountID string) (*models.InternshipDetailResponse, error)
	Recommend(ctx context.Context, account *models.Account) ([]models.Internship, error)
	ListVerified(ctx context.Context) ([]models.InternshipAPI, error)
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type internshipService struct {
	internshipRepo  repository.InternshipRepository
	applicationRepo repository.ApplicationRepository
	logger          zerolog.Logger
}

func NewInternshipService(
	internshipRepo repository.InternshipRepository,
	applicationRepo repository.ApplicationRepository,
	logger zerolog.Logger,
) InternshipService {
	return &internshipService{
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func (s *internshipService) Browse(ctx context.Context, filter models.InternshipFilter) (*models.InternshipsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}

	offset := (filter.Page - 1) * PerPage

	internships, total, err := s.internshipRepo.Find(ctx, filter, PerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to browse internships: %w", err)
	}

	pages := (total + PerPage - 1) / PerPage

	// A page past the end is an empty result, not an error.
	if internships == nil {
		internships = []models.Internship{}
	}

	return &models.InternshipsResponse{
		Internships: internships,
		Total:       total,
		Page:        filter.Page,
		PerPage:     PerPage,
		Pages:       pages,
	}, nil
}

func (s *internshipService) GetFeatured(ctx context.Context) ([]models.Internship, error) {
	internships, err := s.internshipRepo.GetVerified(ctx, FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured internships: %w", err)
	}

	return internships, nil
}

func (s *internshipService) GetDetail(ctx context.Context, id, accountID string) (*models.InternshipDetailResponse, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get internship: %w", err)
	}
	if internship == nil {
		return nil, ErrInternshipNotFound
	}

	alreadyApplied := false
	if accountID != "" {
		application, err := s.applicationRepo.GetByAccountAndInternship(ctx, accountID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing application: %w", err)
		}
		alreadyApplied = application != nil
	}

	return &models.InternshipDetailResponse{
		Internship:     *internship,
		AlreadyApplied: alreadyApplied,
		DeadlinePassed: dateOnly(time.Now()).After(dateOnly(internship.ApplicationDeadline)),
	}, nil
}

// Recommend returns verified internships whose category contains the account's
// field of study. Plain substring match, no ranking.
func (s *internshipService) Recommend(ctx context.Context, account *models.Account) ([]models.Internship, error) {
	internships, err := s.internshipRepo.GetByCategoryContains(ctx, account.FieldOfStudy, RecommendedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations: %w", err)
	}

	return internships, nil
}

func (s *internshipService) ListVerified(ctx context.Context) ([]models.InternshipAPI, error) {
	internships, err := s.internshipRepo.GetVerified(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	result := make([]models.InternshipAPI, 0, len(internships))
	for _, internship := range internships {
		result = append(result, models.InternshipAPI{
			ID:                  internship.ID,
			Title:               internship.Title,
			Company:             internship.Company,
			CompanyType:         internship.CompanyType,
			Location:            internship.Location,
			Duration:            internship.Duration,
			Stipend:             internship.Stipend,
			StartDate:           internship.StartDate.Format("2006-01-02"),
			EndDate:             internship.EndDate.Format("2006-01-02"),
			ApplicationDeadline: internship.ApplicationDeadline.Format("2006-01-02"),
			Category:            internship.Category,
		})
	}

	return result, nil
}

func (s *internshipService) Stats(ctx context.Context) (*models.StatsResponse, error) {
	counts, err := s.internshipRepo.CountVerifiedByCompanyType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count internships: %w", err)
	}

	stats := &models.StatsResponse{
		TrustInternships:      counts[models.CompanyTypeTrust.String()],
		GovernmentInternships: counts[models.CompanyTypeGovernment.String()],
		PrivateInternships:    counts[models.CompanyTypePrivate.String()],
	}
	for _, count := range counts {
		stats.TotalInternships += count
	}

	return stats, nil
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
