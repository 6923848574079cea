package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
	"github.com/internsetu/internship-service/internal/repository"
	"github.com/internsetu/internship-service/internal/service/integration"
)

// RecentApplicationsLimit caps the dashboard application list.
const RecentApplicationsLimit = 5

type ApplicationService interface {
	Apply(ctx context.Context, accountID, internshipID, coverLetter string) (*models.ApplyResponse, error)
	GetRecent(ctx context.Context, accountID string) ([]models.ApplicationWithInternship, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	internshipRepo  repository.InternshipRepository
	accountRepo     repository.AccountRepository
	events          integration.EventPublisher
	logger          zerolog.Logger
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	internshipRepo repository.InternshipRepository,
	accountRepo repository.AccountRepository,
	events integration.EventPublisher,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		accountRepo:     accountRepo,
		events:          events,
		logger:          logger,
	}
}

// Apply admits at most one application per (account, internship) pair and rejects
// submissions past the listing deadline. The duplicate check is backed by a unique
// constraint in the store, so a concurrent double submit still surfaces as
// ErrAlreadyApplied.
func (s *applicationService) Apply(ctx context.Context, accountID, internshipID, coverLetter string) (*models.ApplyResponse, error) {
	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return nil, ErrAccountNotFound
	}

	internship, err := s.internshipRepo.GetByID(ctx, internshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to get internship: %w", err)
	}
	if internship == nil {
		return nil, ErrInternshipNotFound
	}

	existing, err := s.applicationRepo.GetByAccountAndInternship(ctx, accountID, internshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	if dateOnly(time.Now()).After(dateOnly(internship.ApplicationDeadline)) {
		return nil, ErrDeadlinePassed
	}

	application := &models.Application{
		ID:           uuid.New().String(),
		AccountID:    accountID,
		InternshipID: internshipID,
		Status:       models.ApplicationStatusPending.String(),
		CoverLetter:  coverLetter,
		AppliedAt:    time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if repository.IsUniqueViolation(err, "applications_account_internship_key") {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.logger.Info().
		Str("application_id", application.ID).
		Str("account_id", accountID).
		Str("internship_id", internshipID).
		Msg("Application submitted")

	if s.events != nil {
		event := &models.ApplicationSubmittedEvent{
			ApplicationID: application.ID,
			AccountID:     accountID,
			InternshipID:  internshipID,
			Timestamp:     application.AppliedAt.Unix(),
		}
		if err := s.events.PublishApplicationSubmitted(ctx, event); err != nil {
			s.logger.Error().Err(err).Msg("Failed to publish application submitted event")
		}
	}

	return &models.ApplyResponse{
		ID:        application.ID,
		Status:    application.Status,
		AppliedAt: application.AppliedAt,
	}, nil
}

func (s *applicationService) GetRecent(ctx context.Context, accountID string) ([]models.ApplicationWithInternship, error) {
	applications, err := s.applicationRepo.GetRecentByAccount(ctx, accountID, RecentApplicationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent applications: %w", err)
	}

	return applications, nil
}
