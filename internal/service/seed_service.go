package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
	"github.com/internsetu/internship-service/internal/repository"
)

const seedDateFormat = "2006-01-02"

type SeedService interface {
	Run(ctx context.Context) (int, error)
}

type seedService struct {
	internshipRepo repository.InternshipRepository
	path           string
	logger         zerolog.Logger
}

func NewSeedService(internshipRepo repository.InternshipRepository, path string, logger zerolog.Logger) SeedService {
	return &seedService{
		internshipRepo: internshipRepo,
		path:           path,
		logger:         logger,
	}
}

// Run inserts a listing for every descriptor whose (title, company) pair is not
// already present. A missing dataset file is treated as empty input.
func (s *seedService) Run(ctx context.Context) (int, error) {
	descriptors, err := s.load()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, descriptor := range descriptors {
		exists, err := s.internshipRepo.ExistsByTitleAndCompany(ctx, descriptor.Title, descriptor.Company)
		if err != nil {
			return inserted, fmt.Errorf("failed to check existing internship: %w", err)
		}
		if exists {
			continue
		}

		internship, err := internshipFromDescriptor(descriptor)
		if err != nil {
			return inserted, err
		}

		if err := s.internshipRepo.Create(ctx, internship); err != nil {
			return inserted, fmt.Errorf("failed to seed internship %q: %w", descriptor.Title, err)
		}
		inserted++
	}

	s.logger.Info().
		Int("descriptors", len(descriptors)).
		Int("inserted", inserted).
		Msg("Seed data loaded")

	return inserted, nil
}

func (s *seedService) load() ([]models.InternshipDescriptor, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", s.path).Msg("Seed file not found, skipping")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var descriptors []models.InternshipDescriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return descriptors, nil
}

func internshipFromDescriptor(descriptor models.InternshipDescriptor) (*models.Internship, error) {
	startDate, err := time.Parse(seedDateFormat, descriptor.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date for %q: %w", descriptor.Title, err)
	}
	endDate, err := time.Parse(seedDateFormat, descriptor.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date for %q: %w", descriptor.Title, err)
	}
	deadline, err := time.Parse(seedDateFormat, descriptor.ApplicationDeadline)
	if err != nil {
		return nil, fmt.Errorf("invalid application_deadline for %q: %w", descriptor.Title, err)
	}

	stipend := descriptor.Stipend
	if stipend == "" {
		stipend = "Unpaid"
	}

	return &models.Internship{
		ID:                  uuid.New().String(),
		Title:               descriptor.Title,
		Company:             descriptor.Company,
		CompanyType:         descriptor.CompanyType,
		Description:         descriptor.Description,
		Requirements:        descriptor.Requirements,
		Duration:            descriptor.Duration,
		Stipend:             stipend,
		Location:            descriptor.Location,
		StartDate:           startDate,
		EndDate:             endDate,
		ApplicationDeadline: deadline,
		Category:            descriptor.Category,
		SkillsRequired:      descriptor.SkillsRequired,
		IsVerified:          true,
		CreatedAt:           time.Now(),
	}, nil
}
