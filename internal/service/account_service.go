package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
	"github.com/internsetu/internship-service/internal/repository"
)

var aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)

type AccountService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Account, error)
	VerifyAadhar(ctx context.Context, id, aadharNumber string) error
}

type accountService struct {
	accountRepo repository.AccountRepository
	logger      zerolog.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, logger zerolog.Logger) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *accountService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	existing, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	now := time.Now()
	account := &models.Account{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		Mobile:         req.Mobile,
		EducationLevel: req.EducationLevel,
		FieldOfStudy:   req.FieldOfStudy,
		University:     req.University,
		GraduationYear: req.GraduationYear,
		Skills:         req.Skills,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if repository.IsUniqueViolation(err, "accounts_email_key") {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info().
		Str("account_id", account.ID).
		Str("email", account.Email).
		Msg("Account registered")

	return account, nil
}

func (s *accountService) Login(ctx context.Context, email string) (*models.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, id string, req *models.UpdateProfileRequest) (*models.Account, error) {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Name = req.Name
	account.Mobile = req.Mobile
	account.EducationLevel = req.EducationLevel
	account.FieldOfStudy = req.FieldOfStudy
	account.University = req.University
	account.GraduationYear = req.GraduationYear
	account.Skills = req.Skills

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info().Str("account_id", id).Msg("Profile updated")

	return account, nil
}

// VerifyAadhar marks the account verified when the supplied number is exactly
// twelve decimal digits. No external authority is consulted.
func (s *accountService) VerifyAadhar(ctx context.Context, id, aadharNumber string) error {
	if !aadharPattern.MatchString(aadharNumber) {
		return ErrInvalidAadhar
	}

	exists, err := s.accountRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return ErrAccountNotFound
	}

	if err := s.accountRepo.SetAadharVerified(ctx, id, aadharNumber); err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	s.logger.Info().Str("account_id", id).Msg("Aadhar verified")

	return nil
}
