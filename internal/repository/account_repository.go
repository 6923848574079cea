package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	SetAadharVerified(ctx context.Context, id, aadharNumber string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type accountRepository struct {
	*PostgresRepository
}

func NewAccountRepository(db *sql.DB, logger zerolog.Logger) AccountRepository {
	return &accountRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const accountColumns = `
	id, name, email, mobile, education_level, field_of_study, university,
	graduation_year, skills, resume_url, COALESCE(aadhar_number, ''),
	aadhar_verified, is_verified, created_at, updated_at
`

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (
			id, name, email, mobile, education_level, field_of_study, university,
			graduation_year, skills, resume_url, aadhar_verified, is_verified,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.Email,
		account.Mobile,
		account.EducationLevel,
		account.FieldOfStudy,
		account.University,
		account.GraduationYear,
		account.Skills,
		account.ResumeURL,
		account.AadharVerified,
		account.IsVerified,
		account.CreatedAt,
		account.UpdatedAt,
	)

	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Mobile,
		&account.EducationLevel,
		&account.FieldOfStudy,
		&account.University,
		&account.GraduationYear,
		&account.Skills,
		&account.ResumeURL,
		&account.AadharNumber,
		&account.AadharVerified,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return account, err
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Mobile,
		&account.EducationLevel,
		&account.FieldOfStudy,
		&account.University,
		&account.GraduationYear,
		&account.Skills,
		&account.ResumeURL,
		&account.AadharNumber,
		&account.AadharVerified,
		&account.IsVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return account, err
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, mobile = $2, education_level = $3, field_of_study = $4,
		    university = $5, graduation_year = $6, skills = $7, updated_at = $8
		WHERE id = $9
	`

	_, err := r.db.ExecContext(ctx, query,
		account.Name,
		account.Mobile,
		account.EducationLevel,
		account.FieldOfStudy,
		account.University,
		account.GraduationYear,
		account.Skills,
		time.Now(),
		account.ID,
	)

	return err
}

func (r *accountRepository) SetAadharVerified(ctx context.Context, id, aadharNumber string) error {
	query := `
		UPDATE accounts
		SET aadhar_number = $1, aadhar_verified = TRUE, is_verified = TRUE, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, aadharNumber, time.Now(), id)
	return err
}

func (r *accountRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}
