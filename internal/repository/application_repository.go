package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByAccountAndInternship(ctx context.Context, accountID, internshipID string) (*models.Application, error)
	GetRecentByAccount(ctx context.Context, accountID string, limit int) ([]models.ApplicationWithInternship, error)
	CountByAccountAndInternship(ctx context.Context, accountID, internshipID string) (int, error)
}

type applicationRepository struct {
	*PostgresRepository
}

func NewApplicationRepository(db *sql.DB, logger zerolog.Logger) ApplicationRepository {
	return &applicationRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (id, account_id, internship_id, status, cover_letter, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		application.ID,
		application.AccountID,
		application.InternshipID,
		application.Status,
		application.CoverLetter,
		application.AppliedAt,
	)

	return err
}

func (r *applicationRepository) GetByAccountAndInternship(ctx context.Context, accountID, internshipID string) (*models.Application, error) {
	query := `
		SELECT id, account_id, internship_id, status, cover_letter, applied_at
		FROM applications
		WHERE account_id = $1 AND internship_id = $2
	`

	application := &models.Application{}
	err := r.db.QueryRowContext(ctx, query, accountID, internshipID).Scan(
		&application.ID,
		&application.AccountID,
		&application.InternshipID,
		&application.Status,
		&application.CoverLetter,
		&application.AppliedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return application, err
}

func (r *applicationRepository) GetRecentByAccount(ctx context.Context, accountID string, limit int) ([]models.ApplicationWithInternship, error) {
	query := `
		SELECT
			a.id, a.account_id, a.internship_id, a.status, a.cover_letter, a.applied_at,
			i.title as internship_title, i.company as internship_company
		FROM applications a
		JOIN internships i ON a.internship_id = i.id
		WHERE a.account_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []models.ApplicationWithInternship
	for rows.Next() {
		var application models.ApplicationWithInternship
		err := rows.Scan(
			&application.ID,
			&application.AccountID,
			&application.InternshipID,
			&application.Status,
			&application.CoverLetter,
			&application.AppliedAt,
			&application.InternshipTitle,
			&application.InternshipCompany,
		)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	return applications, rows.Err()
}

func (r *applicationRepository) CountByAccountAndInternship(ctx context.Context, accountID, internshipID string) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE account_id = $1 AND internship_id = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, accountID, internshipID).Scan(&count)
	return count, err
}
