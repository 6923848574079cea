package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/internsetu/internship-service/internal/models"
)

type InternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) error
	GetByID(ctx context.Context, id string) (*models.Internship, error)
	ExistsByTitleAndCompany(ctx context.Context, title, company string) (bool, error)
	Find(ctx context.Context, filter models.InternshipFilter, limit, offset int) ([]models.Internship, int, error)
	GetVerified(ctx context.Context, limit int) ([]models.Internship, error)
	GetByCategoryContains(ctx context.Context, fieldOfStudy string, limit int) ([]models.Internship, error)
	CountVerifiedByCompanyType(ctx context.Context) (map[string]int, error)
}

type internshipRepository struct {
	*PostgresRepository
}

func NewInternshipRepository(db *sql.DB, logger zerolog.Logger) InternshipRepository {
	return &internshipRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const internshipColumns = `
	id, title, company, company_type, description, requirements, duration,
	stipend, location, start_date, end_date, application_deadline, category,
	skills_required, is_verified, created_at
`

func (r *internshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	query := `
		INSERT INTO internships (
			id, title, company, company_type, description, requirements, duration,
			stipend, location, start_date, end_date, application_deadline, category,
			skills_required, is_verified, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.ExecContext(ctx, query,
		internship.ID,
		internship.Title,
		internship.Company,
		internship.CompanyType,
		internship.Description,
		internship.Requirements,
		internship.Duration,
		internship.Stipend,
		internship.Location,
		internship.StartDate,
		internship.EndDate,
		internship.ApplicationDeadline,
		internship.Category,
		internship.SkillsRequired,
		internship.IsVerified,
		internship.CreatedAt,
	)

	return err
}

func (r *internshipRepository) GetByID(ctx context.Context, id string) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`

	internship := &models.Internship{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&internship.ID,
		&internship.Title,
		&internship.Company,
		&internship.CompanyType,
		&internship.Description,
		&internship.Requirements,
		&internship.Duration,
		&internship.Stipend,
		&internship.Location,
		&internship.StartDate,
		&internship.EndDate,
		&internship.ApplicationDeadline,
		&internship.Category,
		&internship.SkillsRequired,
		&internship.IsVerified,
		&internship.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return internship, err
}

func (r *internshipRepository) ExistsByTitleAndCompany(ctx context.Context, title, company string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM internships WHERE title = $1 AND company = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, title, company).Scan(&exists)
	return exists, err
}

// buildFilterWhere translates an InternshipFilter into a WHERE clause. Listings are
// always restricted to verified ones; company_type is an equality match, category and
// search are case-sensitive substring matches.
func buildFilterWhere(filter models.InternshipFilter) (string, []interface{}) {
	conditions := []string{"is_verified = TRUE"}
	args := []interface{}{}

	if filter.CompanyType != "" && filter.CompanyType != "all" {
		args = append(args, filter.CompanyType)
		conditions = append(conditions, fmt.Sprintf("company_type = $%d", len(args)))
	}

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category LIKE '%%' || $%d || '%%'", len(args)))
	}

	if filter.Search != "" {
		args = append(args, filter.Search)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title LIKE '%%' || $%d || '%%' OR company LIKE '%%' || $%d || '%%' OR description LIKE '%%' || $%d || '%%')",
			n, n, n,
		))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *internshipRepository) Find(ctx context.Context, filter models.InternshipFilter, limit, offset int) ([]models.Internship, int, error) {
	where, args := buildFilterWhere(filter)

	countQuery := `SELECT COUNT(*) FROM internships ` + where
	var total int
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM internships %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		internshipColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	internships, err := scanInternships(rows)
	if err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

func (r *internshipRepository) GetVerified(ctx context.Context, limit int) ([]models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `
		FROM internships
		WHERE is_verified = TRUE
		ORDER BY created_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInternships(rows)
}

func (r *internshipRepository) GetByCategoryContains(ctx context.Context, fieldOfStudy string, limit int) ([]models.Internship, error) {
	query := `
		SELECT ` + internshipColumns + `
		FROM internships
		WHERE is_verified = TRUE AND category LIKE '%' || $1 || '%'
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, fieldOfStudy, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInternships(rows)
}

func (r *internshipRepository) CountVerifiedByCompanyType(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT company_type, COUNT(*)
		FROM internships
		WHERE is_verified = TRUE
		GROUP BY company_type
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var companyType string
		var count int
		if err := rows.Scan(&companyType, &count); err != nil {
			return nil, err
		}
		counts[companyType] = count
	}

	return counts, rows.Err()
}

func scanInternships(rows *sql.Rows) ([]models.Internship, error) {
	var internships []models.Internship
	for rows.Next() {
		var internship models.Internship
		err := rows.Scan(
			&internship.ID,
			&internship.Title,
			&internship.Company,
			&internship.CompanyType,
			&internship.Description,
			&internship.Requirements,
			&internship.Duration,
			&internship.Stipend,
			&internship.Location,
			&internship.StartDate,
			&internship.EndDate,
			&internship.ApplicationDeadline,
			&internship.Category,
			&internship.SkillsRequired,
			&internship.IsVerified,
			&internship.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		internships = append(internships, internship)
	}

	return internships, rows.Err()
}
