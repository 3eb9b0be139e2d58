package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hirehub/internal/database"
	"hirehub/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobSearchFilter holds the structured query built from the search
// endpoint's raw filters. All fields are optional and conjunctive except
// Search, which matches disjunctively across title, description, skills
// and employer name. Experience carries the already-resolved set of raw
// stored values for the requested bucket.
type JobSearchFilter struct {
	Title      string
	Location   string
	Type       string
	Skills     []string
	Experience []string
	Search     string
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Search(ctx context.Context, f JobSearchFilter, limit, offset int) ([]job.Job, error)
	Count(ctx context.Context, f JobSearchFilter) (int, error)
	ListRecent(ctx context.Context, limit int) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, description, location, requirements, skills, salary, type, experience, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.EmployerID, j.Title, j.Description, j.Location, j.Requirements,
		j.Skills, j.Salary, j.Type, j.Experience, j.Status,
	)
	return err
}

const jobSelectColumns = `j.id, j.employer_id, j.title, j.description, j.location, j.requirements,
	j.skills, j.salary, j.type, j.experience, j.status, j.created_at, j.updated_at,
	u.name, u.email`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobSelectColumns+`
		 FROM jobs j JOIN users u ON u.id = j.employer_id
		 WHERE j.id = $1`,
		id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Search(ctx context.Context, f JobSearchFilter, limit, offset int) ([]job.Job, error) {
	where, args := buildJobSearchWhere(f)

	query := `SELECT ` + jobSelectColumns + `
		 FROM jobs j JOIN users u ON u.id = j.employer_id
		 WHERE ` + where + `
		 ORDER BY j.created_at DESC
		 LIMIT ` + placeholder(&args, limit) + ` OFFSET ` + placeholder(&args, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) Count(ctx context.Context, f JobSearchFilter) (int, error) {
	where, args := buildJobSearchWhere(f)

	var total int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs j JOIN users u ON u.id = j.employer_id WHERE `+where,
		args...,
	)
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresJobRepository) ListRecent(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobSelectColumns+`
		 FROM jobs j JOIN users u ON u.id = j.employer_id
		 WHERE j.status = 'active'
		 ORDER BY j.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

// buildJobSearchWhere translates the filter into a conjunctive WHERE
// clause over active postings. The free-text search term expands to a
// single disjunctive group.
func buildJobSearchWhere(f JobSearchFilter) (string, []any) {
	conds := []string{`j.status = 'active'`}
	args := make([]any, 0, 8)

	if t := strings.TrimSpace(f.Title); t != "" {
		conds = append(conds, `j.title ILIKE `+placeholder(&args, likePattern(t)))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		conds = append(conds, `j.location ILIKE `+placeholder(&args, likePattern(l)))
	}
	if ty := strings.TrimSpace(f.Type); ty != "" {
		conds = append(conds, `j.type = `+placeholder(&args, ty))
	}
	if len(f.Skills) > 0 {
		conds = append(conds, `j.skills && `+placeholder(&args, f.Skills))
	}
	if len(f.Experience) > 0 {
		conds = append(conds, `j.experience = ANY(`+placeholder(&args, f.Experience)+`)`)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := placeholder(&args, likePattern(s))
		conds = append(conds, `(j.title ILIKE `+p+
			` OR j.description ILIKE `+p+
			` OR u.name ILIKE `+p+
			` OR EXISTS (SELECT 1 FROM unnest(j.skills) AS sk WHERE sk ILIKE `+p+`))`)
	}

	return strings.Join(conds, " AND "), args
}

func placeholder(args *[]any, v any) string {
	*args = append(*args, v)
	return fmt.Sprintf("$%d", len(*args))
}

func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.Requirements,
		&j.Skills, &j.Salary, &j.Type, &j.Experience, &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&j.EmployerName, &j.EmployerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}
