package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/forgo/jobly/internal/database"
	"github.com/forgo/jobly/internal/model"
)

// ErrInvalidMinSalary is returned by List for a negative minimum salary
var ErrInvalidMinSalary = errors.New("salary must be above 0")

// jobColumns is the projection shared by every job query. Equity is cast to
// text so it comes back in its decimal representation.
const jobColumns = `id, title, salary, equity::text AS equity, company_handle`

// jobColumnNames translates field names used by callers to column names
var jobColumnNames = map[string]string{
	"companyHandle": "company_handle",
}

// JobRepository handles job data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a job and returns the stored record.
// An unknown company handle surfaces as database.ErrQuery.
func (r *JobRepository) Create(ctx context.Context, job *model.NewJob) (*model.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	return database.CollectOne[model.Job](r.db.Query(ctx, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle))
}

// List returns the jobs matching filter ordered by title
func (r *JobRepository) List(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, err
	}
	return database.CollectAll[model.Job](r.db.Query(ctx, query, args...))
}

// Get retrieves a job by ID
func (r *JobRepository) Get(ctx context.Context, id int) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return database.CollectOne[model.Job](r.db.Query(ctx, query, id))
}

// Update applies changes to a job and returns the updated record.
// Field names may be given in camelCase; see jobColumnNames.
func (r *JobRepository) Update(ctx context.Context, id int, changes []database.Change) (*model.Job, error) {
	pu, err := database.SQLForPartialUpdate(changes, jobColumnNames)
	if err != nil {
		return nil, err
	}

	query := `UPDATE jobs SET ` + pu.SetClause() +
		` WHERE id = ` + pu.NextPlaceholder() +
		` RETURNING ` + jobColumns

	args := append(pu.Values, id)
	return database.CollectOne[model.Job](r.db.Query(ctx, query, args...))
}

// Remove deletes a job
func (r *JobRepository) Remove(ctx context.Context, id int) error {
	var deleted int
	return r.db.QueryRow(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
}

// buildListQuery renders the listing statement for filter. Predicates are
// added in a fixed order: salary, title, equity.
func buildListQuery(filter model.JobFilter) (string, []any, error) {
	if filter.MinSalary != nil && *filter.MinSalary < 0 {
		return "", nil, ErrInvalidMinSalary
	}

	var (
		where []string
		args  []any
	)
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		where = append(where, "salary >= $"+strconv.Itoa(len(args)))
	}
	if filter.Title != nil {
		args = append(args, "%"+*filter.Title+"%")
		where = append(where, "title ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.HasEquity {
		where = append(where, "equity > 0")
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + jobColumns + ` FROM jobs`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY title")

	return sb.String(), args, nil
}
