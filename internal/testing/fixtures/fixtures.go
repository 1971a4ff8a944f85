// Package fixtures provides test data factories for integration testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	company := f.CreateCompany(t)
//	job := f.CreateJob(t, company, fixtures.WithSalary(100))
package fixtures

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/jobly/internal/database"
	"github.com/forgo/jobly/internal/model"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a short random lowercase id
func randomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Company Fixtures
// ============================================================================

// CompanyOpts customizes company creation
type CompanyOpts struct {
	Handle       string
	Name         string
	Description  string
	NumEmployees *int
	LogoURL      *string
}

// WithHandle sets the company handle
func WithHandle(handle string) func(*CompanyOpts) {
	return func(o *CompanyOpts) {
		o.Handle = handle
	}
}

// CreateCompany creates a company with optional customizations
func (f *Factory) CreateCompany(t *testing.T, opts ...func(*CompanyOpts)) *model.Company {
	t.Helper()

	id := randomID()
	o := &CompanyOpts{
		Handle:      "c" + id,
		Name:        "Company " + id,
		Description: "Desc " + id,
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING handle, name, description, num_employees, logo_url`

	company, err := database.CollectOne[model.Company](f.db.Query(ctx(t), query,
		o.Handle, o.Name, o.Description, o.NumEmployees, o.LogoURL))
	if err != nil {
		t.Fatalf("fixtures: failed to create company %s: %v", o.Handle, err)
	}
	return company
}

// CreateCompanies inserts bare companies for each handle in one transaction.
func (f *Factory) CreateCompanies(t *testing.T, handles ...string) {
	t.Helper()

	batch := database.NewAtomicBatch()
	for _, h := range handles {
		batch.Add(`INSERT INTO companies (handle, name, description) VALUES ($1, $2, $3)`,
			h, strings.ToUpper(h), "Desc "+h)
	}
	if err := batch.Execute(ctx(t), f.db); err != nil {
		t.Fatalf("fixtures: failed to create companies %v: %v", handles, err)
	}
}

// ============================================================================
// Job Fixtures
// ============================================================================

// JobOpts customizes job creation
type JobOpts struct {
	Title  string
	Salary *int
	Equity *string
}

// WithTitle sets the job title
func WithTitle(title string) func(*JobOpts) {
	return func(o *JobOpts) {
		o.Title = title
	}
}

// WithSalary sets the job salary
func WithSalary(salary int) func(*JobOpts) {
	return func(o *JobOpts) {
		o.Salary = &salary
	}
}

// WithEquity sets the job equity as decimal text, e.g. "0.1"
func WithEquity(equity string) func(*JobOpts) {
	return func(o *JobOpts) {
		o.Equity = &equity
	}
}

// CreateJob creates a job owned by company
func (f *Factory) CreateJob(t *testing.T, company *model.Company, opts ...func(*JobOpts)) *model.Job {
	t.Helper()

	o := &JobOpts{
		Title: fmt.Sprintf("job_%s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity::text AS equity, company_handle`

	job, err := database.CollectOne[model.Job](f.db.Query(ctx(t), query,
		o.Title, o.Salary, o.Equity, company.Handle))
	if err != nil {
		t.Fatalf("fixtures: failed to create job: %v", err)
	}
	return job
}

// SeedJobs loads the reference data set used across the test suites:
// companies c1..c3 and jobs j1 (salary 1, equity 0.1), j2 (salary 2,
// equity 0.2), j3 (salary 3, no equity) and j4 (no salary or equity),
// all owned by c1.
func (f *Factory) SeedJobs(t *testing.T) []*model.Job {
	t.Helper()

	f.CreateCompanies(t, "c1", "c2", "c3")
	c1 := &model.Company{Handle: "c1"}

	return []*model.Job{
		f.CreateJob(t, c1, WithTitle("j1"), WithSalary(1), WithEquity("0.1")),
		f.CreateJob(t, c1, WithTitle("j2"), WithSalary(2), WithEquity("0.2")),
		f.CreateJob(t, c1, WithTitle("j3"), WithSalary(3)),
		f.CreateJob(t, c1, WithTitle("j4")),
	}
}
