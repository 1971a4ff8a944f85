package service

import (
	"context"
	"errors"

	"github.com/forgo/jobly/internal/database"
	"github.com/forgo/jobly/internal/model"
	"github.com/forgo/jobly/internal/repository"
)

// JobRepository defines the interface for job storage
type JobRepository interface {
	Create(ctx context.Context, job *model.NewJob) (*model.Job, error)
	List(ctx context.Context, filter model.JobFilter) ([]*model.Job, error)
	Get(ctx context.Context, id int) (*model.Job, error)
	Update(ctx context.Context, id int, changes []database.Change) (*model.Job, error)
	Remove(ctx context.Context, id int) error
}

// JobService handles job business logic
type JobService struct {
	jobRepo JobRepository
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo JobRepository
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{
		jobRepo: cfg.JobRepo,
	}
}

// CreateJob stores a new job
func (s *JobService) CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.Job, error) {
	job, err := s.jobRepo.Create(ctx, &model.NewJob{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity.Ptr(),
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return nil, normalizeJobError(err)
	}
	return job, nil
}

// ListJobs returns the jobs matching filter, ordered by title
func (s *JobService) ListJobs(ctx context.Context, filter model.JobFilter) ([]*model.Job, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, normalizeJobError(err)
	}
	return jobs, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id int) (*model.Job, error) {
	job, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, normalizeJobError(err)
	}
	return job, nil
}

// UpdateJob applies the fields present in req to a job
func (s *JobService) UpdateJob(ctx context.Context, id int, req model.UpdateJobRequest) (*model.Job, error) {
	job, err := s.jobRepo.Update(ctx, id, jobChanges(req))
	if err != nil {
		return nil, normalizeJobError(err)
	}
	return job, nil
}

// DeleteJob removes a job
func (s *JobService) DeleteJob(ctx context.Context, id int) error {
	return normalizeJobError(s.jobRepo.Remove(ctx, id))
}

// jobChanges lists the fields set in req in a fixed order:
// title, salary, equity, companyHandle.
func jobChanges(req model.UpdateJobRequest) []database.Change {
	var changes []database.Change
	if req.Title != nil {
		changes = append(changes, database.Change{Field: "title", Value: *req.Title})
	}
	if req.Salary != nil {
		changes = append(changes, database.Change{Field: "salary", Value: *req.Salary})
	}
	if req.Equity != nil {
		changes = append(changes, database.Change{Field: "equity", Value: string(*req.Equity)})
	}
	if req.CompanyHandle != nil {
		changes = append(changes, database.Change{Field: "companyHandle", Value: *req.CompanyHandle})
	}
	return changes
}

func normalizeJobError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return ErrJobNotFound
	case errors.Is(err, database.ErrEmptyUpdate):
		return ErrNoUpdateFields
	case errors.Is(err, repository.ErrInvalidMinSalary):
		return ErrInvalidMinSalary
	default:
		return err
	}
}
