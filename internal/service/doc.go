// Package service implements the business logic layer for the Jobly API.
//
// Services sit between HTTP handlers and repositories. They translate request
// bodies into repository input and normalize storage errors into the service
// sentinels defined in errors.go.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Services define their own repository interfaces so tests can use mocks
//   - Context is passed through for cancellation and request-scoped values
//
// # Error Handling
//
//	var (
//	    ErrJobNotFound      = errors.New("job not found")
//	    ErrNoUpdateFields   = errors.New("no data")
//	    ErrInvalidMinSalary = errors.New("minSalary must be 0 or greater")
//	)
//
// # Example Usage
//
//	svc := NewJobService(JobServiceConfig{JobRepo: repository.NewJobRepository(db)})
//	job, err := svc.GetJob(ctx, 42)
//	if errors.Is(err, ErrJobNotFound) {
//	    // 404
//	}
package service
