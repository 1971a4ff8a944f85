package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Job Errors =====
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrNoUpdateFields   = errors.New("no data")
	ErrInvalidMinSalary = errors.New("minSalary must be 0 or greater")
)
