// Package model defines domain entities and data structures for the Jobly API.
//
// The model package contains the job and company records, the request bodies
// accepted by the HTTP layer, and error definitions. Models are used across
// all layers of the application.
//
// # Domain Entities
//
//   - Job: A posting with title, optional salary and equity, owned by a company
//   - Company: The owner of jobs, referenced by its handle
//
// # Serialization
//
// Records carry both json tags for the API and db tags for row scanning:
//
//	type Job struct {
//	    ID            int     `json:"id" db:"id"`
//	    Equity        *string `json:"equity" db:"equity"`
//	    CompanyHandle string  `json:"company_handle" db:"company_handle"`
//	}
//
// Equity is kept as decimal text end to end. Requests may send it as a JSON
// number or a string.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
