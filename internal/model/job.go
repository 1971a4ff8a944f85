package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Job is a posting owned by a company
type Job struct {
	ID            int     `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Salary        *int    `json:"salary" db:"salary"`
	Equity        *string `json:"equity" db:"equity"` // decimal text, e.g. "0.05"
	CompanyHandle string  `json:"company_handle" db:"company_handle"`
}

// NewJob holds the columns of a job insert
type NewJob struct {
	Title         string
	Salary        *int
	Equity        *string
	CompanyHandle string
}

// JobFilter narrows a job listing. Nil fields add no constraint.
type JobFilter struct {
	MinSalary *int
	Title     *string
	HasEquity bool
}

// Business constraints
const (
	MaxCompanyHandleLength = 25
	MinEquity              = 0.0
	MaxEquity              = 1.0
)

// Equity is a decimal fraction carried as text so no precision is lost on
// its way to a NUMERIC column. It decodes from a JSON number or string.
type Equity string

var errEquityType = errors.New("equity must be a number or a numeric string")

// UnmarshalJSON accepts 0.5 as well as "0.5"
func (e *Equity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = Equity(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errEquityType
	}
	*e = Equity(n.String())
	return nil
}

// Valid reports whether the value is a decimal in [0, 1]
func (e Equity) Valid() bool {
	f, err := strconv.ParseFloat(string(e), 64)
	if err != nil {
		return false
	}
	return f >= MinEquity && f <= MaxEquity
}

// Ptr returns the value as a string pointer, nil when e is nil
func (e *Equity) Ptr() *string {
	if e == nil {
		return nil
	}
	s := string(*e)
	return &s
}

// CreateJobRequest represents the body of POST /jobs
type CreateJobRequest struct {
	Title         string  `json:"title" validate:"required,min=1"`
	Salary        *int    `json:"salary" validate:"omitempty,min=0"`
	Equity        *Equity `json:"equity" validate:"omitempty,equity"`
	CompanyHandle string  `json:"company_handle" validate:"required,min=1,max=25"`
}

// UpdateJobRequest represents the body of PATCH /jobs/{id}.
// Absent and null fields are left unchanged.
type UpdateJobRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Salary        *int    `json:"salary" validate:"omitempty,min=0"`
	Equity        *Equity `json:"equity" validate:"omitempty,equity"`
	CompanyHandle *string `json:"company_handle" validate:"omitempty,min=1,max=25"`
}

// IsEmpty reports whether the request carries no field at all
func (r *UpdateJobRequest) IsEmpty() bool {
	return r.Title == nil && r.Salary == nil && r.Equity == nil && r.CompanyHandle == nil
}
