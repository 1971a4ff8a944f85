package model

// Company owns jobs. It is only referenced through jobs.company_handle.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"num_employees" db:"num_employees"`
	LogoURL      *string `json:"logo_url" db:"logo_url"`
}
