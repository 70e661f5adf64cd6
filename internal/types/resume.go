// Package types defines shared data structures used across the resume writer pipeline.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeData is the structured input for one document generation request.
// Section records arrive as nested JSON matching the embedded resume schema.
type ResumeData struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	Summary        string          `json:"summary,omitempty"`
	Skills         string          `json:"skills,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Publications   []string        `json:"publications,omitempty"`
}

// Experience is one employment entry with optional nested projects.
type Experience struct {
	Company  string    `json:"company"`
	Role     string    `json:"role"`
	Dates    string    `json:"dates,omitempty"`
	Location string    `json:"location,omitempty"`
	Projects []Project `json:"projects,omitempty"`
}

// Project is a standalone or nested project entry.
type Project struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies,omitempty"`
	Dates        string `json:"dates,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Education is one education entry.
type Education struct {
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Dates    string `json:"dates,omitempty"`
	Location string `json:"location,omitempty"`
	GPA      string `json:"gpa,omitempty"`
}

// Certification is one certification entry with an optional expiration.
type Certification struct {
	Name    string `json:"name"`
	Issued  string `json:"issued,omitempty"`
	Expires string `json:"expires,omitempty"`
}

// HasIdentity reports whether the entry carries the fields that identify it.
// Entries without identity are omitted from output rather than rendered as
// partial headings.
func (e Experience) HasIdentity() bool {
	return strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Role) != ""
}

// HasIdentity reports whether the project has a name.
func (p Project) HasIdentity() bool {
	return strings.TrimSpace(p.Name) != ""
}

// HasIdentity reports whether the entry names both school and degree.
func (e Education) HasIdentity() bool {
	return strings.TrimSpace(e.School) != "" && strings.TrimSpace(e.Degree) != ""
}

// HasIdentity reports whether the certification has a name.
func (c Certification) HasIdentity() bool {
	return strings.TrimSpace(c.Name) != ""
}

var validate = validator.New()

// Validate checks that the top-level required fields are present.
func (d *ResumeData) Validate() error {
	return validate.Struct(d)
}
