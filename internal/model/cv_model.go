package model

import "strings"

// CandidateRecord is the structured form of a parsed CV. It is created once per
// upload and sent back in full by the client on every answer request.
type CandidateRecord struct {
	Name        string       `json:"name"`
	FirstName   *string      `json:"first_name"`
	LastName    *string      `json:"last_name"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	LinkedInURL *string      `json:"linkedin_url"`
	Website     *string      `json:"website"`
	Country     *string      `json:"country"`
	Summary     string       `json:"summary"`
	Experience  []Experience `json:"experience"`
	Skills      []string     `json:"skills"`
	Projects    []Project    `json:"projects"`
	Education   []string     `json:"education"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     *string  `json:"duration"`
	Achievements []string `json:"achievements"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Normalize replaces nil slices with empty ones so the record always
// marshals lists as [] and never as null.
func (c *CandidateRecord) Normalize() {
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Education == nil {
		c.Education = []string{}
	}
	for i := range c.Experience {
		if c.Experience[i].Achievements == nil {
			c.Experience[i].Achievements = []string{}
		}
	}
	for i := range c.Projects {
		if c.Projects[i].Technologies == nil {
			c.Projects[i].Technologies = []string{}
		}
	}
}

// NameParts returns the first and last name. Explicit values win; otherwise
// they are the first and last whitespace-separated tokens of Name. A
// single-token name has no last name.
func (c *CandidateRecord) NameParts() (first, last string) {
	if Deref(c.FirstName) != "" || Deref(c.LastName) != "" {
		return Deref(c.FirstName), Deref(c.LastName)
	}

	parts := strings.Fields(c.Name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[len(parts)-1]
}

// Deref returns the pointed-to string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
