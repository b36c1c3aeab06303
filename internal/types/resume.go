// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Proficiency levels offered by the skills editor. Stored as free text.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyExpert       = "Expert"
)

// PersonalInfo is the singleton contact block at the top of a resume
type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Address  string `json:"address" yaml:"address"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
}

// EducationItem represents one school entry. Dates are free text and never parsed.
type EducationItem struct {
	ID           string `json:"id" yaml:"id"`
	Institution  string `json:"institution" yaml:"institution"`
	Degree       string `json:"degree" yaml:"degree"`
	FieldOfStudy string `json:"fieldOfStudy" yaml:"fieldOfStudy"`
	StartDate    string `json:"startDate" yaml:"startDate"`
	EndDate      string `json:"endDate" yaml:"endDate"`
	Location     string `json:"location" yaml:"location"`
	GPA          string `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ExperienceItem represents one position held at a company
type ExperienceItem struct {
	ID          string `json:"id" yaml:"id"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
}

// SkillItem is a single skill. Category names a SkillCategories entry by value;
// a name that matches no declared category is treated as uncategorized.
type SkillItem struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Proficiency string `json:"proficiency,omitempty" yaml:"proficiency,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

// CourseworkItem is one relevant course
type CourseworkItem struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// ProjectItem is one project with an ordered list of technology tags
type ProjectItem struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	TechStack   []string `json:"techStack" yaml:"techStack"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
}

// CertificationItem is one certification and its issuing provider
type CertificationItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Provider    string `json:"provider" yaml:"provider"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// Snapshot is the read-only input of both renderers
type Snapshot struct {
	Personal        PersonalInfo        `json:"personal" yaml:"personal"`
	Education       []EducationItem     `json:"education" yaml:"education"`
	Experience      []ExperienceItem    `json:"experience" yaml:"experience"`
	Skills          []SkillItem         `json:"skills" yaml:"skills"`
	SkillCategories []string            `json:"skillCategories" yaml:"skillCategories"`
	Coursework      []CourseworkItem    `json:"coursework,omitempty" yaml:"coursework,omitempty"`
	Projects        []ProjectItem       `json:"projects,omitempty" yaml:"projects,omitempty"`
	Certifications  []CertificationItem `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	SectionOrder    SectionOrder        `json:"sectionOrder" yaml:"sectionOrder" validate:"dive,section_type"`
}

// Len returns the number of items held for a section. Personal always counts as one.
func (s *Snapshot) Len(section SectionType) int {
	switch section {
	case SectionPersonal:
		return 1
	case SectionEducation:
		return len(s.Education)
	case SectionExperience:
		return len(s.Experience)
	case SectionSkills:
		return len(s.Skills)
	case SectionCoursework:
		return len(s.Coursework)
	case SectionProjects:
		return len(s.Projects)
	case SectionCertifications:
		return len(s.Certifications)
	default:
		return 0
	}
}

// HasData reports whether any headline field has been filled in.
// The preview shows a placeholder prompt until this is true.
func (s *Snapshot) HasData() bool {
	if filled(s.Personal.Name) {
		return true
	}
	for _, item := range s.Education {
		if filled(item.Institution) {
			return true
		}
	}
	for _, item := range s.Experience {
		if filled(item.Company) {
			return true
		}
	}
	for _, item := range s.Skills {
		if filled(item.Name) {
			return true
		}
	}
	for _, item := range s.Coursework {
		if filled(item.Title) {
			return true
		}
	}
	for _, item := range s.Projects {
		if filled(item.Title) {
			return true
		}
	}
	for _, item := range s.Certifications {
		if filled(item.Title) {
			return true
		}
	}
	return false
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ItemID returns the stable identity of the entry
func (e EducationItem) ItemID() string { return e.ID }

// ItemID returns the stable identity of the entry
func (e ExperienceItem) ItemID() string { return e.ID }

// ItemID returns the stable identity of the entry
func (s SkillItem) ItemID() string { return s.ID }

// ItemID returns the stable identity of the entry
func (c CourseworkItem) ItemID() string { return c.ID }

// ItemID returns the stable identity of the entry
func (p ProjectItem) ItemID() string { return p.ID }

// ItemID returns the stable identity of the entry
func (c CertificationItem) ItemID() string { return c.ID }
