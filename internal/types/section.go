package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SectionType tags one resume section
type SectionType string

// Section tags, in the order the builder lists them by default
const (
	SectionPersonal       SectionType = "personal"
	SectionEducation      SectionType = "education"
	SectionExperience     SectionType = "experience"
	SectionCoursework     SectionType = "coursework"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionSkills         SectionType = "skills"
)

// AllSections lists every known section tag in default order
var AllSections = []SectionType{
	SectionPersonal,
	SectionEducation,
	SectionExperience,
	SectionCoursework,
	SectionProjects,
	SectionCertifications,
	SectionSkills,
}

var sectionTitles = map[SectionType]string{
	SectionPersonal:       "Personal Information",
	SectionEducation:      "Education",
	SectionExperience:     "Experience",
	SectionCoursework:     "Relevant Coursework",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionSkills:         "Skills",
}

// Valid reports whether t is a known section tag
func (t SectionType) Valid() bool {
	_, ok := sectionTitles[t]
	return ok
}

// Title returns the display heading of the section
func (t SectionType) Title() string {
	return sectionTitles[t]
}

// ParseSectionType converts a wire string into a SectionType
func ParseSectionType(s string) (SectionType, error) {
	t := SectionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown section type: %q", s)
	}
	return t, nil
}

// SectionOrder is the user-chosen arrangement of sections. It is authoritative:
// a section missing from the order is never rendered.
type SectionOrder []SectionType

// Contains reports whether t appears in the order
func (o SectionOrder) Contains(t SectionType) bool {
	for _, s := range o {
		if s == t {
			return true
		}
	}
	return false
}

// SectionMeta is orchestrator metadata for one section of the editing form
type SectionMeta struct {
	ID        string      `json:"id" yaml:"id"`
	Type      SectionType `json:"type" yaml:"type" validate:"section_type"`
	Title     string      `json:"title" yaml:"title"`
	Collapsed bool        `json:"isCollapsed" yaml:"isCollapsed"`
}

// NewValidator returns a validator that knows the section_type tag
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("section_type", func(fl validator.FieldLevel) bool {
		return SectionType(fl.Field().String()).Valid()
	})
	return validate
}

// snapshotValidator caches struct metadata across calls; *validator.Validate
// is safe for concurrent use.
var snapshotValidator = NewValidator()

// Validate checks that every section order entry is a known tag.
// Item fields are free text and are not validated.
func (s *Snapshot) Validate() error {
	return snapshotValidator.Struct(s)
}
