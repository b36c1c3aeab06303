package types

import "slices"

// DefaultSkillCategories are the categories a new session starts with
var DefaultSkillCategories = []string{"Technical", "Soft Skills", "Languages", "Tools"}

// Resume is the full editing state of one session: the section data plus the
// form metadata (order, collapse flags) that only the orchestrator cares about.
type Resume struct {
	Personal        PersonalInfo        `json:"personal" yaml:"personal"`
	Education       []EducationItem     `json:"education" yaml:"education"`
	Experience      []ExperienceItem    `json:"experience" yaml:"experience"`
	Skills          []SkillItem         `json:"skills" yaml:"skills"`
	SkillCategories []string            `json:"skillCategories" yaml:"skillCategories"`
	Coursework      []CourseworkItem    `json:"coursework" yaml:"coursework"`
	Projects        []ProjectItem       `json:"projects" yaml:"projects"`
	Certifications  []CertificationItem `json:"certifications" yaml:"certifications"`
	Sections        []SectionMeta       `json:"sections" yaml:"sections"`
}

// NewResume returns the state a fresh editing session starts from: one blank
// entry per list section so every form has something to type into.
func NewResume() Resume {
	sections := make([]SectionMeta, 0, len(AllSections))
	for _, t := range AllSections {
		id := string(t)
		if t == SectionPersonal {
			id = "personal-info"
		}
		sections = append(sections, SectionMeta{ID: id, Type: t, Title: t.Title()})
	}

	return Resume{
		Education:       []EducationItem{{ID: "edu-1"}},
		Experience:      []ExperienceItem{{ID: "exp-1"}},
		Skills:          []SkillItem{{ID: "skill-1", Category: DefaultSkillCategories[0]}},
		SkillCategories: slices.Clone(DefaultSkillCategories),
		Coursework:      []CourseworkItem{{ID: "course-1"}},
		Projects:        []ProjectItem{{ID: "project-1", TechStack: []string{}}},
		Certifications:  []CertificationItem{{ID: "cert-1"}},
		Sections:        sections,
	}
}

// Order derives the section order from the form metadata
func (r *Resume) Order() SectionOrder {
	order := make(SectionOrder, len(r.Sections))
	for i, s := range r.Sections {
		order[i] = s.Type
	}
	return order
}

// Snapshot copies the renderer inputs out of the editing state
func (r *Resume) Snapshot() *Snapshot {
	projects := slices.Clone(r.Projects)
	for i := range projects {
		projects[i].TechStack = slices.Clone(projects[i].TechStack)
	}
	return &Snapshot{
		Personal:        r.Personal,
		Education:       slices.Clone(r.Education),
		Experience:      slices.Clone(r.Experience),
		Skills:          slices.Clone(r.Skills),
		SkillCategories: slices.Clone(r.SkillCategories),
		Coursework:      slices.Clone(r.Coursework),
		Projects:        projects,
		Certifications:  slices.Clone(r.Certifications),
		SectionOrder:    r.Order(),
	}
}

// Clone returns a deep copy so reducers can modify the result freely
func (r *Resume) Clone() Resume {
	snap := r.Snapshot()
	return Resume{
		Personal:        snap.Personal,
		Education:       snap.Education,
		Experience:      snap.Experience,
		Skills:          snap.Skills,
		SkillCategories: snap.SkillCategories,
		Coursework:      snap.Coursework,
		Projects:        snap.Projects,
		Certifications:  snap.Certifications,
		Sections:        slices.Clone(r.Sections),
	}
}
