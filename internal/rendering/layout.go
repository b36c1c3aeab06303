package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Placeholders used when a field that heads an entry is blank
const (
	FallbackName          = "Your Name"
	FallbackInstitution   = "University Name"
	FallbackCompany       = "Company Name"
	FallbackPosition      = "Position"
	FallbackProject       = "Project Name"
	FallbackCertification = "Certification Name"
	FallbackCourse        = "Course Title"
	OpenEndDate           = "Present"
)

// OtherBucket collects skills whose category matches no declared category
const OtherBucket = "Other"

// Document is the format-neutral layout of a resume. Both the LaTeX
// generator and the HTML preview format the same Document, so section
// inclusion, ordering, fallbacks and skill grouping are decided once.
// Text is raw; each formatter escapes for its own output.
type Document struct {
	Header   Header
	Sections []Section
}

// Header is the personal information block
type Header struct {
	Name    string
	Contact []string
	Links   []Link
}

// Link is a labeled hyperlink in the header
type Link struct {
	Label string
	URL   string
}

// Section is one rendered section block
type Section struct {
	Type  types.SectionType
	Title string
	Items []Item
}

// Item is one entry of a section
type Item struct {
	Lines []Line
}

// Line is one visual line of an item.
type Line struct {
	Label  string // bold prefix followed by a colon
	Text   string
	Note   string // secondary detail after the text
	Aside  string // right aligned
	Strong bool
}

func (l Line) empty() bool {
	return l.Label == "" && l.Text == "" && l.Note == "" && l.Aside == ""
}

// SkillBucket groups the skills of one category
type SkillBucket struct {
	Category string
	Skills   []types.SkillItem
}

// BuildDocument decides what a snapshot renders to. A section renders when it
// appears in the section order and its collection is non-empty; personal
// information always renders as the header.
func BuildDocument(snap *types.Snapshot) *Document {
	if snap == nil {
		snap = &types.Snapshot{}
	}

	doc := &Document{Header: buildHeader(snap.Personal)}

	seen := make(map[types.SectionType]bool, len(snap.SectionOrder))
	for _, t := range snap.SectionOrder {
		if seen[t] || t == types.SectionPersonal {
			continue
		}
		seen[t] = true

		if snap.Len(t) == 0 {
			continue
		}

		var items []Item
		switch t {
		case types.SectionEducation:
			items = educationItems(snap.Education)
		case types.SectionExperience:
			items = experienceItems(snap.Experience)
		case types.SectionSkills:
			items = skillItems(snap.Skills, snap.SkillCategories)
		case types.SectionCoursework:
			items = courseworkItems(snap.Coursework)
		case types.SectionProjects:
			items = projectItems(snap.Projects)
		case types.SectionCertifications:
			items = certificationItems(snap.Certifications)
		default:
			continue
		}

		doc.Sections = append(doc.Sections, Section{Type: t, Title: t.Title(), Items: items})
	}

	return doc
}

// SectionTypes lists the rendered sections in order
func (d *Document) SectionTypes() []types.SectionType {
	out := make([]types.SectionType, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Type
	}
	return out
}

func buildHeader(p types.PersonalInfo) Header {
	h := Header{Name: orDefault(p.Name, FallbackName)}

	for _, v := range []string{p.Address, p.Phone, p.Email} {
		if present(v) {
			h.Contact = append(h.Contact, strings.TrimSpace(v))
		}
	}

	links := []Link{
		{Label: "LinkedIn", URL: p.LinkedIn},
		{Label: "GitHub", URL: p.GitHub},
		{Label: "Website", URL: p.Website},
	}
	for _, l := range links {
		if present(l.URL) {
			l.URL = strings.TrimSpace(l.URL)
			h.Links = append(h.Links, l)
		}
	}

	return h
}

// DateRange formats "start - end". No range is produced without a start
// date; a missing end date reads as Present.
func DateRange(start, end string) string {
	if !present(start) {
		return ""
	}
	return strings.TrimSpace(start) + " - " + orDefault(end, OpenEndDate)
}

func educationItems(list []types.EducationItem) []Item {
	items := make([]Item, 0, len(list))
	for _, e := range list {
		degree := strings.TrimSpace(e.Degree)
		if present(e.FieldOfStudy) {
			degree = strings.TrimSpace(degree + " in " + strings.TrimSpace(e.FieldOfStudy))
		}

		lines := []Line{
			{Text: orDefault(e.Institution, FallbackInstitution), Aside: strings.TrimSpace(e.Location), Strong: true},
			{Text: degree, Aside: DateRange(e.StartDate, e.EndDate)},
		}
		if present(e.GPA) {
			lines = append(lines, Line{Text: "GPA: " + strings.TrimSpace(e.GPA)})
		}
		lines = append(lines, Line{Text: strings.TrimSpace(e.Description)})

		items = append(items, Item{Lines: compact(lines)})
	}
	return items
}

func experienceItems(list []types.ExperienceItem) []Item {
	items := make([]Item, 0, len(list))
	for _, e := range list {
		lines := []Line{
			{Text: orDefault(e.Company, FallbackCompany), Aside: strings.TrimSpace(e.Location), Strong: true},
			{Text: orDefault(e.Position, FallbackPosition), Aside: DateRange(e.StartDate, e.EndDate)},
			{Text: strings.TrimSpace(e.Description)},
		}
		items = append(items, Item{Lines: compact(lines)})
	}
	return items
}

// GroupSkills buckets skills by declared category, in declaration order, with
// the Other bucket last. Blank and repeated category names are ignored. Empty
// buckets are kept so callers can see every declared category.
func GroupSkills(skills []types.SkillItem, categories []string) []SkillBucket {
	buckets := make([]SkillBucket, 0, len(categories)+1)
	index := make(map[string]int, len(categories)+1)

	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || c == OtherBucket {
			continue
		}
		if _, ok := index[c]; ok {
			continue
		}
		index[c] = len(buckets)
		buckets = append(buckets, SkillBucket{Category: c})
	}
	other := len(buckets)
	buckets = append(buckets, SkillBucket{Category: OtherBucket})

	for _, s := range skills {
		i, ok := index[strings.TrimSpace(s.Category)]
		if !ok {
			i = other
		}
		buckets[i].Skills = append(buckets[i].Skills, s)
	}

	return buckets
}

func skillItems(skills []types.SkillItem, categories []string) []Item {
	var filledBuckets []SkillBucket
	for _, b := range GroupSkills(skills, categories) {
		if len(b.Skills) > 0 {
			filledBuckets = append(filledBuckets, b)
		}
	}

	if len(filledBuckets) < 2 {
		return []Item{{Lines: []Line{{Text: skillList(skills)}}}}
	}

	items := make([]Item, 0, len(filledBuckets))
	for _, b := range filledBuckets {
		items = append(items, Item{Lines: []Line{{Label: b.Category, Text: skillList(b.Skills)}}})
	}
	return items
}

func skillList(skills []types.SkillItem) string {
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = strings.TrimSpace(s.Name)
		if present(s.Proficiency) {
			parts[i] += " (" + strings.TrimSpace(s.Proficiency) + ")"
		}
	}
	return strings.Join(parts, ", ")
}

func courseworkItems(list []types.CourseworkItem) []Item {
	items := make([]Item, 0, len(list))
	for _, c := range list {
		items = append(items, Item{Lines: []Line{{Text: orDefault(c.Title, FallbackCourse)}}})
	}
	return items
}

func projectItems(list []types.ProjectItem) []Item {
	items := make([]Item, 0, len(list))
	for _, p := range list {
		var stack []string
		for _, tech := range p.TechStack {
			if present(tech) {
				stack = append(stack, strings.TrimSpace(tech))
			}
		}

		lines := []Line{
			{Text: orDefault(p.Title, FallbackProject), Note: strings.Join(stack, ", "), Aside: strings.TrimSpace(p.Date), Strong: true},
			{Text: strings.TrimSpace(p.Description)},
		}
		items = append(items, Item{Lines: compact(lines)})
	}
	return items
}

func certificationItems(list []types.CertificationItem) []Item {
	items := make([]Item, 0, len(list))
	for _, c := range list {
		lines := []Line{
			{Text: orDefault(c.Title, FallbackCertification), Note: strings.TrimSpace(c.Provider), Aside: strings.TrimSpace(c.Date), Strong: true},
			{Text: strings.TrimSpace(c.Description)},
		}
		items = append(items, Item{Lines: compact(lines)})
	}
	return items
}

// compact drops lines with nothing to show
func compact(lines []Line) []Line {
	out := lines[:0]
	for _, l := range lines {
		if !l.empty() {
			out = append(out, l)
		}
	}
	return out
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func orDefault(s, fallback string) string {
	if present(s) {
		return strings.TrimSpace(s)
	}
	return fallback
}
