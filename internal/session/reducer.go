package session

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Action is one user edit. Actions are applied by Reduce and never mutate
// the state they were given.
type Action interface {
	apply(r *types.Resume) error
}

// UpdatePersonal merges Patch (a partial PersonalInfo JSON object) into the contact block
type UpdatePersonal struct {
	Patch json.RawMessage
}

// AddItem appends a blank entry to a list section. ID is generated when empty.
// Category only applies to skills and defaults to the first declared category.
type AddItem struct {
	Section  types.SectionType
	ID       string
	Category string
}

// UpdateItem merges Patch into the entry with the given id. The id itself is immutable.
type UpdateItem struct {
	Section types.SectionType
	ID      string
	Patch   json.RawMessage
}

// RemoveItem drops the entry with the given id
type RemoveItem struct {
	Section types.SectionType
	ID      string
}

// AddCategory declares a new skill category
type AddCategory struct {
	Name string
}

// RemoveCategory drops a skill category and clears it from every skill that used it
type RemoveCategory struct {
	Name string
}

// AddTech appends a technology tag to a project
type AddTech struct {
	ProjectID string
	Tech      string
}

// RemoveTech drops every occurrence of Tech from a project's tech stack
type RemoveTech struct {
	ProjectID string
	Tech      string
}

// MoveSection moves the section at From so it ends up at To
type MoveSection struct {
	From int
	To   int
}

// ToggleCollapse flips the collapsed flag of one section in the form
type ToggleCollapse struct {
	SectionID string
}

// Reduce applies action to a copy of state. On error the original state is
// returned unchanged alongside the error.
func Reduce(state types.Resume, action Action) (types.Resume, error) {
	if action == nil {
		return state, invalid("nil action")
	}
	next := state.Clone()
	if err := action.apply(&next); err != nil {
		return state, err
	}
	return next, nil
}

// NewItemID returns a fresh time-ordered item identifier
func NewItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (a UpdatePersonal) apply(r *types.Resume) error {
	return mergePatch(&r.Personal, a.Patch)
}

func (a AddItem) apply(r *types.Resume) error {
	id := a.ID
	if id == "" {
		id = NewItemID()
	}

	var err error
	switch a.Section {
	case types.SectionEducation:
		r.Education, err = appendItem(a.Section, r.Education, types.EducationItem{ID: id})
	case types.SectionExperience:
		r.Experience, err = appendItem(a.Section, r.Experience, types.ExperienceItem{ID: id})
	case types.SectionSkills:
		category := a.Category
		if category == "" && len(r.SkillCategories) > 0 {
			category = r.SkillCategories[0]
		}
		r.Skills, err = appendItem(a.Section, r.Skills, types.SkillItem{ID: id, Category: category})
	case types.SectionCoursework:
		r.Coursework, err = appendItem(a.Section, r.Coursework, types.CourseworkItem{ID: id})
	case types.SectionProjects:
		r.Projects, err = appendItem(a.Section, r.Projects, types.ProjectItem{ID: id, TechStack: []string{}})
	case types.SectionCertifications:
		r.Certifications, err = appendItem(a.Section, r.Certifications, types.CertificationItem{ID: id})
	default:
		return invalid("section %q has no items", a.Section)
	}
	return err
}

func (a UpdateItem) apply(r *types.Resume) error {
	switch a.Section {
	case types.SectionEducation:
		return patchItem(a.Section, r.Education, a.ID, a.Patch)
	case types.SectionExperience:
		return patchItem(a.Section, r.Experience, a.ID, a.Patch)
	case types.SectionSkills:
		return patchItem(a.Section, r.Skills, a.ID, a.Patch)
	case types.SectionCoursework:
		return patchItem(a.Section, r.Coursework, a.ID, a.Patch)
	case types.SectionProjects:
		if err := patchItem(a.Section, r.Projects, a.ID, a.Patch); err != nil {
			return err
		}
		// a patch of "techStack": null must not leave a nil list behind
		for i := range r.Projects {
			if r.Projects[i].TechStack == nil {
				r.Projects[i].TechStack = []string{}
			}
		}
		return nil
	case types.SectionCertifications:
		return patchItem(a.Section, r.Certifications, a.ID, a.Patch)
	default:
		return invalid("section %q has no items", a.Section)
	}
}

func (a RemoveItem) apply(r *types.Resume) error {
	var err error
	switch a.Section {
	case types.SectionEducation:
		r.Education, err = removeItem(a.Section, r.Education, a.ID)
	case types.SectionExperience:
		r.Experience, err = removeItem(a.Section, r.Experience, a.ID)
	case types.SectionSkills:
		r.Skills, err = removeItem(a.Section, r.Skills, a.ID)
	case types.SectionCoursework:
		r.Coursework, err = removeItem(a.Section, r.Coursework, a.ID)
	case types.SectionProjects:
		r.Projects, err = removeItem(a.Section, r.Projects, a.ID)
	case types.SectionCertifications:
		r.Certifications, err = removeItem(a.Section, r.Certifications, a.ID)
	default:
		return invalid("section %q has no items", a.Section)
	}
	return err
}

func (a AddCategory) apply(r *types.Resume) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return invalid("category name is empty")
	}
	for _, existing := range r.SkillCategories {
		if existing == name {
			return invalid("category %q already exists", name)
		}
	}
	r.SkillCategories = append(r.SkillCategories, name)
	return nil
}

func (a RemoveCategory) apply(r *types.Resume) error {
	idx := -1
	for i, existing := range r.SkillCategories {
		if existing == a.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return invalid("category %q does not exist", a.Name)
	}
	r.SkillCategories = append(r.SkillCategories[:idx], r.SkillCategories[idx+1:]...)
	for i := range r.Skills {
		if r.Skills[i].Category == a.Name {
			r.Skills[i].Category = ""
		}
	}
	return nil
}

func (a AddTech) apply(r *types.Resume) error {
	idx := indexOf(r.Projects, a.ProjectID)
	if idx < 0 {
		return &ItemNotFoundError{Section: types.SectionProjects, ID: a.ProjectID}
	}
	tech := strings.TrimSpace(a.Tech)
	if tech == "" {
		return nil
	}
	r.Projects[idx].TechStack = append(r.Projects[idx].TechStack, tech)
	return nil
}

func (a RemoveTech) apply(r *types.Resume) error {
	idx := indexOf(r.Projects, a.ProjectID)
	if idx < 0 {
		return &ItemNotFoundError{Section: types.SectionProjects, ID: a.ProjectID}
	}
	kept := make([]string, 0, len(r.Projects[idx].TechStack))
	for _, tech := range r.Projects[idx].TechStack {
		if tech != a.Tech {
			kept = append(kept, tech)
		}
	}
	r.Projects[idx].TechStack = kept
	return nil
}

func (a MoveSection) apply(r *types.Resume) error {
	n := len(r.Sections)
	if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
		return invalid("section move %d -> %d out of range [0,%d)", a.From, a.To, n)
	}
	if a.From == a.To {
		return nil
	}
	moved := r.Sections[a.From]
	rest := append(r.Sections[:a.From:a.From], r.Sections[a.From+1:]...)
	sections := make([]types.SectionMeta, 0, n)
	sections = append(sections, rest[:a.To]...)
	sections = append(sections, moved)
	sections = append(sections, rest[a.To:]...)
	r.Sections = sections
	return nil
}

func (a ToggleCollapse) apply(r *types.Resume) error {
	for i := range r.Sections {
		if r.Sections[i].ID == a.SectionID {
			r.Sections[i].Collapsed = !r.Sections[i].Collapsed
			return nil
		}
	}
	return invalid("unknown section id %q", a.SectionID)
}

type identified interface {
	ItemID() string
}

func indexOf[T identified](items []T, id string) int {
	for i := range items {
		if items[i].ItemID() == id {
			return i
		}
	}
	return -1
}

func appendItem[T identified](section types.SectionType, items []T, item T) ([]T, error) {
	if indexOf(items, item.ItemID()) >= 0 {
		return items, invalid("%s item %q already exists", section, item.ItemID())
	}
	return append(items, item), nil
}

func removeItem[T identified](section types.SectionType, items []T, id string) ([]T, error) {
	idx := indexOf(items, id)
	if idx < 0 {
		return items, &ItemNotFoundError{Section: section, ID: id}
	}
	return append(items[:idx], items[idx+1:]...), nil
}

func patchItem[T identified](section types.SectionType, items []T, id string, patch json.RawMessage) error {
	idx := indexOf(items, id)
	if idx < 0 {
		return &ItemNotFoundError{Section: section, ID: id}
	}
	item := items[idx]
	if err := mergePatch(&item, stripID(patch)); err != nil {
		return err
	}
	if item.ItemID() != id {
		return invalid("%s item %q: id cannot be changed", section, id)
	}
	items[idx] = item
	return nil
}

// mergePatch decodes a partial JSON object over target. Fields absent from the
// patch keep their value; unknown fields are rejected.
func mergePatch(target any, patch json.RawMessage) error {
	if len(bytes.TrimSpace(patch)) == 0 {
		return invalid("empty patch")
	}
	dec := json.NewDecoder(bytes.NewReader(patch))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return &InvalidActionError{Message: "malformed patch", Cause: err}
	}
	return nil
}

// stripID removes every key that encoding/json would match to the id field,
// in any letter case, so a patch can never rename an item
func stripID(patch json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil {
		// let mergePatch report the malformed input
		return patch
	}
	stripped := false
	for k := range fields {
		if strings.EqualFold(k, "id") {
			delete(fields, k)
			stripped = true
		}
	}
	if !stripped {
		return patch
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return patch
	}
	return out
}
