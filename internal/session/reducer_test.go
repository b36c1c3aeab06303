package session

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReduce(t *testing.T, state types.Resume, action Action) types.Resume {
	t.Helper()
	next, err := Reduce(state, action)
	require.NoError(t, err)
	return next
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := types.NewResume()
	before := state.Clone()

	actions := []Action{
		UpdatePersonal{Patch: json.RawMessage(`{"name":"Ada"}`)},
		AddItem{Section: types.SectionEducation, ID: "edu-2"},
		UpdateItem{Section: types.SectionProjects, ID: "project-1", Patch: json.RawMessage(`{"title":"Compiler"}`)},
		RemoveItem{Section: types.SectionSkills, ID: "skill-1"},
		AddCategory{Name: "Cloud"},
		RemoveCategory{Name: "Technical"},
		AddTech{ProjectID: "project-1", Tech: "Go"},
		MoveSection{From: 0, To: 6},
		ToggleCollapse{SectionID: "skills"},
	}
	for _, action := range actions {
		_, err := Reduce(state, action)
		require.NoError(t, err)
	}

	if diff := cmp.Diff(before, state); diff != "" {
		t.Errorf("input state changed (-before +after):\n%s", diff)
	}
}

func TestReduce_ErrorReturnsOriginalState(t *testing.T) {
	state := types.NewResume()

	next, err := Reduce(state, RemoveItem{Section: types.SectionEducation, ID: "missing"})
	require.Error(t, err)
	var notFound *ItemNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.ID)
	assert.Equal(t, types.SectionEducation, notFound.Section)
	assert.Empty(t, cmp.Diff(state, next))
}

func TestReduce_NilAction(t *testing.T) {
	_, err := Reduce(types.NewResume(), nil)
	var invalidErr *InvalidActionError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestUpdatePersonal_PartialMerge(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, UpdatePersonal{Patch: json.RawMessage(`{"name":"Ada","email":"ada@example.com"}`)})
	state = mustReduce(t, state, UpdatePersonal{Patch: json.RawMessage(`{"phone":"555"}`)})

	assert.Equal(t, types.PersonalInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"}, state.Personal)
}

func TestUpdatePersonal_RejectsBadPatch(t *testing.T) {
	tests := []struct {
		name  string
		patch string
	}{
		{"empty", ``},
		{"unknown field", `{"nickname":"x"}`},
		{"wrong type", `{"name":42}`},
		{"not an object", `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reduce(types.NewResume(), UpdatePersonal{Patch: json.RawMessage(tt.patch)})
			var invalidErr *InvalidActionError
			assert.True(t, errors.As(err, &invalidErr), "got %v", err)
		})
	}
}

func TestAddItem(t *testing.T) {
	state := types.NewResume()

	state = mustReduce(t, state, AddItem{Section: types.SectionExperience})
	require.Len(t, state.Experience, 2)
	assert.NotEmpty(t, state.Experience[1].ID)
	assert.NotEqual(t, state.Experience[0].ID, state.Experience[1].ID)

	state = mustReduce(t, state, AddItem{Section: types.SectionProjects, ID: "p2"})
	assert.Equal(t, "p2", state.Projects[1].ID)
	assert.NotNil(t, state.Projects[1].TechStack)
}

func TestAddItem_SkillCategory(t *testing.T) {
	state := types.NewResume()

	state = mustReduce(t, state, AddItem{Section: types.SectionSkills, ID: "s2"})
	assert.Equal(t, "Technical", state.Skills[1].Category)

	state = mustReduce(t, state, AddItem{Section: types.SectionSkills, ID: "s3", Category: "Tools"})
	assert.Equal(t, "Tools", state.Skills[2].Category)
}

func TestAddItem_Errors(t *testing.T) {
	state := types.NewResume()

	_, err := Reduce(state, AddItem{Section: types.SectionPersonal})
	var invalidErr *InvalidActionError
	assert.True(t, errors.As(err, &invalidErr))

	_, err = Reduce(state, AddItem{Section: types.SectionEducation, ID: "edu-1"})
	assert.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateItem_KeepsUntouchedFieldsAndID(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, UpdateItem{
		Section: types.SectionEducation,
		ID:      "edu-1",
		Patch:   json.RawMessage(`{"institution":"MIT","degree":"BS"}`),
	})
	state = mustReduce(t, state, UpdateItem{
		Section: types.SectionEducation,
		ID:      "edu-1",
		Patch:   json.RawMessage(`{"id":"hijack","gpa":"4.0"}`),
	})

	assert.Equal(t, types.EducationItem{ID: "edu-1", Institution: "MIT", Degree: "BS", GPA: "4.0"}, state.Education[0])
}

func TestUpdateItem_IDKeyInAnyCaseIsIgnored(t *testing.T) {
	state := mustReduce(t, types.NewResume(), AddItem{Section: types.SectionEducation, ID: "edu-2"})

	for _, key := range []string{"ID", "Id", "iD"} {
		t.Run(key, func(t *testing.T) {
			next := mustReduce(t, state, UpdateItem{
				Section: types.SectionEducation,
				ID:      "edu-2",
				Patch:   json.RawMessage(`{"` + key + `":"edu-1","institution":"MIT"}`),
			})

			require.Len(t, next.Education, 2)
			assert.Equal(t, "edu-1", next.Education[0].ID)
			assert.Equal(t, "edu-2", next.Education[1].ID)
			assert.Equal(t, "MIT", next.Education[1].Institution)
		})
	}
}

func TestUpdateItem_EverySection(t *testing.T) {
	state := types.NewResume()
	updates := []UpdateItem{
		{Section: types.SectionExperience, ID: "exp-1", Patch: json.RawMessage(`{"company":"Acme"}`)},
		{Section: types.SectionSkills, ID: "skill-1", Patch: json.RawMessage(`{"name":"Go","proficiency":"Expert"}`)},
		{Section: types.SectionCoursework, ID: "course-1", Patch: json.RawMessage(`{"title":"Algorithms"}`)},
		{Section: types.SectionProjects, ID: "project-1", Patch: json.RawMessage(`{"title":"Kit","techStack":null}`)},
		{Section: types.SectionCertifications, ID: "cert-1", Patch: json.RawMessage(`{"title":"CKA","provider":"CNCF"}`)},
	}
	for _, u := range updates {
		state = mustReduce(t, state, u)
	}

	assert.Equal(t, "Acme", state.Experience[0].Company)
	assert.Equal(t, "Expert", state.Skills[0].Proficiency)
	assert.Equal(t, "Technical", state.Skills[0].Category)
	assert.Equal(t, "Algorithms", state.Coursework[0].Title)
	assert.Equal(t, "Kit", state.Projects[0].Title)
	assert.NotNil(t, state.Projects[0].TechStack)
	assert.Equal(t, "CNCF", state.Certifications[0].Provider)
}

func TestUpdateItem_NotFound(t *testing.T) {
	_, err := Reduce(types.NewResume(), UpdateItem{
		Section: types.SectionCoursework,
		ID:      "nope",
		Patch:   json.RawMessage(`{"title":"x"}`),
	})
	var notFound *ItemNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestRemoveItem(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, AddItem{Section: types.SectionCertifications, ID: "cert-2"})
	state = mustReduce(t, state, RemoveItem{Section: types.SectionCertifications, ID: "cert-1"})

	require.Len(t, state.Certifications, 1)
	assert.Equal(t, "cert-2", state.Certifications[0].ID)
}

func TestRemovedItemDisappearsFromSnapshot(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, RemoveItem{Section: types.SectionExperience, ID: "exp-1"})

	snap := state.Snapshot()
	assert.Empty(t, snap.Experience)
	assert.True(t, snap.SectionOrder.Contains(types.SectionExperience))
}

func TestAddCategory(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, AddCategory{Name: "  Cloud  "})
	assert.Equal(t, "Cloud", state.SkillCategories[len(state.SkillCategories)-1])

	for _, name := range []string{"", "   ", "Cloud", "Tools"} {
		_, err := Reduce(state, AddCategory{Name: name})
		var invalidErr *InvalidActionError
		assert.True(t, errors.As(err, &invalidErr), "name %q", name)
	}
}

func TestRemoveCategory_ClearsReferences(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, AddItem{Section: types.SectionSkills, ID: "s2", Category: "Tools"})
	state = mustReduce(t, state, RemoveCategory{Name: "Technical"})

	assert.Equal(t, []string{"Soft Skills", "Languages", "Tools"}, state.SkillCategories)
	require.Len(t, state.Skills, 2)
	assert.Empty(t, state.Skills[0].Category)
	assert.Equal(t, "Tools", state.Skills[1].Category)

	_, err := Reduce(state, RemoveCategory{Name: "Technical"})
	assert.Error(t, err)
}

func TestTechStack(t *testing.T) {
	state := types.NewResume()
	state = mustReduce(t, state, AddTech{ProjectID: "project-1", Tech: " Go "})
	state = mustReduce(t, state, AddTech{ProjectID: "project-1", Tech: "   "})
	state = mustReduce(t, state, AddTech{ProjectID: "project-1", Tech: "Postgres"})
	assert.Equal(t, []string{"Go", "Postgres"}, state.Projects[0].TechStack)

	state = mustReduce(t, state, RemoveTech{ProjectID: "project-1", Tech: "Go"})
	assert.Equal(t, []string{"Postgres"}, state.Projects[0].TechStack)

	_, err := Reduce(state, AddTech{ProjectID: "missing", Tech: "Go"})
	var notFound *ItemNotFoundError
	assert.True(t, errors.As(err, &notFound))
	_, err = Reduce(state, RemoveTech{ProjectID: "missing", Tech: "Go"})
	assert.True(t, errors.As(err, &notFound))
}

func TestMoveSection(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     types.SectionOrder
	}{
		{
			name: "skills to front",
			from: 6, to: 0,
			want: types.SectionOrder{"skills", "personal", "education", "experience", "coursework", "projects", "certifications"},
		},
		{
			name: "education down",
			from: 1, to: 3,
			want: types.SectionOrder{"personal", "experience", "coursework", "education", "projects", "certifications", "skills"},
		},
		{
			name: "same index",
			from: 2, to: 2,
			want: types.SectionOrder(types.AllSections),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustReduce(t, types.NewResume(), MoveSection{From: tt.from, To: tt.to})
			assert.Equal(t, tt.want, state.Order())
			assert.ElementsMatch(t, types.AllSections, []types.SectionType(state.Order()))
		})
	}
}

func TestMoveSection_OutOfRange(t *testing.T) {
	for _, move := range []MoveSection{{From: -1, To: 0}, {From: 0, To: 7}, {From: 9, To: 1}} {
		_, err := Reduce(types.NewResume(), move)
		var invalidErr *InvalidActionError
		assert.True(t, errors.As(err, &invalidErr), "move %+v", move)
	}
}

func TestToggleCollapse(t *testing.T) {
	state := mustReduce(t, types.NewResume(), ToggleCollapse{SectionID: "personal-info"})
	assert.True(t, state.Sections[0].Collapsed)

	state = mustReduce(t, state, ToggleCollapse{SectionID: "personal-info"})
	assert.False(t, state.Sections[0].Collapsed)

	_, err := Reduce(state, ToggleCollapse{SectionID: "personal"})
	assert.Error(t, err)
}

func TestNewItemID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewItemID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
