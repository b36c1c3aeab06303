package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSnapshot() *types.Snapshot {
	return &types.Snapshot{
		Personal: types.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "555-0100",
			Address:  "Austin, TX",
			LinkedIn: "https://linkedin.com/in/jane",
			GitHub:   "https://github.com/jane",
			Website:  "https://jane.dev",
		},
		Education: []types.EducationItem{{
			ID: "e1", Institution: "UT Austin", Degree: "BS", FieldOfStudy: "CS",
			StartDate: "08/2020", EndDate: "05/2024", Location: "Austin, TX",
		}},
		Experience: []types.ExperienceItem{{
			ID: "x1", Company: "Acme", Position: "Engineer", StartDate: "06/2024", Location: "Remote",
			Description: "Built things",
		}},
		Skills: []types.SkillItem{
			{ID: "s1", Name: "Go", Proficiency: "Expert", Category: "Technical"},
			{ID: "s2", Name: "Spanish", Category: "Languages"},
		},
		SkillCategories: []string{"Technical", "Languages"},
		Coursework:      []types.CourseworkItem{{ID: "c1", Title: "Operating Systems"}},
		Projects: []types.ProjectItem{{
			ID: "p1", Title: "Builder", TechStack: []string{"Go"}, Date: "2024", Description: "A tool",
		}},
		Certifications: []types.CertificationItem{{ID: "cert1", Title: "CKA", Provider: "CNCF", Date: "2023"}},
		SectionOrder:   types.AllSections,
	}
}

func TestGenerateLaTeX_PreambleAndTerminator(t *testing.T) {
	for _, snap := range []*types.Snapshot{nil, {}, fullSnapshot()} {
		out := GenerateLaTeX(snap)
		assert.NotEmpty(t, out)
		assert.True(t, strings.HasPrefix(out, Preamble))
		assert.True(t, strings.HasSuffix(out, Terminator))
	}
}

func TestGenerateLaTeX_EmptySnapshotHasNameFallbackOnly(t *testing.T) {
	out := GenerateLaTeX(&types.Snapshot{})
	assert.Contains(t, out, `{\LARGE\textbf{Your Name}}`)
	assert.NotContains(t, out, `\section{`)
	assert.NotContains(t, out, `\href`)
}

func TestGenerateLaTeX_ExampleScenario(t *testing.T) {
	snap := &types.Snapshot{
		Personal: types.PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Address: "Austin, TX"},
		Education: []types.EducationItem{{
			ID: "e1", Institution: "UT Austin", Degree: "BS", FieldOfStudy: "CS",
			StartDate: "08/2020", EndDate: "05/2024", Location: "Austin, TX",
		}},
		SectionOrder: types.SectionOrder{types.SectionPersonal, types.SectionEducation},
	}

	out := GenerateLaTeX(snap)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, `Austin, TX $\cdot$ jane@x.com`)
	assert.NotContains(t, out, `$\cdot$ $\cdot$`)
	assert.Contains(t, out, `\section{EDUCATION}`)
	assert.Contains(t, out, `\textbf{UT Austin} \hfill Austin, TX`)
	assert.Contains(t, out, `BS in CS \hfill 08/2020 - 05/2024`)
	assert.NotContains(t, out, `\section{EXPERIENCE}`)
	assert.NotContains(t, out, `\section{SKILLS}`)
}

func TestGenerateLaTeX_RemovedOnlyItemDropsHeading(t *testing.T) {
	snap := fullSnapshot()
	snap.Education = snap.Education[:0]

	out := GenerateLaTeX(snap)
	assert.NotContains(t, out, `\section{EDUCATION}`)
	assert.Contains(t, out, `\section{EXPERIENCE}`)
}

func TestGenerateLaTeX_SectionAbsentFromOrder(t *testing.T) {
	snap := fullSnapshot()
	snap.SectionOrder = types.SectionOrder{types.SectionSkills}

	out := GenerateLaTeX(snap)
	assert.Equal(t, 1, strings.Count(out, `\section{`))
	assert.Contains(t, out, `\section{SKILLS}`)
	assert.NotContains(t, out, "UT Austin")
	assert.NotContains(t, out, "Acme")
}

func TestGenerateLaTeX_SectionsFollowOrder(t *testing.T) {
	snap := fullSnapshot()
	snap.SectionOrder = types.SectionOrder{types.SectionSkills, types.SectionCoursework, types.SectionExperience}

	out := GenerateLaTeX(snap)
	skills := strings.Index(out, `\section{SKILLS}`)
	coursework := strings.Index(out, `\section{RELEVANT COURSEWORK}`)
	experience := strings.Index(out, `\section{EXPERIENCE}`)
	require.NotEqual(t, -1, skills)
	assert.Less(t, skills, coursework)
	assert.Less(t, coursework, experience)
}

func TestGenerateLaTeX_Idempotent(t *testing.T) {
	snap := fullSnapshot()
	assert.Equal(t, GenerateLaTeX(snap), GenerateLaTeX(snap))
}

func TestGenerateLaTeX_LinksLine(t *testing.T) {
	out := GenerateLaTeX(fullSnapshot())
	assert.Contains(t, out,
		`\href{https://linkedin.com/in/jane}{LinkedIn} $\cdot$ \href{https://github.com/jane}{GitHub} $\cdot$ \href{https://jane.dev}{Website}`)
	assert.Contains(t, out, `Austin, TX $\cdot$ 555-0100 $\cdot$ jane@x.com`)
}

func TestGenerateLaTeX_SkillsMultiBucket(t *testing.T) {
	out := GenerateLaTeX(fullSnapshot())
	assert.Contains(t, out, `\item{} \textbf{Technical}: Go (Expert)`)
	assert.Contains(t, out, `\item{} \textbf{Languages}: Spanish`)
}

func TestGenerateLaTeX_SkillsSingleBucketIsFlat(t *testing.T) {
	snap := &types.Snapshot{
		Skills:          []types.SkillItem{{ID: "s1", Name: "Python", Proficiency: "Expert", Category: "Technical"}},
		SkillCategories: []string{"Technical"},
		SectionOrder:    types.SectionOrder{types.SectionSkills},
	}

	out := GenerateLaTeX(snap)
	assert.Contains(t, out, `\item{} Python (Expert)`)
	assert.NotContains(t, out, `\textbf{Technical}:`)
}

func TestGenerateLaTeX_ProjectAndCertificationLines(t *testing.T) {
	out := GenerateLaTeX(fullSnapshot())
	assert.Contains(t, out, `\textbf{Builder} -- \textit{Go} \hfill 2024`)
	assert.Contains(t, out, `\textbf{CKA} -- \textit{CNCF} \hfill 2023`)
	assert.Contains(t, out, `\item{} Operating Systems`)
}

func TestGenerateLaTeX_EscapesUserText(t *testing.T) {
	snap := &types.Snapshot{
		Personal: types.PersonalInfo{Name: "R&D_Lead 100%", Website: "https://x.dev/#me"},
		Experience: []types.ExperienceItem{{
			ID: "x1", Company: "{Evil}", Description: "Saved $1M\n\nwith #hashtags ~ ^",
		}},
		SectionOrder: types.SectionOrder{types.SectionExperience},
	}

	out := GenerateLaTeX(snap)
	assert.Contains(t, out, `R\&D\_Lead 100\%`)
	assert.Contains(t, out, `\textbf{\{Evil\}}`)
	assert.Contains(t, out, `Saved \$1M with \#hashtags \textasciitilde{} \textasciicircum{}`)
	assert.Contains(t, out, `\href{https://x.dev/\#me}{Website}`)
}

func TestGenerateLaTeX_LeadingBracketOrStarStaysText(t *testing.T) {
	snap := &types.Snapshot{
		Personal: types.PersonalInfo{Name: "Jane", Address: "[Remote]", Phone: "*555"},
		Experience: []types.ExperienceItem{{
			ID: "x1", Company: "Acme", Description: "[Lead] built things",
		}},
		Coursework:   []types.CourseworkItem{{ID: "c1", Title: "[CS101] Intro"}, {ID: "c2", Title: "*Starred"}},
		SectionOrder: types.SectionOrder{types.SectionExperience, types.SectionCoursework},
	}

	out := GenerateLaTeX(snap)
	assert.Contains(t, out, "\\\\{}\n  [Remote]")
	assert.Contains(t, out, "\\\\{}\n    [Lead] built things")
	assert.Contains(t, out, `\item{} [CS101] Intro`)
	assert.Contains(t, out, `\item{} *Starred`)

	assert.NotContains(t, out, "\\\\\n")
	assert.NotContains(t, out, `\item `)
}
