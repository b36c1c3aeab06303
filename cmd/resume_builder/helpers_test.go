package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validSnapshotJSON = `{
  "personal": {"name": "Ada Lovelace", "email": "ada@example.com", "phone": "", "address": "London"},
  "experience": [{"id": "x1", "company": "Analytical Engines", "position": "Analyst", "startDate": "1842", "endDate": "", "location": "", "description": "Wrote notes\nFixed 100% of bugs"}],
  "skills": [{"id": "s1", "name": "C#", "proficiency": "", "category": "Technical"}],
  "skillCategories": ["Technical"],
  "sectionOrder": ["personal", "skills", "experience"]
}`

const validSnapshotYAML = `personal:
  name: Ada Lovelace
  email: ada@example.com
education:
  - id: e1
    institution: Cambridge
    degree: BA
    startDate: "1830"
sectionOrder: [personal, education]
`

// writeFile writes content under a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// getBinaryPath returns the path to the resume_builder binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_builder")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}
