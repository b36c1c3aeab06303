package main

import (
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPersonal(t *testing.T, personal types.PersonalInfo, err error) {
	t.Helper()
	askPersonal = func() (types.PersonalInfo, error) { return personal, err }
	t.Cleanup(func() { askPersonal = promptPersonal })
}

func setInitFlags(t *testing.T, out string, force bool) {
	t.Helper()
	initOutput, initForce = out, force
	t.Cleanup(func() { initOutput, initForce = "snapshot.yaml", false })
}

func TestInit_WritesLoadableSnapshot(t *testing.T) {
	stubPersonal(t, types.PersonalInfo{Name: "Grace Hopper", Email: "grace@navy.mil"}, nil)
	out := filepath.Join(t.TempDir(), "snapshot.yaml")
	setInitFlags(t, out, false)

	require.NoError(t, runInit(nil, nil))

	snap, err := loadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", snap.Personal.Name)
	assert.Equal(t, types.SectionOrder(types.AllSections), snap.SectionOrder)
	assert.Equal(t, types.DefaultSkillCategories, snap.SkillCategories)
	require.Len(t, snap.Projects, 1)
	assert.Empty(t, snap.Projects[0].TechStack)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	stubPersonal(t, types.PersonalInfo{Name: "Grace Hopper"}, nil)
	out := writeFile(t, "snapshot.yaml", "keep me")
	setInitFlags(t, out, false)

	err := runInit(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, "keep me", readFile(t, out))

	initForce = true
	require.NoError(t, runInit(nil, nil))
	assert.Contains(t, readFile(t, out), "Grace Hopper")
}

func TestInit_Interrupted(t *testing.T) {
	stubPersonal(t, types.PersonalInfo{}, terminal.InterruptErr)
	setInitFlags(t, filepath.Join(t.TempDir(), "snapshot.yaml"), false)

	err := runInit(nil, nil)
	require.Error(t, err)
	assert.Equal(t, "aborted", err.Error())
}

func TestOptionalEmail(t *testing.T) {
	assert.NoError(t, optionalEmail(""))
	assert.NoError(t, optionalEmail("grace@navy.mil"))
	assert.Error(t, optionalEmail("not an email"))
}
