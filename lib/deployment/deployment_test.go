package deployment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDeployment(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "production", `
name: production
images:
  bastion:
    owner: self
    namePattern: "^bastion"
  cluster:
    namePattern: "^cluster"
`)

	d, err := Load(dir, "production")
	require.NoError(t, err)
	require.Equal(t, "production", d.Name)
	require.Len(t, d.Images, 2)
	require.Equal(t, "^bastion", d.Images["bastion"].NamePattern)

	// Owner defaults to self when omitted.
	require.Equal(t, "self", d.Images["cluster"].Owner)

	require.Equal(t, []string{"bastion", "cluster"}, d.Families())
}

func TestLoadDefaultsNameFromFile(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "staging", `
images:
  bastion:
    namePattern: "^bastion"
`)

	d, err := Load(dir, "staging")
	require.NoError(t, err)
	require.Equal(t, "staging", d.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsEmptyImages(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "empty", `name: empty`)

	_, err := Load(dir, "empty")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsMissingPattern(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "bad", `
images:
  bastion:
    owner: self
`)

	_, err := Load(dir, "bad")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeDeployment(t, dir, "staging", "name: staging")
	writeDeployment(t, dir, "production", "name: production")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.yaml"), 0755))

	names, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"production", "staging"}, names)
}
