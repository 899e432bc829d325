package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepository(t *testing.T, remoteURL string) (string, string) {
	t.Helper()

	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	projectDir := filepath.Join(root, "spfx", "hello-world")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "package.json"), []byte(`{"name":"hello-world"}`), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("spfx/hello-world/package.json")
	require.NoError(t, err)
	hash, err := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Contoso", Email: "dev@contoso.com", When: time.Unix(1546300800, 0)},
	})
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
		require.NoError(t, err)
	}

	return projectDir, hash.String()
}

func TestCollectRepositoryMetadata(t *testing.T) {
	projectDir, hash := initRepository(t, "git@github.com:contoso/spfx-webparts.git")

	md, err := CollectRepositoryMetadata(projectDir)
	require.NoError(t, err)

	assert.Equal(t, "spfx/hello-world", md.Subfolder)
	if assert.NotNil(t, md.CommitHash) {
		assert.Equal(t, hash, *md.CommitHash)
	}
	assert.Equal(t, hash[:7], md.ShortCommit())
	if assert.NotNil(t, md.BranchName) {
		assert.Equal(t, "master", *md.BranchName)
	}
	if assert.NotNil(t, md.RemoteURL) {
		assert.Equal(t, "git@github.com:contoso/spfx-webparts.git", *md.RemoteURL)
	}
	if assert.NotNil(t, md.WebURL) {
		assert.Equal(t, "https://github.com/contoso/spfx-webparts", *md.WebURL)
	}
}

func TestCollectRepositoryMetadataWithoutRemote(t *testing.T) {
	projectDir, _ := initRepository(t, "")

	md, err := CollectRepositoryMetadata(projectDir)
	require.NoError(t, err)
	assert.Nil(t, md.RemoteURL)
	assert.Nil(t, md.WebURL)
	assert.NotNil(t, md.CommitHash)
}

func TestCollectRepositoryMetadataOutsideRepository(t *testing.T) {
	dir := t.TempDir()

	md, err := CollectRepositoryMetadata(dir)
	assert.EqualError(t, err, "source folder is not a git repository")
	if assert.NotNil(t, md) {
		assert.Nil(t, md.CommitHash)
		assert.Equal(t, "", md.ShortCommit())
	}

	_, err = CollectRepositoryMetadata("")
	assert.EqualError(t, err, "source folder is not set")
}

func TestRepositoryWebURL(t *testing.T) {
	tests := []struct {
		name     string
		remote   string
		expected string
	}{
		{name: "github ssh", remote: "git@github.com:contoso/spfx-webparts.git", expected: "https://github.com/contoso/spfx-webparts"},
		{name: "github https", remote: "https://github.com/contoso/spfx-webparts.git", expected: "https://github.com/contoso/spfx-webparts"},
		{name: "gitlab ssh", remote: "git@gitlab.com:contoso/intranet.git", expected: "https://gitlab.com/contoso/intranet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepositoryWebURL(tt.remote)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
