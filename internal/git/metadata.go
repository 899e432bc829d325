package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gitsight/go-vcsurl"
	"github.com/go-git/go-git/v5"
)

// RepositoryMetadata describes the git repository an SPFx project lives in.
type RepositoryMetadata struct {
	BranchName     *string
	CommitHash     *string
	RemoteURL      *string
	WebURL         *string
	Subfolder      string
	RepoRootFolder string
}

// CollectRepositoryMetadata collects branch name, commit hash, origin remote,
// subfolder and repository root for sourceFolder. A partially filled result is
// returned together with the error when the folder is not inside a repository.
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return &RepositoryMetadata{}, fmt.Errorf("source folder is not set")
	}

	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}

	repoRootFolder, err := findGitRepositoryPath(sourceFolder)
	if err != nil {
		return md, err
	}

	md.RepoRootFolder = filepath.Clean(repoRootFolder)

	repo, err := git.PlainOpen(repoRootFolder)
	if err != nil {
		return md, fmt.Errorf("failed to open repository: %w", err)
	}

	if rel, err := filepath.Rel(repoRootFolder, sourceFolder); err == nil && rel != "." {
		md.Subfolder = filepath.ToSlash(rel)
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}

		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			remoteURL := cfg.URLs[0]
			md.RemoteURL = &remoteURL
			if webURL, err := RepositoryWebURL(remoteURL); err == nil {
				md.WebURL = &webURL
			}
		}
	}

	return md, nil
}

// RepositoryWebURL normalises an ssh or https clone URL of a known hosting
// provider into the browsable https address of the repository.
func RepositoryWebURL(remoteURL string) (string, error) {
	info, err := vcsurl.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse VCS URL %q: %w", remoteURL, err)
	}

	httpsURL, err := info.Remote(vcsurl.HTTPS)
	if err != nil {
		return "", fmt.Errorf("failed to build https URL for %q: %w", remoteURL, err)
	}
	return strings.TrimSuffix(httpsURL, ".git"), nil
}

// ShortCommit returns the first seven characters of the commit hash, or an
// empty string when it is unknown.
func (md *RepositoryMetadata) ShortCommit() string {
	if md == nil || md.CommitHash == nil {
		return ""
	}
	hash := *md.CommitHash
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
