package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"github.com/dfryer1193/pawfeed/feed/seed"
	"github.com/google/go-github/v75/github"
)

var _ domain.SeedSource = (*GithubSeedRepository)(nil)

// contentsGetter is the slice of the go-github client this package uses.
type contentsGetter interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

// GithubSeedRepository loads seed posts from a YAML file kept in a GitHub repository.
type GithubSeedRepository struct {
	contents contentsGetter
	owner    string
	gitRepo  string
	path     string
	ref      string
}

// NewGithubSeedRepository creates a new GithubSeedRepository.
// An empty ref reads the repository's default branch.
func NewGithubSeedRepository(client *github.Client, owner, gitRepo, path, ref string) *GithubSeedRepository {
	return &GithubSeedRepository{
		contents: client.Repositories,
		owner:    owner,
		gitRepo:  gitRepo,
		path:     path,
		ref:      ref,
	}
}

// LoadSeed fetches the seed file and decodes it.
func (g *GithubSeedRepository) LoadSeed(ctx context.Context) ([]domain.Post, error) {
	data, err := g.GetFileContents(ctx, g.path, g.ref)
	if err != nil {
		return nil, err
	}
	return seed.ParseYAML(data)
}

// GetFileContents fetches the contents of a file at a specific ref (branch, tag, or commit SHA).
func (g *GithubSeedRepository) GetFileContents(ctx context.Context, path string, ref string) ([]byte, error) {
	op := fmt.Sprintf("getting file %s at ref %s", path, ref)

	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	fileContent, _, _, err := g.contents.GetContents(ctx, g.owner, g.gitRepo, path, opts)
	if err != nil {
		return nil, handleGithubError(op, err)
	}

	if fileContent == nil {
		return nil, fmt.Errorf("github: %s returned nil file content", op)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("github: %s failed to decode content: %w", op, err)
	}

	return []byte(content), nil
}

// GetRepoFullName returns the repository's full name (e.g., "owner/repo").
func (g *GithubSeedRepository) GetRepoFullName() string {
	return fmt.Sprintf("%s/%s", g.owner, g.gitRepo)
}

// handleGithubError inspects an error from the go-github client and returns a more informative, structured error.
func handleGithubError(op string, err error) error {
	if err == nil {
		return nil
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		status := 0
		if errResp.Response != nil {
			status = errResp.Response.StatusCode
		}
		return fmt.Errorf("github: %s failed with status %d: %s", op, status, errResp.Message)
	}

	return fmt.Errorf("github: %s failed: %w", op, err)
}
