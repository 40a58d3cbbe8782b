package github

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-github/v75/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContents struct {
	content *github.RepositoryContent
	err     error

	gotOwner, gotRepo, gotPath string
	gotOpts                    *github.RepositoryContentGetOptions
}

func (f *fakeContents) GetContents(_ context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	f.gotOwner, f.gotRepo, f.gotPath, f.gotOpts = owner, repo, path, opts
	return f.content, nil, nil, f.err
}

func newTestRepo(f *fakeContents, ref string) *GithubSeedRepository {
	return &GithubSeedRepository{
		contents: f,
		owner:    "dfryer1193",
		gitRepo:  "pawfeed-seed",
		path:     "seed.yaml",
		ref:      ref,
	}
}

func TestGithubSeedRepository_LoadSeed(t *testing.T) {
	doc := "posts:\n  - id: gh-1\n    title: From GitHub\n    content: Seeded remotely\n"
	f := &fakeContents{content: &github.RepositoryContent{
		Encoding: github.Ptr("base64"),
		Content:  github.Ptr(base64.StdEncoding.EncodeToString([]byte(doc))),
	}}

	posts, err := newTestRepo(f, "main").LoadSeed(context.Background())
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, "gh-1", posts[0].ID)
	assert.Equal(t, "From GitHub", posts[0].Title)
	assert.Equal(t, "dfryer1193", f.gotOwner)
	assert.Equal(t, "pawfeed-seed", f.gotRepo)
	assert.Equal(t, "seed.yaml", f.gotPath)
	require.NotNil(t, f.gotOpts)
	assert.Equal(t, "main", f.gotOpts.Ref)
}

func TestGithubSeedRepository_DefaultBranch(t *testing.T) {
	f := &fakeContents{content: &github.RepositoryContent{Content: github.Ptr("posts: []")}}

	posts, err := newTestRepo(f, "").LoadSeed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Nil(t, f.gotOpts)
}

func TestGithubSeedRepository_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fake    *fakeContents
		wantMsg string
	}{
		{
			name: "api error response",
			fake: &fakeContents{err: &github.ErrorResponse{
				Response: &http.Response{StatusCode: http.StatusNotFound},
				Message:  "Not Found",
			}},
			wantMsg: "failed with status 404: Not Found",
		},
		{
			name:    "transport error",
			fake:    &fakeContents{err: errors.New("connection reset")},
			wantMsg: "connection reset",
		},
		{
			name:    "nil content",
			fake:    &fakeContents{},
			wantMsg: "returned nil file content",
		},
		{
			name:    "unsupported encoding",
			fake:    &fakeContents{content: &github.RepositoryContent{Encoding: github.Ptr("none")}},
			wantMsg: "failed to decode content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestRepo(tt.fake, "main").LoadSeed(context.Background())
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "error %q does not contain %q", err, tt.wantMsg)
		})
	}
}

func TestGetRepoFullName(t *testing.T) {
	repo := NewGithubSeedRepository(github.NewClient(nil), "owner", "repo", "seed.yaml", "")
	assert.Equal(t, "owner/repo", repo.GetRepoFullName())
}
