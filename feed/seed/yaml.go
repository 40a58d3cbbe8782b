package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dfryer1193/pawfeed/feed/domain"
	"gopkg.in/yaml.v3"
)

var _ domain.SeedSource = (*FileSource)(nil)

// document is the on-disk shape of a seed file
type document struct {
	Posts []postRecord `yaml:"posts"`
}

type postRecord struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Content      string          `yaml:"content"`
	Author       string          `yaml:"author"`
	AuthorID     string          `yaml:"author_id"`
	AuthorAvatar string          `yaml:"author_avatar"`
	Category     string          `yaml:"category"`
	Tags         []string        `yaml:"tags"`
	Likes        int             `yaml:"likes"`
	Liked        bool            `yaml:"liked"`
	Bookmarked   bool            `yaml:"bookmarked"`
	Shares       int             `yaml:"shares"`
	Timestamp    time.Time       `yaml:"timestamp"`
	Comments     []commentRecord `yaml:"comments"`
}

type commentRecord struct {
	ID           string    `yaml:"id"`
	Author       string    `yaml:"author"`
	AuthorAvatar string    `yaml:"author_avatar"`
	Content      string    `yaml:"content"`
	Timestamp    time.Time `yaml:"timestamp"`
	Likes        int       `yaml:"likes"`
	Liked        bool      `yaml:"liked"`
}

// ParseYAML decodes a seed document. Records are returned as written;
// the store validates them when seeding.
func ParseYAML(data []byte) ([]domain.Post, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}

	posts := make([]domain.Post, 0, len(doc.Posts))
	for _, rec := range doc.Posts {
		posts = append(posts, rec.toDomain())
	}
	return posts, nil
}

func (r *postRecord) toDomain() domain.Post {
	p := domain.Post{
		ID:                 r.ID,
		Title:              r.Title,
		Content:            r.Content,
		Author:             r.Author,
		AuthorID:           r.AuthorID,
		AuthorAvatar:       r.AuthorAvatar,
		Category:           domain.Category(r.Category),
		Tags:               r.Tags,
		Likes:              r.Likes,
		LikedByCurrentUser: r.Liked,
		IsBookmarked:       r.Bookmarked,
		Shares:             r.Shares,
		Timestamp:          r.Timestamp,
		Comments:           make([]domain.Comment, 0, len(r.Comments)),
	}
	for _, c := range r.Comments {
		p.Comments = append(p.Comments, domain.Comment{
			ID:                 c.ID,
			Author:             c.Author,
			AuthorAvatar:       c.AuthorAvatar,
			Content:            c.Content,
			Timestamp:          c.Timestamp,
			Likes:              c.Likes,
			LikedByCurrentUser: c.Liked,
		})
	}
	return p
}

// FileSource loads seed posts from a YAML file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) LoadSeed(_ context.Context) ([]domain.Post, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", f.Path, err)
	}
	return ParseYAML(data)
}
