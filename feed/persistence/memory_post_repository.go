package persistence

import (
	"fmt"
	"sync"

	"github.com/dfryer1193/pawfeed/feed/domain"
)

var _ domain.PostRepository = (*MemoryPostRepository)(nil)

// MemoryPostRepository implements domain.PostRepository on process memory.
// State is transient and reset on restart.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post
	// order holds post ids newest first
	order []string
}

// NewPostRepository creates a repository holding the given posts in the given order.
// seed[0] ends up at the front of the feed.
func NewPostRepository(seed ...domain.Post) *MemoryPostRepository {
	r := &MemoryPostRepository{
		posts: make(map[string]*domain.Post, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for i := range seed {
		p := seed[i].Clone()
		p.NormalizeCounters()
		if _, exists := r.posts[p.ID]; exists || p.ID == "" {
			continue
		}
		r.posts[p.ID] = &p
		r.order = append(r.order, p.ID)
	}
	return r
}

// Insert prepends a post to the feed
func (r *MemoryPostRepository) Insert(p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}
	if p.ID == "" {
		return fmt.Errorf("post ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[p.ID]; exists {
		return fmt.Errorf("post %s already exists", p.ID)
	}

	stored := p.Clone()
	stored.NormalizeCounters()
	r.posts[p.ID] = &stored
	r.order = append([]string{p.ID}, r.order...)
	return nil
}

// Get retrieves a copy of a single post by ID
func (r *MemoryPostRepository) Get(id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	out := p.Clone()
	return &out, nil
}

// List returns copies of all posts in storage order
func (r *MemoryPostRepository) List() []*domain.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Post, 0, len(r.order))
	for _, id := range r.order {
		p := r.posts[id].Clone()
		out = append(out, &p)
	}
	return out
}

// Delete removes a post together with its comments
func (r *MemoryPostRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	delete(r.posts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update runs fn against a working copy of the post. The copy replaces the stored post
// only when fn returns nil, so a rejected mutation never leaves partial writes behind.
func (r *MemoryPostRepository) Update(id string, fn func(p *domain.Post) error) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}

	r.posts[id] = &working
	out := working.Clone()
	return &out, nil
}

func (r *MemoryPostRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
