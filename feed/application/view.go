package application

import (
	"sort"
	"strings"

	"github.com/dfryer1193/pawfeed/feed/domain"
)

// SortOrder selects how the feed view is ordered.
type SortOrder string

const (
	SortRecent   SortOrder = "recent"
	SortPopular  SortOrder = "popular"
	SortComments SortOrder = "comments"
)

// ParseSortOrder falls back to SortRecent for empty or unknown input.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPopular, SortComments:
		return SortOrder(s)
	default:
		return SortRecent
	}
}

// FeedQuery holds the user's filter criteria.
// An empty Category or domain.CategoryAll matches every post.
type FeedQuery struct {
	Category string
	Search   string
	SortBy   SortOrder
}

// DeriveFeed filters by category, then by search term, then sorts. The input is never mutated.
func DeriveFeed(posts []domain.Post, q FeedQuery) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range posts {
		if !matchesCategory(p, q.Category) || !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}

	switch ParseSortOrder(string(q.SortBy)) {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	case SortComments:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].Comments) > len(out[j].Comments)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	}
	return out
}

// TrendingScore is likes plus comment count plus shares.
func TrendingScore(p domain.Post) int {
	return p.Likes + len(p.Comments) + p.Shares
}

// Trending returns at most limit posts by descending score. Ties keep store order.
func Trending(posts []domain.Post, limit int) []domain.Post {
	ranked := append([]domain.Post(nil), posts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return TrendingScore(ranked[i]) > TrendingScore(ranked[j])
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func matchesCategory(p domain.Post, selected string) bool {
	return selected == "" || selected == domain.CategoryAll || string(p.Category) == selected
}

// matchesSearch expects term to be lower-cased already
func matchesSearch(p domain.Post, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range []string{p.Title, p.Content, p.Author, string(p.Category)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
