package seed

import (
	"context"
	"time"

	"github.com/dfryer1193/pawfeed/feed/domain"
)

var _ domain.SeedSource = (*DemoSource)(nil)

// DemoSource serves the fixed first-run content.
// Timestamps are relative to Now so the demo feed always looks fresh.
type DemoSource struct {
	Now func() time.Time
}

func NewDemoSource() *DemoSource {
	return &DemoSource{Now: time.Now}
}

func (d *DemoSource) LoadSeed(_ context.Context) ([]domain.Post, error) {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	ago := func(dur time.Duration) time.Time {
		return now.Add(-dur)
	}

	return []domain.Post{
		{
			ID:           "demo-1",
			Title:        "Tips for first-time puppy owners",
			Content:      "Crate training worked wonders for us. Keep sessions short and always end on a good note!",
			Author:       "Sarah Johnson",
			AuthorID:     "user-sarah",
			AuthorAvatar: "https://i.pravatar.cc/150?u=sarah",
			Category:     domain.CategoryTraining,
			Tags:         []string{"puppy", "crate-training"},
			Likes:        24,
			Shares:       3,
			Timestamp:    ago(2 * time.Hour),
			Comments: []domain.Comment{
				{
					ID:           "demo-1-c1",
					Author:       "Mike Chen",
					AuthorAvatar: "https://i.pravatar.cc/150?u=mike",
					Content:      "Great advice! Short sessions made all the difference for our lab.",
					Timestamp:    ago(90 * time.Minute),
					Likes:        5,
				},
				{
					ID:           "demo-1-c2",
					Author:       "Emma Davis",
					AuthorAvatar: "https://i.pravatar.cc/150?u=emma",
					Content:      "How long did it take before your puppy was comfortable in the crate?",
					Timestamp:    ago(time.Hour),
					Likes:        2,
				},
			},
		},
		{
			ID:           "demo-2",
			Title:        "Lost cat near Riverside Park",
			Content:      "Our orange tabby Milo slipped out last night. He is friendly and wears a blue collar. Please reach out if you see him!",
			Author:       "Mike Chen",
			AuthorID:     "user-mike",
			AuthorAvatar: "https://i.pravatar.cc/150?u=mike",
			Category:     domain.CategoryLostFound,
			Tags:         []string{"cat", "riverside"},
			Likes:        41,
			Shares:       18,
			Timestamp:    ago(5 * time.Hour),
			Comments: []domain.Comment{
				{
					ID:           "demo-2-c1",
					Author:       "Lisa Park",
					AuthorAvatar: "https://i.pravatar.cc/150?u=lisa",
					Content:      "Shared with our neighborhood group. Hope Milo is home soon.",
					Timestamp:    ago(4 * time.Hour),
					Likes:        3,
				},
			},
		},
		{
			ID:           "demo-3",
			Title:        "Annual vaccination reminder",
			Content:      "Spring is a good time to check your pet's vaccination record. Our vet recommended combining it with a dental check.",
			Author:       "Dr. Emily Roberts",
			AuthorID:     "user-emily",
			AuthorAvatar: "https://i.pravatar.cc/150?u=emily",
			Category:     domain.CategoryHealth,
			Tags:         []string{"vaccines", "vet"},
			Likes:        17,
			Shares:       6,
			Timestamp:    ago(26 * time.Hour),
			Comments:     []domain.Comment{},
		},
		{
			ID:           "demo-4",
			Title:        "Dog-friendly meetup this Saturday",
			Content:      "Join us at Oak Meadow at 10am for an off-leash social hour. Water bowls and treats provided.",
			Author:       "Lisa Park",
			AuthorID:     "user-lisa",
			AuthorAvatar: "https://i.pravatar.cc/150?u=lisa",
			Category:     domain.CategoryEvents,
			Tags:         []string{"meetup", "off-leash"},
			Likes:        9,
			Shares:       4,
			Timestamp:    ago(48 * time.Hour),
			Comments: []domain.Comment{
				{
					ID:           "demo-4-c1",
					Author:       "Sarah Johnson",
					AuthorAvatar: "https://i.pravatar.cc/150?u=sarah",
					Content:      "We'll be there with Biscuit!",
					Timestamp:    ago(40 * time.Hour),
					Likes:        1,
				},
			},
		},
		{
			ID:           "demo-5",
			Title:        "Review: the new grain-free kibble",
			Content:      "Switched two weeks ago. Coat looks shinier but the price is steep. Would love to hear other experiences.",
			Author:       "Emma Davis",
			AuthorID:     "user-emma",
			AuthorAvatar: "https://i.pravatar.cc/150?u=emma",
			Category:     domain.CategoryReviews,
			Tags:         []string{"food", "kibble"},
			Likes:        6,
			Timestamp:    ago(72 * time.Hour),
			Comments:     []domain.Comment{},
		},
		{
			ID:           "demo-6",
			Title:        "Welcome to the community!",
			Content:      "Introduce yourself and your pets here. Be kind and keep it friendly.",
			Author:       "Community Team",
			AuthorID:     "user-team",
			AuthorAvatar: "https://i.pravatar.cc/150?u=team",
			Category:     domain.CategoryGeneral,
			Tags:         []string{"welcome"},
			Likes:        52,
			IsBookmarked: true,
			Timestamp:    ago(7 * 24 * time.Hour),
			Comments:     []domain.Comment{},
		},
	}, nil
}
