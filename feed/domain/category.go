package domain

// Category is the fixed set of topics a post can be filed under.
type Category string

const (
	CategoryGeneral   Category = "general"
	CategoryHealth    Category = "health"
	CategoryTraining  Category = "training"
	CategoryEvents    Category = "events"
	CategoryLostFound Category = "lost-found"
	CategoryReviews   Category = "reviews"
)

// CategoryAll selects every category when filtering. It is never stored on a post.
const CategoryAll = "all"

// Categories lists the valid categories in display order.
var Categories = []Category{
	CategoryGeneral,
	CategoryHealth,
	CategoryTraining,
	CategoryEvents,
	CategoryLostFound,
	CategoryReviews,
}

// ParseCategory matches s against the enumerated categories. The match is case-sensitive.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
