package domain

import "context"

// SeedSource supplies the posts a fresh store starts with.
// This allows the application to be decoupled from where the demo content lives.
type SeedSource interface {
	LoadSeed(ctx context.Context) ([]Post, error)
}
