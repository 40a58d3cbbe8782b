package domain

// Identity is the acting user as supplied by the identity provider.
// The core never derives or validates it.
type Identity struct {
	ID     string
	Name   string
	Avatar string
}
