package identity

import "context"

// User is the authenticated customer as supplied by the identity
// collaborator: an opaque identifier plus a display name. Authentication
// itself happens upstream; this package only carries the result.
type User struct {
	ID   string
	Name string
}

type contextKey struct{}

// WithUser returns a context carrying the user.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext extracts the user placed by WithUser.
func FromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(contextKey{}).(User)
	return user, ok && user.ID != ""
}
