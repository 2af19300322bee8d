package ctxkeys

import (
	"context"

	"github.com/casefolio/casefolio/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// Identity returns the authenticated caller, or nil for guests.
func Identity(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(identityKey).(*model.Identity)
	return identity
}

func WithIdentity(ctx context.Context, identity *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
