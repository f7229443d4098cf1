package requester

import (
	"context"
	"mallbook/internal/domains/user/model"
	"mallbook/shared/constant"
)

// Resolver turns the authenticated identity into a Requester.
type Resolver interface {
	ResolveRequester(ctx context.Context, userID, role string) (model.Requester, error)
}

// FromContext resolves the Requester from the claims the auth middleware stored in ctx.
func FromContext(ctx context.Context, resolver Resolver) (model.Requester, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return resolver.ResolveRequester(ctx, userID, role) //nolint:wrapcheck
}
