package http

import (
	"context"

	"booking-admin-console/internal/domain"
)

type contextKey struct{}

var adminKey = contextKey{}

func withAdmin(ctx context.Context, admin domain.AdminIdentity) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// AdminFromContext returns the identity resolved by AuthMiddleware, or the
// zero identity when the caller was not authenticated.
func AdminFromContext(ctx context.Context) domain.AdminIdentity {
	admin, _ := ctx.Value(adminKey).(domain.AdminIdentity)
	return admin
}
