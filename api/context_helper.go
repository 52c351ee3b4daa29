package api

import (
	"context"
	"time"

	"github.com/medvault/medvault-api/models"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

type contextKey string

const (
	claimsContextKey contextKey = "claims"
	doctorContextKey contextKey = "doctor"
)

// ContextWithClaims stores the verified token claims on the request context
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the verified token claims attached by the auth middleware
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// ContextWithDoctor stores the re-fetched doctor account on the request context
func ContextWithDoctor(ctx context.Context, doctor *models.Doctor) context.Context {
	return context.WithValue(ctx, doctorContextKey, doctor)
}

// DoctorFromContext returns the doctor attached by the doctor auth middleware
func DoctorFromContext(ctx context.Context) (*models.Doctor, bool) {
	doctor, ok := ctx.Value(doctorContextKey).(*models.Doctor)
	return doctor, ok
}
