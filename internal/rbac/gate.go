package rbac

import (
	"context"
	"errors"

	"github.com/ledgerline/ledgerline/internal/shared"
)

// Gate produces allow/deny decisions for protected operations. It reads
// the verified identity from the request context, never from ambient
// request state, and never writes the HTTP response itself.
type Gate struct {
	service *Service
}

// NewGate constructs a Gate on top of the resolver service.
func NewGate(service *Service) *Gate {
	return &Gate{service: service}
}

// Authorize decides whether the current actor may perform an operation
// requiring the named permission. A store failure is returned as an error
// and must be mapped to a 500 by the caller; a deny is not an error.
func (g *Gate) Authorize(ctx context.Context, required string) (Decision, error) {
	userID, ok := shared.CurrentUserID(ctx)
	if !ok {
		return Decision{Allowed: false, Reason: ReasonUnauthenticated}, nil
	}

	identity, err := g.service.FindIdentity(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The session references a user that no longer exists. The
			// effective permission set is empty, so the actor is known but
			// holds nothing.
			return Decision{Allowed: false, Reason: ReasonForbidden}, nil
		}
		return Decision{}, err
	}
	if !identity.IsActive {
		return Decision{Allowed: false, Reason: ReasonForbidden, Identity: identity}, nil
	}

	// Superuser bypasses resolution entirely. This is a deliberate fast
	// path: the superuser must never be blocked even if role data is stale
	// or missing.
	if identity.IsCEO {
		return Decision{Allowed: true, Identity: identity}, nil
	}

	perms, err := g.service.EffectivePermissions(ctx, userID)
	if err != nil {
		return Decision{}, err
	}
	for _, p := range perms {
		if p == required {
			return Decision{Allowed: true, Identity: identity}, nil
		}
	}
	return Decision{Allowed: false, Reason: ReasonForbidden, Identity: identity}, nil
}
