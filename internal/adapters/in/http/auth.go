package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "littlelemon.caller"

// CallerResolver loads the caller's identity for a validated token subject.
// Role changes take effect on the next request because the roles are read
// from storage, not from the token.
type CallerResolver interface {
	Resolve(ctx context.Context, id kernel.UUID) (identity.Caller, error)
}

// NewAuthMiddleware returns echo middleware that resolves the request caller
// from a Bearer JWT whose subject is the identity ID. Requests without a
// valid token proceed as the anonymous caller; the access policy decides
// per route whether that is acceptable.
func NewAuthMiddleware(secret string, resolver CallerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			caller := identity.AnonymousCaller()

			if id, ok := subjectFromRequest(ctx, secret); ok {
				resolved, err := resolver.Resolve(ctx.Request().Context(), id)
				if err == nil {
					caller = resolved
				}
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

func subjectFromRequest(ctx echo.Context, secret string) (kernel.UUID, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return kernel.UUID{}, false
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return kernel.UUID{}, false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.UUID{}, false
	}

	return id, true
}

// IssueToken signs a Bearer token for the given identity.
func IssueToken(secret string, identityID kernel.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   identityID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func callerFromContext(ctx echo.Context) identity.Caller {
	if caller, ok := ctx.Get(callerContextKey).(identity.Caller); ok {
		return caller
	}
	return identity.AnonymousCaller()
}
