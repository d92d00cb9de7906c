package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strings"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/internal/config"
	"utilbox/pkg/domain"
	"utilbox/pkg/logger"
	"utilbox/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/middleware"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key under which the authenticated caller is stored.
const UserIDKey ctxKey = "UserID"

// SecHandlerOptions configures bearer authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	// An empty key disables authentication.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// SecHandler verifies RS256 bearer tokens whose subject is a user UUID.
type SecHandler struct {
	key *rsa.PublicKey
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether requests must be authenticated.
func (s *SecHandler) Enabled() bool { return s.key != nil }

// HandleBearerAuth validates the token and returns a context carrying the
// user ID. Tokens are ignored while authentication is disabled.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if !s.Enabled() {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(t.Token), &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(uid))

	return logger.WithFields(ctx,
		zap.String("user_id", uid.String()),
		zap.String("operation", operationName)), nil
}

// Middleware rejects operations that reach the handler without an
// authenticated caller while authentication is enabled. The API declares
// bearer auth as optional so that the same server runs with auth turned off.
func (s *SecHandler) Middleware(req middleware.Request, next middleware.Next) (middleware.Response, error) {
	if s.Enabled() {
		if _, ok := req.Context.Value(UserIDKey).(domain.UserID); !ok {
			return middleware.Response{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}
	}

	return next(req)
}

// GetUserIDFromContext returns the authenticated caller, or the zero UserID
// when authentication is disabled.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
