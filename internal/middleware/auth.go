package middleware

import (
	"context"
	"net/http"

	"github.com/proposalcraft/proposalcraft-go/internal/model"
)

type contextKey string

const (
	identityKey  contextKey = "identity"
	requestIDKey contextKey = "requestID"
)

// IdentityResolver maps a raw session token to an identity, or nil.
type IdentityResolver interface {
	Me(token string) *model.Identity
}

// TokenSource extracts the raw session token from a request.
type TokenSource interface {
	Token(r *http.Request) string
}

// Session resolves the optional caller identity from the session cookie.
// Requests without a valid session continue anonymously.
func Session(tokens TokenSource, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := resolver.Me(tokens.Token(r)); id != nil {
				r = r.WithContext(context.WithValue(r.Context(), identityKey, id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext returns the signed-in identity, if any.
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*model.Identity)
	return id, ok && id != nil
}
