package http

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_authenticator.go -package=mocks lecturemind/internal/http Authenticator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"lecturemind/internal/contextutil"
)

// Authenticator resolves an HTTP request to a user id.
type Authenticator interface {
	// Authenticate returns the id of the user making the request, or an
	// error if the request carries no valid credentials.
	Authenticate(r *http.Request) (int64, error)
}

// TokenAuthenticator authenticates requests by bearer token. Tokens are
// configured as a comma-separated list of token:userID pairs.
type TokenAuthenticator struct {
	users map[string]int64
}

// NewTokenAuthenticator parses a token spec like "tok1:1,tok2:2".
func NewTokenAuthenticator(spec string) (*TokenAuthenticator, error) {
	users := make(map[string]int64)
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, id, ok := strings.Cut(pair, ":")
		if !ok || token == "" {
			return nil, fmt.Errorf("malformed token entry %q", pair)
		}
		userID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed user id in token entry %q: %w", pair, err)
		}
		users[token] = userID
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no API tokens configured")
	}
	return &TokenAuthenticator{users: users}, nil
}

// Authenticate checks the Authorization header for a configured bearer token.
func (a *TokenAuthenticator) Authenticate(r *http.Request) (int64, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return 0, fmt.Errorf("missing bearer token")
	}
	userID, ok := a.users[strings.TrimSpace(token)]
	if !ok {
		return 0, fmt.Errorf("unknown token")
	}
	return userID, nil
}

// SingleUserAuthenticator treats every request as coming from one user.
// Used when no API tokens are configured, for single-user deployments.
type SingleUserAuthenticator struct {
	UserID int64
}

func (a *SingleUserAuthenticator) Authenticate(*http.Request) (int64, error) {
	return a.UserID, nil
}

// AuthMiddleware rejects unauthenticated requests and stores the resolved
// user id in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := auth.Authenticate(r)
			if err != nil {
				logger := contextutil.LoggerFromContext(r.Context())
				logger.WarnContext(r.Context(), "authentication failed", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
				return
			}
			ctx := contextutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
