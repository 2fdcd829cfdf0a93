package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
)

// AuthedFunc is a handler that requires an already-verified identity.
// Taking the claims as a parameter makes the verify-before-authorize
// ordering structural: an AuthedFunc cannot run without them.
type AuthedFunc func(w http.ResponseWriter, r *http.Request, claims *auth.Claims)

// adminChecker reports whether the user behind an email holds the
// admin role.
type adminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Gate wraps handlers with token verification and the admin role
// check.
type Gate struct {
	secret string
	users  adminChecker
}

func NewGate(secret string, users adminChecker) *Gate {
	return &Gate{secret: secret, users: users}
}

// Authenticated verifies the bearer token and hands the claims to
// next. Missing, malformed and expired tokens all answer 401.
func (g *Gate) Authenticated(next AuthedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.ParseHeader(g.secret, r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		next(w, r, claims)
	}
}

// Admin runs next only when the verified identity holds the admin
// role.
func (g *Gate) Admin(next AuthedFunc) http.HandlerFunc {
	return g.Authenticated(func(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
		ok, err := g.users.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			log.Printf("Admin lookup failed for %s: %v", claims.Email, err)
			writeError(w, http.StatusInternalServerError, "failed to verify role")
			return
		}
		if !ok {
			writeError(w, http.StatusForbidden, "forbidden access")
			return
		}
		next(w, r, claims)
	})
}
