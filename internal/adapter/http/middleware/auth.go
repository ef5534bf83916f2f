// Package middleware holds gin middleware for the authenticated principal.
// The principal is attribution only; role checks happen here, outside the
// use cases.
package middleware

import (
	"net/http"
	"strings"

	"fulfillment_engine/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Principal is the authenticated caller taken from the bearer token.
type Principal struct {
	ID   string
	Role string
}

// Claims are the JWT claims the service reads: sub and role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header must be in format 'Bearer <token>'", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "The provided token is invalid or expired", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
)

// Authenticate validates an HS256 bearer token and stores the principal on
// the context.
func Authenticate(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), &claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		SetPrincipal(c, Principal{ID: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// RequireRole lets the request through only when the principal has one of
// roles. It must run after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if _, ok := allowed[strings.ToLower(p.Role)]; !ok {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the principal set by Authenticate.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// PrincipalID is the caller id, or "" when the route is unauthenticated.
func PrincipalID(c *gin.Context) string {
	p, _ := GetPrincipal(c)
	return p.ID
}
