package middleware

import (
	"net/http"
	"strings"

	"aquashield/internal/adapter/http/handlers"
	"aquashield/internal/usecase/interfaces"
	"aquashield/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingBearer = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// AuthRequired validates the Bearer token and stores the authenticated user
// id in the context for downstream handlers.
func AuthRequired(tokens interfaces.ITokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingBearer.HTTPStatus, errMissingBearer.ToHTTPError())
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errMissingBearer.HTTPStatus, errMissingBearer.ToHTTPError())
			return
		}

		c.Set(handlers.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
