package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

// Headers carrying the user selected in the client.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// ContextUserKey is the gin context key storing the acting user.
const ContextUserKey = "actingUser"

// ActingUser reads the client's current user selection. The selection is not an
// authenticated identity; a request without it proceeds anonymously.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if id == "" {
			c.Next()
			return
		}

		role := models.UserRole(strings.ToUpper(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
		if role == "" {
			role = models.RoleStudent
		}
		if !role.Valid() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown role "+string(role)))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, models.ActingUser{ID: id, Role: role})
		c.Next()
	}
}

// CurrentUser returns the acting user attached by ActingUser.
func CurrentUser(c *gin.Context) (models.ActingUser, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return models.ActingUser{}, false
	}
	user, ok := value.(models.ActingUser)
	return user, ok
}

// RequireRoles rejects requests whose acting user holds none of the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "select a user first"))
			c.Abort()
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
