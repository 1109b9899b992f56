package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/eduverse-api/internal/middleware"
	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/response"
)

// bindJSON decodes the request body and answers 400 on malformed input.
func bindJSON(c *gin.Context, dest interface{}, message string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message))
		return false
	}
	return true
}

// respondRead answers a data access read, reporting where the records came from.
func respondRead(c *gin.Context, data interface{}, source models.DataSource) {
	middleware.SetSource(c, source)
	response.OK(c, data, middleware.ExtractMeta(c))
}

func actingUser(c *gin.Context) (models.ActingUser, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "select a user first"))
	}
	return user, ok
}
