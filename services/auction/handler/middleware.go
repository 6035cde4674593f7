package handler

import (
	"errors"
	"net/http"
	"strings"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"
	"autoplate/services/auction/helpers"
	"autoplate/utils"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

var errAdminRequired = errors.New("admin privileges required")

// AuthRequired validates the Bearer token and loads the user into the
// request context. Expired tokens, invalid tokens and dangling subjects are
// reported with distinct messages, all as 401.
func AuthRequired(auth AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrTokenInvalid, "missing bearer token")
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		user, err := auth.ValidateToken(token)
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			if status != http.StatusUnauthorized {
				status, message = http.StatusUnauthorized, "unauthorized"
			}
			utils.JSONError(c, status, err, message)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// AdminRequired blocks authenticated non-admin users with 403. It must run
// after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrTokenInvalid, "unauthorized")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			utils.JSONError(c, http.StatusForbidden, errAdminRequired, "only admins may manage plates")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by AuthRequired.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
