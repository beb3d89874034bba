package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/twtrd/twtrd/models"
	"github.com/twtrd/twtrd/repositories"
	"github.com/twtrd/twtrd/utils"
)

// ContextUserKey is the key under which the resolved current user is stored in the Gin context.
const ContextUserKey = "current_user"

// RestoreUser resolves the Bearer token to a user and attaches it to the
// context. It never fails the request: anonymous and bad-token requests
// simply proceed without a current user.
func RestoreUser(users *repositories.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user := resolveUser(ctx, users); user != nil {
			ctx.Set(ContextUserKey, user)
		}
		ctx.Next()
	}
}

// RequireUser is RestoreUser with teeth: requests that do not resolve to a
// valid user are rejected with 401 before the handler runs.
func RequireUser(users *repositories.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := resolveUser(ctx, users)
		if user == nil {
			utils.RespondError(ctx, utils.NewUnauthorizedError())
			ctx.Abort()
			return
		}
		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user attached by RestoreUser/RequireUser, if any.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func resolveUser(ctx *gin.Context, users *repositories.UserRepository) *models.User {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil
	}

	// The token is only proof of identity; the user record itself must still exist.
	user, err := users.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
