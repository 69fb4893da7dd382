package middleware

import (
	"errors"
	"strings"

	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/config"
	"nile-backoffice/internal/pkg/jwt"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and loads the user fresh on every
// request. Tokens are stateless, so deactivating or deleting a user cuts off
// their access immediately even though issued tokens cannot be revoked.
func AuthMiddleware(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try cookie first
		accessToken = c.Cookies("access_token")

		// 2. Fall back to Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 3. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 4. Load user with role
		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.Unauthorized(c, "Invalid access token")
			}
			return response.InternalServerError(c, "Failed to authenticate")
		}

		// 5. Reject inactive accounts
		if !user.IsActive {
			return response.Unauthorized(c, "Account is inactive")
		}

		// 6. Set user info in context
		c.Locals("userID", user.ID)
		c.Locals("username", user.Username)
		c.Locals("user", user)
		if user.Role != nil {
			c.Locals("role", user.Role)
		}

		return c.Next()
	}
}

// RequirePermission gates a route behind a single permission flag on the
// caller's role
func RequirePermission(perm models.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(*models.Role)
		if !ok || role == nil {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		if !role.IsActive || !role.Permissions.Has(perm) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the request context
func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
