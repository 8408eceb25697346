package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jacobisaldana/nativoseo-app/app/models"
	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/authtoken"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/usercontext"
)

// UserContextMiddleware resolves an Authorization bearer token into a user
// context. Requests without a (valid) token continue anonymously; route
// guards decide whether that is acceptable.
func UserContextMiddleware(c *fiber.Ctx) error {
	tokenString := extractBearerToken(c)
	if tokenString == "" {
		return c.Next()
	}

	userID, err := authtoken.Verify(tokenString)
	if err != nil {
		return c.Next()
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("user lookup failed: %v", err)
		}
		return c.Next()
	}
	if user.Status != models.STATUS_ACTIVE {
		return c.Next()
	}

	usercontext.Set(c, usercontext.UserContext{
		UserID:     user.ID,
		Username:   user.Username,
		IsLoggedIn: true,
	})
	return c.Next()
}

// RequireAuth ensures an authenticated caller and returns JSON 401 otherwise.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
