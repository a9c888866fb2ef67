package middleware

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/model"
	"github.com/Rafi570/Scholarship-Management-System-server-2/app/repo"
)

// TokenVerifier validates a bearer credential and yields the caller's email.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

func AuthRequired(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := strings.TrimSpace(c.Get("Authorization"))
		if bearer == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "unauthorized access",
			})
		}

		if len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "unauthorized access",
			})
		}
		token := strings.TrimSpace(bearer[7:])

		email, err := verifier.Verify(c.Context(), token)
		if err != nil || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "unauthorized access",
			})
		}

		c.Locals("email", email)

		return c.Next()
	}
}

// RoleRequired denies unless the caller's stored role equals the required
// role exactly. There is no hierarchy: an admin does not pass a moderator
// check. Lookup failures deny as forbidden; the store error is only logged.
func RoleRequired(users repo.UserRepository, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		user, err := users.FindByEmail(c.Context(), email)
		if err != nil || user.Role != role {
			if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
				log.Printf("role lookup for %s failed: %v", email, err)
			}
			return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
				Success: false,
				Message: "forbidden access",
			})
		}

		return c.Next()
	}
}
