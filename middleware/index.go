package middleware

import (
	"errors"
	"strings"

	"hotel_roomservice/helper"
	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// AdminOnly requires a valid token carrying the admin role. Mount after
// Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.GetTokenClaim(c)
		if claim.Role != model.RoleAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin access required", errors.New("insufficient role"))
		}
		return c.Next()
	}
}

// Session guarantees every guest has a session cookie so their cart can be
// keyed without an account.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     "session_id",
				Value:    sessionID,
				HTTPOnly: true,
				SameSite: "Lax",
				Path:     "/",
			})
		}
		c.Locals("sessionId", sessionID)
		return c.Next()
	}
}
