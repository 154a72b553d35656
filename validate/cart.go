package validate

import (
	"fmt"

	"hotel_roomservice/model"

	"github.com/gofiber/fiber/v2"
)

func AddCartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddCartItemInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("AddCartItem", input)
		return c.Next()
	}
}

// AdjustQuantity accepts any non-zero signed delta; zero would be a no-op
// and is rejected by the required tag.
func AdjustQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdjustQuantityInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("AdjustQuantity", input)
		return c.Next()
	}
}
