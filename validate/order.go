package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"hotel_roomservice/constants"
	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitOrder checks the customer fields before the order builder runs.
// Required fields are compared after trimming so whitespace-only input is
// rejected, and each failure names the offending field through keyError.
func SubmitOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerInfoInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Phone = strings.TrimSpace(input.Phone)
		input.Email = strings.TrimSpace(input.Email)
		input.RoomNumber = strings.TrimSpace(input.RoomNumber)

		required := []struct {
			key   string
			value string
		}{
			{"name", input.Name},
			{"phone", input.Phone},
			{"roomNumber", input.RoomNumber},
		}
		for _, field := range required {
			if field.value == "" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELD, nil, field.key)
			}
		}

		if input.Email != "" {
			if _, err := mail.ParseAddress(input.Email); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email is not valid", nil, "email")
			}
		}

		c.Locals("SubmitOrder", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput

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

		input.Status = strings.ToUpper(strings.TrimSpace(input.Status))
		if !model.IsKnownOrderStatus(input.Status) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, nil, "status")
		}

		c.Locals("UpdateOrderStatus", input)
		return c.Next()
	}
}
