package handler

import (
	"errors"
	"time"

	"hotel_roomservice/constants"
	"hotel_roomservice/database"
	"hotel_roomservice/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDailyReport returns the sales summary for one day (default today).
func GetDailyReport(c *fiber.Ctx) error {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", errors.New("invalid date"))
		}
		day = parsed
	}

	report, err := utils.GetDailySalesReport(database.DB, day)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}
