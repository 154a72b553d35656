package handler

import (
	"errors"

	"hotel_roomservice/constants"
	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals("sessionId").(string)
	return id
}

func cartResponse(entries []model.CartEntry) model.CartResponse {
	subtotal := helper.Subtotal(entries)
	return model.CartResponse{
		Entries:       entries,
		TotalItems:    helper.TotalItemCount(entries),
		Subtotal:      subtotal,
		Tax:           helper.Tax(subtotal),
		ServiceCharge: helper.ServiceCharge(subtotal),
		Total:         helper.Total(subtotal),
	}
}

func GetCart(c *fiber.Ctx) error {
	entries, err := helper.LoadCart(c.Context(), sessionID(c))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(entries))
}

// AddCartItem puts one unit of a menu item into the session cart. The name
// and price are snapshotted from the catalog at this moment.
func AddCartItem(c *fiber.Ctx) error {
	input, ok := c.Locals("AddCartItem").(model.AddCartItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, input.MenuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !item.Available {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.MENU_ITEM_UNAVAILABLE, nil)
	}

	sid := sessionID(c)
	entries, err := helper.LoadCart(c.Context(), sid)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}

	entries = helper.AddItem(entries, item)
	if err := helper.SaveCart(c.Context(), sid, entries); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(entries))
}

// AdjustCartQuantity applies a signed delta to one entry. A positive delta
// for an item not yet in the cart inserts it with that quantity; reaching
// zero removes the entry.
func AdjustCartQuantity(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("AdjustQuantity").(model.AdjustQuantityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	sid := sessionID(c)
	entries, err := helper.LoadCart(c.Context(), sid)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}

	menuItemID := uint(itemId)
	if helper.QuantityOf(entries, menuItemID) == 0 {
		if input.Delta <= 0 {
			// adjusting an absent entry downward is a no-op
			return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(entries))
		}
		var item model.MenuItem
		if err := database.DB.First(&item, menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !item.Available {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.MENU_ITEM_UNAVAILABLE, nil)
		}
		entries = append(entries, model.CartEntry{
			MenuItemID: item.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   input.Delta,
		})
	} else {
		entries = helper.AdjustQuantity(entries, menuItemID, input.Delta)
	}

	if err := helper.SaveCart(c.Context(), sid, entries); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(entries))
}

func RemoveCartItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	sid := sessionID(c)
	entries, err := helper.LoadCart(c.Context(), sid)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}

	entries = helper.RemoveItem(entries, uint(itemId))
	if err := helper.SaveCart(c.Context(), sid, entries); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse(entries))
}

func ClearCart(c *fiber.Ctx) error {
	if err := helper.ClearCart(c.Context(), sessionID(c)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cartResponse([]model.CartEntry{}))
}
