package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"time"

	"hotel_roomservice/constants"
	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// submitLockTTL bounds how long a crashed submission can block its session.
const submitLockTTL = 30 * time.Second

// SubmitOrder turns the session cart into a persisted order. The write and
// the cart clear are atomic from the caller's perspective: if the cart clear
// fails after commit, the order is deleted again and the submission reported
// as failed.
func SubmitOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("SubmitOrder").(model.CustomerInfoInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	sid := sessionID(c)
	ctx := c.Context()

	// one submission in flight per session
	locked, err := database.Redis.SetNX(ctx, "submit_lock:"+sid, "1", submitLockTTL).Result()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}
	if !locked {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SUBMISSION_IN_PROGRESS, nil)
	}
	defer database.Redis.Del(ctx, "submit_lock:"+sid)

	entries, err := helper.LoadCart(ctx, sid)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CART_UNAVAILABLE, err)
	}
	if len(entries) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_CART, nil)
	}

	items := []model.OrderItem{}
	if err := copier.Copy(&items, &entries); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	subtotal := helper.Subtotal(entries)
	order := model.Order{
		PublicCode:          "ORD-" + uuid.New().String()[:8],
		SessionID:           sid,
		CustomerName:        input.Name,
		Phone:               input.Phone,
		Email:               input.Email,
		RoomNumber:          input.RoomNumber,
		SpecialInstructions: input.SpecialInstructions,
		Subtotal:            subtotal,
		Tax:                 helper.Tax(subtotal),
		ServiceCharge:       helper.ServiceCharge(subtotal),
		TotalAmount:         helper.Total(subtotal),
		Status:              model.OrderPending,
		OrderDate:           time.Now(),
		Items:               items,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	if err := helper.ClearCart(ctx, sid); err != nil {
		// compensating rollback: an order must not survive with its cart intact
		if delErr := database.DB.Select("Items").Delete(&order).Error; delErr != nil {
			log.Printf("compensating delete failed for order %s: %v", order.PublicCode, delErr)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	if order.Email != "" {
		emailItems := make([]utils.OrderConfirmationItem, 0, len(order.Items))
		for _, item := range order.Items {
			emailItems = append(emailItems, utils.OrderConfirmationItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    helper.Round2(item.Price * float64(item.Quantity)),
			})
		}
		utils.SendOrderConfirmationEmail(order.Email, utils.OrderConfirmationData{
			OrderCode:     order.PublicCode,
			CustomerName:  order.CustomerName,
			RoomNumber:    order.RoomNumber,
			Items:         emailItems,
			Subtotal:      helper.Round2(order.Subtotal),
			Tax:           helper.Round2(order.Tax),
			ServiceCharge: helper.Round2(order.ServiceCharge),
			Total:         helper.Round2(order.TotalAmount),
			OrderDate:     order.OrderDate.Format("15:04 - 02/01/2006"),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// GetMyOrders returns the session's order history, newest first.
func GetMyOrders(c *fiber.Ctx) error {
	var orders []model.Order
	if err := database.DB.
		Preload("Items").
		Where("session_id = ?", sessionID(c)).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrderDetail(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Where("public_code = ?", orderCode).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	qrBase64 := ""
	if err != nil {
		log.Printf("failed to generate QR for order %s: %v", order.PublicCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	response := fiber.Map{
		"orderCode":           order.PublicCode,
		"customerName":        order.CustomerName,
		"phone":               order.Phone,
		"email":               order.Email,
		"roomNumber":          order.RoomNumber,
		"specialInstructions": order.SpecialInstructions,
		"items":               order.Items,
		"subtotal":            order.Subtotal,
		"tax":                 order.Tax,
		"serviceCharge":       order.ServiceCharge,
		"total":               order.TotalAmount,
		"status":              order.Status,
		"orderDate":           order.OrderDate.Format("15:04 - 02/01/2006"),
		"qrCode":              qrBase64,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetOrders is the admin listing: every order, newest first, paginated.
func GetOrders(c *fiber.Ctx) error {
	pagination := model.Pagination{}
	if limit := c.QueryInt("limit", 0); limit > 0 {
		pagination.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		pagination.Page = utils.Ptr(page)
	}

	query := database.DB.Model(&model.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Session(&gorm.Session{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var orders []model.Order
	if err := utils.ApplyPagination(query.Session(&gorm.Session{}), pagination.Limit, pagination.Page).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// UpdateOrderStatus applies one status-machine transition. Anything but the
// single legal next step (or cancel from a non-terminal state) is rejected
// and the order left untouched. Only the status column is written.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")
	input, ok := c.Locals("UpdateOrderStatus").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var order model.Order
	if err := database.DB.Where("public_code = ?", orderCode).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !helper.CanTransition(order.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION,
			errors.New(order.Status+" -> "+input.Status))
	}

	if err := database.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}
	order.Status = input.Status

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
