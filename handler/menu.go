package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel_roomservice/constants"
	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetMenu lists the catalog for guests. Unavailable items are hidden unless
// includeUnavailable=true (the admin dashboard passes it).
func GetMenu(c *fiber.Ctx) error {
	query := database.DB.Model(&model.MenuItem{}).Order("category, name")

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}
	if c.Query("includeUnavailable") != "true" {
		query = query.Where("available = ?", true)
	}

	var items []model.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := []model.MenuItemResponse{}
	if err := copier.Copy(&response, &items); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMenuItemBySlug(c *fiber.Ctx) error {
	itemSlug := c.Params("slug")

	var item model.MenuItem
	if err := database.DB.Where("slug = ?", itemSlug).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.MenuItemResponse{}
	if err := copier.Copy(&response, &item); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("CreateMenuItem").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	item := model.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageUrl:    input.ImageUrl,
		Category:    input.Category,
		Available:   true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		item.Slug = helper.GenerateUniqueMenuItemSlug(tx, item.Name)
		return tx.Create(&item).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	input, ok := c.Locals("UpdateMenuItem").(model.UpdateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageUrl != nil {
		item.ImageUrl = *input.ImageUrl
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// ToggleMenuItemAvailability flips the available flag and nothing else.
func ToggleMenuItemAvailability(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&item).Update("available", !item.Available).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}
	item.Available = !item.Available

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// UploadMenuItemImage replaces the item image with a multipart upload pushed
// to cloudinary.
func UploadMenuItemImage(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot read image file", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:       "menu/items",
		PublicID:     fmt.Sprintf("menu_%d_%d", item.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	if err := database.DB.Model(&item).Update("image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PERSISTENCE_ERROR, err)
	}
	item.ImageUrl = result.SecureURL

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
