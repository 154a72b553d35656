package router

import (
	"hotel_roomservice/handler"
	"hotel_roomservice/middleware"
	"hotel_roomservice/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/logout", handler.Logout)

	menu := v1.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)
	menu.Get("/:slug", handler.GetMenuItemBySlug)

	cart := v1.Group("/cart", logger.New(), middleware.Session())
	cart.Get("/", handler.GetCart)
	cart.Post("/items", validate.AddCartItem(), handler.AddCartItem)
	cart.Patch("/items/:itemId", validate.GetById("itemId"), validate.AdjustQuantity(), handler.AdjustCartQuantity)
	cart.Delete("/items/:itemId", validate.GetById("itemId"), handler.RemoveCartItem)
	cart.Delete("/", handler.ClearCart)

	orders := v1.Group("/orders", logger.New(), middleware.Session())
	orders.Post("/", validate.SubmitOrder(), handler.SubmitOrder)
	orders.Get("/", handler.GetMyOrders)
	orders.Get("/:orderCode", handler.GetOrderDetail)

	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())
	admin.Get("/orders", handler.GetOrders)
	admin.Patch("/orders/:orderCode/status", validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	admin.Post("/menu", validate.CreateMenuItem(), handler.CreateMenuItem)
	admin.Put("/menu/:itemId", validate.GetById("itemId"), validate.UpdateMenuItem(), handler.UpdateMenuItem)
	admin.Patch("/menu/:itemId/available", validate.GetById("itemId"), handler.ToggleMenuItemAvailability)
	admin.Post("/menu/:itemId/image", validate.GetById("itemId"), handler.UploadMenuItemImage)
	admin.Get("/report/daily", handler.GetDailyReport)
}
