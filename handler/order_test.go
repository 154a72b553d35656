package handler_test

import (
	"context"
	"net/http"
	"testing"

	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCart(t *testing.T, entries []model.CartEntry) {
	require.NoError(t, helper.SaveCart(context.Background(), testSession, entries))
}

func customerBody() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Alex Guest",
		"phone":      "555-0101",
		"roomNumber": "1204",
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	app := setupTestApp(t)
	fillCart(t, []model.CartEntry{
		{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1},
		{MenuItemID: 2, Name: "Grilled Salmon", Price: 24.99, Quantity: 2},
	})

	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var orders []model.Order
	require.NoError(t, database.DB.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Contains(t, order.PublicCode, "ORD-")
	assert.Equal(t, "1204", order.RoomNumber)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 62.97, order.Subtotal, 1e-9)
	assert.InDelta(t, 5.0376, order.Tax, 1e-9)
	assert.InDelta(t, 9.4455, order.ServiceCharge, 1e-9)
	assert.InDelta(t, 77.4531, order.TotalAmount, 1e-9)

	// the cart is cleared as part of the submission
	entries, err := helper.LoadCart(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	app := setupTestApp(t)

	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var count int64
	require.NoError(t, database.DB.Model(&model.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitOrderMissingRoomNumber(t *testing.T) {
	app := setupTestApp(t)
	fillCart(t, []model.CartEntry{{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1}})

	body := customerBody()
	body["roomNumber"] = "   "
	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", body), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "roomNumber", decodeBody(t, res)["keyError"])

	var count int64
	require.NoError(t, database.DB.Model(&model.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	// the cart survives a rejected submission
	entries, err := helper.LoadCart(context.Background(), testSession)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitOrderWhileInFlight(t *testing.T) {
	app := setupTestApp(t)
	fillCart(t, []model.CartEntry{{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1}})

	// another submission for this session already holds the lock
	require.NoError(t, database.Redis.Set(context.Background(), "submit_lock:"+testSession, "1", 0).Err())

	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var count int64
	require.NoError(t, database.DB.Model(&model.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetMyOrdersNewestFirst(t *testing.T) {
	app := setupTestApp(t)

	for _, code := range []string{"ORD-aaaaaaaa", "ORD-bbbbbbbb"} {
		fillCart(t, []model.CartEntry{{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1}})
		res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, res.StatusCode, code)
	}

	res, err := app.Test(newRequest(t, http.MethodGet, "/api/v1/orders/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	data := decodeBody(t, res)["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	second := data[1].(map[string]interface{})
	assert.GreaterOrEqual(t, first["id"].(float64), second["id"].(float64))
}

func TestGetOrderDetailNotFound(t *testing.T) {
	app := setupTestApp(t)

	res, err := app.Test(newRequest(t, http.MethodGet, "/api/v1/orders/ORD-missing1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetOrderDetailIncludesQR(t *testing.T) {
	app := setupTestApp(t)
	fillCart(t, []model.CartEntry{{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1}})

	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	code := decodeBody(t, res)["data"].(map[string]interface{})["orderCode"].(string)

	res, err = app.Test(newRequest(t, http.MethodGet, "/api/v1/orders/"+code, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	detail := decodeBody(t, res)["data"].(map[string]interface{})
	assert.Equal(t, code, detail["orderCode"])
	assert.Contains(t, detail["qrCode"], "data:image/png;base64,")
}

func submitOne(t *testing.T, app *fiber.App) string {
	fillCart(t, []model.CartEntry{{MenuItemID: 1, Name: "Caesar Salad", Price: 12.99, Quantity: 1}})
	res, err := app.Test(newRequest(t, http.MethodPost, "/api/v1/orders/", customerBody()), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	return decodeBody(t, res)["data"].(map[string]interface{})["orderCode"].(string)
}

func patchStatus(t *testing.T, app *fiber.App, code, status string) *http.Response {
	req := newRequest(t, http.MethodPatch, "/api/v1/admin/orders/"+code+"/status",
		map[string]interface{}{"status": status})
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func orderStatus(t *testing.T, code string) string {
	var order model.Order
	require.NoError(t, database.DB.Where("public_code = ?", code).First(&order).Error)
	return order.Status
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	app := setupTestApp(t)
	code := submitOne(t, app)

	for _, status := range []string{model.OrderPreparing, model.OrderReady, model.OrderDelivered} {
		res := patchStatus(t, app, code, status)
		require.Equal(t, http.StatusOK, res.StatusCode, status)
		assert.Equal(t, status, orderStatus(t, code))
	}
}

func TestUpdateOrderStatusIllegalSkip(t *testing.T) {
	app := setupTestApp(t)
	code := submitOne(t, app)

	res := patchStatus(t, app, code, model.OrderDelivered)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, model.OrderPending, orderStatus(t, code))
}

func TestUpdateOrderStatusTerminalAbsorbs(t *testing.T) {
	app := setupTestApp(t)
	code := submitOne(t, app)

	res := patchStatus(t, app, code, model.OrderCancelled)
	require.Equal(t, http.StatusOK, res.StatusCode)

	for _, status := range []string{model.OrderPreparing, model.OrderDelivered, model.OrderPending} {
		res := patchStatus(t, app, code, status)
		assert.Equal(t, http.StatusConflict, res.StatusCode, status)
	}
	assert.Equal(t, model.OrderCancelled, orderStatus(t, code))
}

func TestUpdateOrderStatusUnknownStatus(t *testing.T) {
	app := setupTestApp(t)
	code := submitOne(t, app)

	res := patchStatus(t, app, code, "SHIPPED")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, model.OrderPending, orderStatus(t, code))
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	app := setupTestApp(t)

	res := patchStatus(t, app, "ORD-missing1", model.OrderPreparing)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)
	code := submitOne(t, app)

	// no token at all
	req := newRequest(t, http.MethodPatch, "/api/v1/admin/orders/"+code+"/status",
		map[string]interface{}{"status": model.OrderPreparing})
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// customer-role token
	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 2, Username: "guest", Role: model.RoleCustomer})
	require.NoError(t, err)
	req = newRequest(t, http.MethodPatch, "/api/v1/admin/orders/"+code+"/status",
		map[string]interface{}{"status": model.OrderPreparing})
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	assert.Equal(t, model.OrderPending, orderStatus(t, code))
}
