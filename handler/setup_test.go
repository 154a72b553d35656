package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"hotel_roomservice/database"
	"hotel_roomservice/helper"
	"hotel_roomservice/model"
	"hotel_roomservice/router"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSession = "11111111-2222-3333-4444-555555555555"

func setupTestApp(t *testing.T) *fiber.App {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(
		&model.Account{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	mr := miniredis.RunT(t)

	originalDB := database.DB
	originalRedis := database.Redis
	database.DB = testDB
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		database.DB = originalDB
		database.Redis = originalRedis
	})

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func seedMenuItem(t *testing.T, name string, price float64, category string, available bool) model.MenuItem {
	item := model.MenuItem{
		Name:      name,
		Slug:      helper.GenerateUniqueMenuItemSlug(database.DB, name),
		Price:     price,
		Category:  category,
		Available: available,
	}
	require.NoError(t, database.DB.Create(&item).Error)
	return item
}

func adminToken(t *testing.T) string {
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: 1,
		Username:  "admin",
		Role:      model.RoleAdmin,
	})
	require.NoError(t, err)
	return token
}

func newRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: testSession})
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
