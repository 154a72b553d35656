package utils_test

import (
	"fmt"
	"testing"
	"time"

	"hotel_roomservice/model"
	"hotel_roomservice/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGetDailySalesReport(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.OrderItem{}))

	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{PublicCode: "ORD-00000001", Status: model.OrderDelivered, TotalAmount: 77.4531, OrderDate: day},
		{PublicCode: "ORD-00000002", Status: model.OrderDelivered, TotalAmount: 20.00, OrderDate: day.Add(2 * time.Hour)},
		{PublicCode: "ORD-00000003", Status: model.OrderCancelled, TotalAmount: 50.00, OrderDate: day},
		{PublicCode: "ORD-00000004", Status: model.OrderPending, TotalAmount: 10.00, OrderDate: day},
		// outside the reported day
		{PublicCode: "ORD-00000005", Status: model.OrderDelivered, TotalAmount: 99.00, OrderDate: day.AddDate(0, 0, -1)},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	report, err := utils.GetDailySalesReport(db, day)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-30", report.Date)
	assert.Equal(t, int64(4), report.TotalOrders)
	assert.Equal(t, int64(2), report.DeliveredOrders)
	assert.Equal(t, int64(1), report.CancelledOrders)
	// revenue counts delivered orders only, display-rounded
	assert.Equal(t, 97.45, report.Revenue)
}

func TestGetDailySalesReportEmptyDay(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.OrderItem{}))

	report, err := utils.GetDailySalesReport(db, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.TotalOrders)
	assert.Zero(t, report.Revenue)
}
