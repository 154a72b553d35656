package utils

import (
	"math"
	"time"

	"hotel_roomservice/model"

	"gorm.io/gorm"
)

type DailySalesReport struct {
	Date            string  `json:"date"` // "2026-08-30"
	TotalOrders     int64   `json:"totalOrders"`
	DeliveredOrders int64   `json:"deliveredOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
	Revenue         float64 `json:"revenue"` // delivered orders only
}

// GetDailySalesReport summarizes the orders placed on the given day.
// Revenue counts DELIVERED orders only; cancelled money never arrived.
func GetDailySalesReport(db *gorm.DB, day time.Time) (DailySalesReport, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24 * time.Hour)

	report := DailySalesReport{Date: from.Format("2006-01-02")}

	base := db.Model(&model.Order{}).Where("order_date >= ? AND order_date < ?", from, to)

	if err := base.Session(&gorm.Session{}).Count(&report.TotalOrders).Error; err != nil {
		return report, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", model.OrderDelivered).Count(&report.DeliveredOrders).Error; err != nil {
		return report, err
	}
	if err := base.Session(&gorm.Session{}).Where("status = ?", model.OrderCancelled).Count(&report.CancelledOrders).Error; err != nil {
		return report, err
	}

	var revenue *float64
	if err := base.Session(&gorm.Session{}).Where("status = ?", model.OrderDelivered).
		Select("SUM(total_amount)").Scan(&revenue).Error; err != nil {
		return report, err
	}
	if revenue != nil {
		report.Revenue = roundFloat(*revenue, 2)
	}

	return report, nil
}

func roundFloat(val float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(val*p) / p
}
