package helper

import (
	"log"
	"time"

	"hotel_roomservice/database"
	"hotel_roomservice/model"

	"github.com/go-co-op/gocron/v2"
)

var orderScheduler gocron.Scheduler

// StaleOrderAge is how long a PENDING order may sit untouched before the
// sweeper cancels it.
const StaleOrderAge = 24 * time.Hour

// CancelStaleOrders cancels PENDING orders nobody acted on. The update goes
// through the same transition the admin endpoint uses (PENDING is never
// terminal), touching only the status column.
func CancelStaleOrders() {
	log.Println("[CRON] CancelStaleOrders triggered")

	cutoff := time.Now().Add(-StaleOrderAge)
	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND order_date < ?", model.OrderPending, cutoff).
		Update("status", model.OrderCancelled)

	if result.Error != nil {
		log.Printf("failed to cancel stale orders: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("cancelled %d stale pending orders", result.RowsAffected)
	}
}

func StartOrderSweeper() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	orderScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(CancelStaleOrders),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Order sweeper started (hourly)")
}

func StopOrderSweeper() {
	if orderScheduler != nil {
		_ = orderScheduler.Shutdown()
	}
}
