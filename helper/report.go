package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"hotel_roomservice/config"
	"hotel_roomservice/database"
	"hotel_roomservice/utils"

	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"
)

var reportScheduler *cron.Cron

// StartDailyReportScheduler mails the previous day's sales summary to the
// configured admin address every morning at 07:00.
func StartDailyReportScheduler() {
	reportScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reportScheduler.AddFunc("0 7 * * *", SendDailySalesReport)
	if err != nil {
		log.Printf("failed to start report scheduler: %v", err)
		return
	}

	reportScheduler.Start()
	log.Println("Daily sales report scheduler started (07:00)")
}

func StopDailyReportScheduler() {
	if reportScheduler != nil {
		reportScheduler.Stop()
	}
}

func SendDailySalesReport() {
	to := config.Config("ADMIN_REPORT_EMAIL")
	if to == "" {
		return
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	report, err := utils.GetDailySalesReport(database.DB, yesterday)
	if err != nil {
		log.Printf("failed to build daily sales report: %v", err)
		return
	}

	body := fmt.Sprintf(
		"Room service report for %s\n\nOrders placed: %d\nDelivered: %d\nCancelled: %d\nRevenue (delivered): %.2f\n",
		report.Date, report.TotalOrders, report.DeliveredOrders, report.CancelledOrders, report.Revenue,
	)

	host := config.Config("SMTP_HOST")
	port := config.ConfigOrDefault("SMTP_PORT", "587")
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")

	e := email.NewEmail()
	e.From = config.Config("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Daily room service report " + report.Date
	e.Text = []byte(body)
	if err := e.Send(host+":"+port, smtp.PlainAuth("", username, password, host)); err != nil {
		log.Printf("failed to send daily report: %v", err)
	}
}
