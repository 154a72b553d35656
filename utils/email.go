package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type OrderConfirmationData struct {
	OrderCode     string
	CustomerName  string
	RoomNumber    string
	Items         []OrderConfirmationItem
	Subtotal      float64
	Tax           float64
	ServiceCharge float64
	Total         float64
	OrderDate     string
}

type OrderConfirmationItem struct {
	Name     string
	Quantity int
	Price    float64
}

// SendOrderConfirmationEmail renders and sends the confirmation asynchronously
// so submission responses are not delayed by SMTP.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation #"+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
