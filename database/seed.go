package database

import (
	"log"

	"hotel_roomservice/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "admin", Password: HashPassword, Active: true, Role: model.RoleAdmin},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	menuItems := []model.MenuItem{
		{
			Name:        "Caesar Salad",
			Description: "Fresh romaine lettuce with Caesar dressing, parmesan cheese, and croutons",
			Price:       12.99,
			ImageUrl:    "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400&h=300&fit=crop",
			Category:    "Appetizers",
			Available:   true,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon grilled to perfection with seasonal vegetables",
			Price:       24.99,
			ImageUrl:    "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=300&fit=crop",
			Category:    "Main Course",
			Available:   true,
		},
		{
			Name:        "Chocolate Cake",
			Description: "Rich chocolate cake with vanilla ice cream",
			Price:       8.99,
			ImageUrl:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
			Category:    "Desserts",
			Available:   true,
		},
		{
			Name:        "Fresh Orange Juice",
			Description: "Freshly squeezed orange juice",
			Price:       4.99,
			ImageUrl:    "https://images.unsplash.com/photo-1600271886742-f049cd451bba?w=400&h=300&fit=crop",
			Category:    "Beverages",
			Available:   true,
		},
		{
			Name:        "Beef Tenderloin",
			Description: "Premium beef tenderloin with garlic mashed potatoes",
			Price:       32.99,
			ImageUrl:    "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
			Category:    "Main Course",
			Available:   true,
		},
		{
			Name:        "Bruschetta",
			Description: "Toasted bread with fresh tomatoes, basil, and mozzarella",
			Price:       9.99,
			ImageUrl:    "https://images.unsplash.com/photo-1572441713132-51c75654db73?w=400&h=300&fit=crop",
			Category:    "Appetizers",
			Available:   true,
		},
	}

	for _, item := range menuItems {
		item.Slug = slug.Make(item.Name)
		if err := db.Where(model.MenuItem{Slug: item.Slug}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}
}
