package model

type MenuItem struct {
	DTO
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"unique;size:120" json:"slug"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	Category    string  `gorm:"size:50;index" json:"category"`
	Available   bool    `gorm:"default:true" json:"available"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	ImageUrl    string  `json:"imageUrl"`
	Category    string  `json:"category" validate:"required,max=50"`
	Available   *bool   `json:"available"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageUrl    *string  `json:"imageUrl"`
	Category    *string  `json:"category" validate:"omitempty,max=50"`
	Available   *bool    `json:"available"`
}

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}
