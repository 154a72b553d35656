package model

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type Account struct {
	DTO
	Username string `gorm:"unique;size:50" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"size:20;default:customer" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
