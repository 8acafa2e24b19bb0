package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email" gorm:"size:254;uniqueIndex"`
	Phone                  string `json:"phone"`
	Password               string `json:"-"`
	Role                   string `json:"role"`
	AccountActivated       bool   `json:"-"`
	AccountActivationToken string `json:"-"`
	PasswordResetToken     string `json:"-"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
