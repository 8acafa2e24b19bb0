package models

import "gorm.io/gorm"

type ShippingAddress struct {
	gorm.Model
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Zipcode  string `json:"zipcode" binding:"required"`
}
