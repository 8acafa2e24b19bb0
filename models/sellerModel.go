package models

import "gorm.io/gorm"

type Seller struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"uniqueIndex"`
	User         *User  `json:"user,omitempty"`
	BusinessName string `json:"businessName" binding:"required"`
	Slug         string `json:"slug" gorm:"size:120;uniqueIndex"`
	IsApproved   bool   `json:"isApproved"`
}

func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.Slug == "" {
		s.Slug = uniqueSlug(tx, "sellers", s.BusinessName, s.ID)
	}
	return nil
}
