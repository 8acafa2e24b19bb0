package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reviews are removed outright on delete so the (user, product) slot in
// the unique index frees up for a new review.
type Review struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID    uint  `json:"userId" gorm:"uniqueIndex:idx_review_user_product"`
	User      *User `json:"user,omitempty"`
	ProductID uint  `json:"productId" gorm:"uniqueIndex:idx_review_user_product"`

	Rating int    `json:"rating"`
	Text   string `json:"text" gorm:"size:1000"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
