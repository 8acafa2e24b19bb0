package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name  string `json:"name" gorm:"size:100;uniqueIndex" binding:"required"`
	Slug  string `json:"slug" gorm:"size:120;uniqueIndex"`
	Image string `json:"image"`
}

// The slug always tracks the name, including on rename. Distinct names
// that normalize to the same slug get a counter suffix.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = uniqueSlug(tx, "categories", c.Name, c.ID)
	return nil
}
