package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	SellerID     *uint               `json:"sellerId"`
	Seller       *Seller             `json:"seller,omitempty"`
	Name         string              `json:"name" gorm:"size:100"`
	Slug         string              `json:"slug" gorm:"size:120;uniqueIndex"`
	Desc         string              `json:"desc"`
	PriceOld     decimal.NullDecimal `json:"priceOld" gorm:"type:decimal(10,2)"`
	PriceCurrent decimal.Decimal     `json:"priceCurrent" gorm:"type:decimal(10,2)"`
	CategoryID   uint                `json:"categoryId"`
	Category     *Category           `json:"category,omitempty"`
	InStock      int                 `json:"inStock" gorm:"default:5"`
	Image1       string              `json:"image1"`
	Image2       string              `json:"image2"`
	Image3       string              `json:"image3"`
	Colors       datatypes.JSON      `json:"colors"`
	Sizes        datatypes.JSON      `json:"sizes"`
}

// Product slugs are assigned once at creation and survive renames.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = uniqueSlug(tx, "products", p.Name, p.ID)
	}
	return nil
}
