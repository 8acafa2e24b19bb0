package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TxRef          string     `json:"txRef" gorm:"size:64;uniqueIndex"`
	UserID         uint       `json:"userId"`
	User           *User      `json:"user,omitempty"`
	DeliveryStatus string     `json:"deliveryStatus" gorm:"size:50;default:PENDING"`
	PaymentStatus  string     `json:"paymentStatus" gorm:"size:50;default:PENDING"`
	DateDelivered  *time.Time `json:"dateDelivered"`

	// Shipping details frozen at checkout time.
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Zipcode  string `json:"zipcode"`

	OrderItems []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID"`

	Subtotal decimal.Decimal `json:"subtotal" gorm:"-"`
	Total    decimal.Decimal `json:"total" gorm:"-"`
}

// An OrderItem with a nil OrderID is a cart line; once OrderID is set at
// checkout it becomes a frozen order line and is never reverted.
type OrderItem struct {
	gorm.Model
	UserID    uint     `json:"userId"`
	ProductID *uint    `json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	OrderID   *uint    `json:"orderId"`

	Total decimal.Decimal `json:"total" gorm:"-"`
}

// LineTotal is quantity times the product's current price. Items whose
// product was removed contribute zero.
func (item *OrderItem) LineTotal() decimal.Decimal {
	if item.Product == nil {
		return decimal.Zero
	}
	return item.Product.PriceCurrent.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ComputeTotals fills the derived amounts on the order and its items.
func (o *Order) ComputeTotals() {
	subtotal := decimal.Zero
	for i := range o.OrderItems {
		o.OrderItems[i].Total = o.OrderItems[i].LineTotal()
		subtotal = subtotal.Add(o.OrderItems[i].Total)
	}
	o.Subtotal = subtotal
	o.Total = subtotal
}
