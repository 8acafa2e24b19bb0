package repository

import (
	"errors"

	"github.com/AndewAksar/drf-ecommerce/models"
	"github.com/AndewAksar/drf-ecommerce/utils"
	"gorm.io/gorm"
)

// ErrEmptyCart is returned by Checkout when the user has no cart lines.
var ErrEmptyCart = errors.New("no items in cart")

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) itemWithProduct() *gorm.DB {
	return r.db.Preload("Product").Preload("Product.Seller").Preload("Product.Seller.User")
}

// CartLines returns the user's unordered items (order_id IS NULL) with
// product snapshots and line totals attached.
func (r *OrderRepo) CartLines(userID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.itemWithProduct().
		Where("user_id = ? AND order_id IS NULL", userID).
		Find(&items).Error
	for i := range items {
		items[i].Total = items[i].LineTotal()
	}
	return items, err
}

// ToggleCartLine upserts the cart line keyed on (user, product, no
// order). A present line gets its quantity overwritten; quantity 0
// deletes the line and a nil item is returned. The created flag reports
// whether the line was absent before the call.
func (r *OrderRepo) ToggleCartLine(userID uint, product models.Product, quantity int) (*models.OrderItem, bool, error) {
	var line models.OrderItem
	err := r.db.
		Where("user_id = ? AND product_id = ? AND order_id IS NULL", userID, product.ID).
		First(&line).Error

	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		created = true
		line = models.OrderItem{UserID: userID, ProductID: &product.ID, Quantity: quantity}
		if err := r.db.Create(&line).Error; err != nil {
			return nil, false, err
		}
	case err != nil:
		return nil, false, err
	default:
		line.Quantity = quantity
		if err := r.db.Save(&line).Error; err != nil {
			return nil, false, err
		}
	}

	if line.Quantity == 0 {
		if err := r.db.Delete(&line).Error; err != nil {
			return nil, false, err
		}
		return nil, created, nil
	}

	line.Product = &product
	line.Total = line.LineTotal()
	return &line, created, nil
}

// Checkout creates one order frozen with the shipping snapshot and
// re-points every cart line of the user to it in a single transaction,
// so callers never observe a partially reassigned cart.
func (r *OrderRepo) Checkout(userID uint, shipping models.ShippingAddress) (models.Order, error) {
	order := models.Order{
		TxRef:    utils.NewTxRef(),
		UserID:   userID,
		FullName: shipping.FullName,
		Email:    shipping.Email,
		Phone:    shipping.Phone,
		Address:  shipping.Address,
		City:     shipping.City,
		Country:  shipping.Country,
		Zipcode:  shipping.Zipcode,
	}

	tx := r.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var count int64
	if err := tx.Model(&models.OrderItem{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Count(&count).Error; err != nil {
		tx.Rollback()
		return models.Order{}, err
	}
	if count == 0 {
		tx.Rollback()
		return models.Order{}, ErrEmptyCart
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return models.Order{}, err
	}

	if err := tx.Model(&models.OrderItem{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Update("order_id", order.ID).Error; err != nil {
		tx.Rollback()
		return models.Order{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return models.Order{}, err
	}

	return r.reload(order.ID)
}

func (r *OrderRepo) reload(orderID uint) (models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("OrderItems.Product.Seller").
		First(&order, orderID).Error
	if err != nil {
		return models.Order{}, err
	}
	order.ComputeTotals()
	return order, nil
}

// ListByOwner returns the user's orders newest first.
func (r *OrderRepo) ListByOwner(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	for i := range orders {
		orders[i].ComputeTotals()
	}
	return orders, err
}

func (r *OrderRepo) FindByTxRef(txRef string) (models.Order, bool, error) {
	var order models.Order
	found, err := findOne(r.db.Where("tx_ref = ?", txRef), &order)
	if found {
		order.ComputeTotals()
	}
	return order, found, err
}

// ItemsForOrder returns the frozen lines of one order.
func (r *OrderRepo) ItemsForOrder(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.itemWithProduct().Where("order_id = ?", orderID).Find(&items).Error
	for i := range items {
		items[i].Total = items[i].LineTotal()
	}
	return items, err
}

// OrdersForSeller returns orders containing at least one of the seller's
// products, newest first.
func (r *OrderRepo) OrdersForSeller(sellerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Model(&models.Order{}).
		Distinct("orders.*").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.seller_id = ?", sellerID).
		Order("orders.created_at DESC").
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Find(&orders).Error
	for i := range orders {
		orders[i].ComputeTotals()
	}
	return orders, err
}

// ItemsForSeller restricts an order's lines to the seller's products.
func (r *OrderRepo) ItemsForSeller(orderID, sellerID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.itemWithProduct().
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ? AND products.seller_id = ?", orderID, sellerID).
		Find(&items).Error
	for i := range items {
		items[i].Total = items[i].LineTotal()
	}
	return items, err
}
