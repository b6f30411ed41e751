package repository

import (
	"errors"

	"press_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(collection, id string) (*models.Order, error)
	GetByCollection(collection string) ([]models.Order, error)
	UpdateStatus(collection, id string, status models.OrderStatus) error
	Relocate(id, from, to string, status models.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(collection, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Services").
		Where("collection = ? AND id = ?", collection, id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCollection(collection string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Services").
		Where("collection = ?", collection).
		Order("order_date asc").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(collection, id string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).
		Where("collection = ? AND id = ?", collection, id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Relocate moves an order between collections together with its status
// change in one statement, so a terminal transition can never leave the
// order duplicated in two collections or lost in neither.
func (r *orderRepository) Relocate(id, from, to string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).
		Where("collection = ? AND id = ?", from, id).
		Updates(map[string]interface{}{"collection": to, "status": status})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
