package repository

import (
	"press_manager/internal/models"

	"gorm.io/gorm"
)

// CostRepository is append-only on purpose: the ledger has no update or
// delete path.
type CostRepository interface {
	Create(cost *models.Cost) error
	GetAll() ([]models.Cost, error)
}

type costRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Create(cost *models.Cost) error {
	return r.db.Create(cost).Error
}

func (r *costRepository) GetAll() ([]models.Cost, error) {
	var costs []models.Cost
	err := r.db.Order("created_at desc").Find(&costs).Error
	return costs, err
}
