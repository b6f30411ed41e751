package repository

import (
	"errors"

	"press_manager/internal/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByDeviceID(deviceID string) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) GetByDeviceID(deviceID string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "device_id = ?", deviceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := r.db.Find(&admins).Error
	return admins, err
}
