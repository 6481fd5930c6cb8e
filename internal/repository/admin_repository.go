package repository

import (
	"errors"

	"codestreak_backend/internal/model"
	"codestreak_backend/internal/util"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) FindByEmail(email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := r.DB.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &admin, nil
}

func (r *AdminRepository) Count() (int64, error) {
	var count int64
	if err := r.DB.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}

func (r *AdminRepository) Create(admin *model.AdminUser) error {
	if err := r.DB.Create(admin).Error; err != nil {
		return storeErr(err)
	}
	return nil
}
