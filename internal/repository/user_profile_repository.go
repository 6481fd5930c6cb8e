package repository

import (
	"errors"

	"codestreak_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepository struct {
	DB *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{DB: db}
}

func (r *UserProfileRepository) GetAll() ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	if err := r.DB.Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, storeErr(err)
	}
	return profiles, nil
}

func (r *UserProfileRepository) Get(uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("uid = ?", uid).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &profile, nil
}

func (r *UserProfileRepository) Save(profile *model.UserProfile) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *UserProfileRepository) Delete(uid string) error {
	if err := r.DB.Where("uid = ?", uid).Delete(&model.UserProfile{}).Error; err != nil {
		return storeErr(err)
	}
	return nil
}
