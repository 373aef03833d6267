package repository

import (
	"barbershop/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
)

type DefaultKeyValueRepository struct {
	db *gorm.DB
}

func NewKeyValueRepository(db *gorm.DB) *DefaultKeyValueRepository {
	return &DefaultKeyValueRepository{db: db}
}

// Get returns the value stored under key. A missing key is not an error.
func (r *DefaultKeyValueRepository) Get(key string) (string, bool, error) {
	var kv entity.KeyValue
	err := r.db.Where(&entity.KeyValue{Key: key}).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return kv.Value, true, nil
}

// Set replaces whatever was stored under key.
func (r *DefaultKeyValueRepository) Set(key, value string) error {
	return r.db.Save(&entity.KeyValue{Key: key, Value: value}).Error
}
