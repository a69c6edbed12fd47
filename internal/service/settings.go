package service

import (
	"context"
	"fmt"
	"strconv"

	"friction-log/internal/model"

	"gorm.io/gorm"
)

const globalDailyLimitKey = "global_daily_limit"

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{db: db} }

// GlobalDailyLimit returns nil without error when the setting is unset.
func (s *SettingsService) GlobalDailyLimit(ctx context.Context) (*int, error) {
	// struct condition so the dialect quotes the reserved column name
	var setting model.Setting
	err := s.db.WithContext(ctx).Where(&model.Setting{Key: globalDailyLimitKey}).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query setting: %w", err)
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil {
		return nil, fmt.Errorf("parse setting %q: %w", setting.Value, err)
	}
	return &n, nil
}

// SetGlobalDailyLimit stores the limit, or removes the row when limit is nil.
func (s *SettingsService) SetGlobalDailyLimit(ctx context.Context, limit *int) error {
	if limit == nil {
		err := s.db.WithContext(ctx).Delete(&model.Setting{Key: globalDailyLimitKey}).Error
		if err != nil {
			return fmt.Errorf("clear setting: %w", err)
		}
		return nil
	}

	var existing model.Setting
	err := s.db.WithContext(ctx).Where(&model.Setting{Key: globalDailyLimitKey}).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		setting := model.Setting{Key: globalDailyLimitKey, Value: strconv.Itoa(*limit)}
		if err := s.db.WithContext(ctx).Create(&setting).Error; err != nil {
			return fmt.Errorf("insert setting: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query setting: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&existing).Update("value", strconv.Itoa(*limit)).Error; err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	return nil
}
