package service

import (
	"context"
	"fmt"
	"time"

	"friction-log/internal/model"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService { return &ItemService{db: db} }

func (s *ItemService) Create(ctx context.Context, req model.CreateItemRequest) (*model.FrictionItem, error) {
	item := model.FrictionItem{
		Title:          req.Title,
		Description:    req.Description,
		AnnoyanceLevel: req.AnnoyanceLevel,
		Category:       req.Category,
		Status:         model.StatusNotFixed,
		EncounterLimit: req.EncounterLimit,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &item, nil
}

// List returns items newest first, ties in insertion order. Filters are
// exact matches and skipped when empty.
func (s *ItemService) List(ctx context.Context, status, category string) ([]model.FrictionItem, error) {
	q := s.db.WithContext(ctx).Model(&model.FrictionItem{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []model.FrictionItem
	if err := q.Order("created_at DESC, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id int) (*model.FrictionItem, error) {
	var item model.FrictionItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies the non-nil fields of req, then the fixed_at lifecycle rule:
// entering fixed stamps fixed_at, leaving fixed clears it, staying put leaves
// it untouched.
func (s *ItemService) Update(ctx context.Context, id int, req model.UpdateItemRequest) (*model.FrictionItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := item.Status

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.AnnoyanceLevel != nil {
		item.AnnoyanceLevel = *req.AnnoyanceLevel
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.EncounterLimit != nil {
		item.EncounterLimit = req.EncounterLimit
	}

	if oldStatus != model.StatusFixed && item.Status == model.StatusFixed {
		now := time.Now()
		item.FixedAt = &now
	} else if oldStatus == model.StatusFixed && item.Status != model.StatusFixed {
		item.FixedAt = nil
	}

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.FrictionItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RecordEncounter bumps today's encounter count, starting over at 1 on the
// first encounter of a calendar day. The returned flag reports whether the
// per-item limit is now reached; the increment itself is never blocked.
func (s *ItemService) RecordEncounter(ctx context.Context, id int) (*model.FrictionItem, bool, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	today := time.Now().Format(dateLayout)
	if item.LastEncounterDate == nil || *item.LastEncounterDate != today {
		item.EncounterCount = 1
		item.LastEncounterDate = &today
	} else {
		item.EncounterCount++
	}

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, false, fmt.Errorf("record encounter: %w", err)
	}

	exceeded := item.EncounterLimit != nil && item.EncounterCount >= *item.EncounterLimit
	return item, exceeded, nil
}
