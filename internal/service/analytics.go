package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"friction-log/internal/model"

	"gorm.io/gorm"
)

// AnalyticsService computes read-only aggregates over the item collection.
// Every call re-scans the full set; the data is single-user sized.
type AnalyticsService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewAnalyticsService(db *gorm.DB, settings *SettingsService) *AnalyticsService {
	return &AnalyticsService{db: db, settings: settings}
}

func (s *AnalyticsService) activeItems(ctx context.Context) ([]model.FrictionItem, error) {
	var items []model.FrictionItem
	err := s.db.WithContext(ctx).Where("status <> ?", model.StatusFixed).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("query active items: %w", err)
	}
	return items, nil
}

func (s *AnalyticsService) CurrentScore(ctx context.Context) (*model.CurrentScore, error) {
	items, err := s.activeItems(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	score := model.CurrentScore{ActiveCount: len(items)}
	for _, it := range items {
		score.CurrentScore += it.AnnoyanceLevel
		if it.LastEncounterDate == nil || *it.LastEncounterDate != today {
			continue
		}
		score.TotalEncountersToday += it.EncounterCount
		score.WeightedEncountersToday += it.EncounterCount * it.AnnoyanceLevel
		if it.EncounterLimit != nil && it.EncounterCount >= *it.EncounterLimit {
			score.ItemsOverLimit++
		}
	}

	globalLimit, err := s.settings.GlobalDailyLimit(ctx)
	if err != nil {
		return nil, err
	}
	if globalLimit != nil && *globalLimit > 0 {
		pct := score.WeightedEncountersToday * 100 / *globalLimit
		score.GlobalLimitPercentage = &pct
	}

	return &score, nil
}

// Trend recomputes the score for each of the last days calendar dates ending
// today, ascending. An item counts on a date d when its lifetime interval
// [created_date, fixed_date) contains d.
func (s *AnalyticsService) Trend(ctx context.Context, days int) ([]model.TrendPoint, error) {
	var items []model.FrictionItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	now := time.Now()
	points := make([]model.TrendPoint, 0, days)
	for n := days - 1; n >= 0; n-- {
		day := now.AddDate(0, 0, -n).Format(dateLayout)
		score := 0
		for _, it := range items {
			if it.CreatedAt.Format(dateLayout) > day {
				continue
			}
			if it.FixedAt != nil && it.FixedAt.Format(dateLayout) <= day {
				continue
			}
			score += it.AnnoyanceLevel
		}
		points = append(points, model.TrendPoint{Date: day, Score: score})
	}
	return points, nil
}

func (s *AnalyticsService) CategoryBreakdown(ctx context.Context) (*model.CategoryBreakdown, error) {
	items, err := s.activeItems(ctx)
	if err != nil {
		return nil, err
	}

	var b model.CategoryBreakdown
	for _, it := range items {
		switch it.Category {
		case "home":
			b.Home += it.AnnoyanceLevel
		case "work":
			b.Work += it.AnnoyanceLevel
		case "digital":
			b.Digital += it.AnnoyanceLevel
		case "health":
			b.Health += it.AnnoyanceLevel
		case "other":
			b.Other += it.AnnoyanceLevel
		}
	}
	return &b, nil
}

// MostAnnoying ranks active items by impact: today's encounter count times
// annoyance level, or bare annoyance level (with count reported as 0) when
// the item has no encounter today. Ties resolve by annoyance level.
func (s *AnalyticsService) MostAnnoying(ctx context.Context, limit int) ([]model.AnnoyingItem, error) {
	items, err := s.activeItems(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	ranked := make([]model.AnnoyingItem, 0, len(items))
	for _, it := range items {
		count := 0
		if it.LastEncounterDate != nil && *it.LastEncounterDate == today {
			count = it.EncounterCount
		}
		impact := it.AnnoyanceLevel
		if count > 0 {
			impact = count * it.AnnoyanceLevel
		}
		ranked = append(ranked, model.AnnoyingItem{
			ID:             it.ID,
			Title:          it.Title,
			Category:       it.Category,
			AnnoyanceLevel: it.AnnoyanceLevel,
			EncounterCount: count,
			Impact:         impact,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Impact != ranked[j].Impact {
			return ranked[i].Impact > ranked[j].Impact
		}
		return ranked[i].AnnoyanceLevel > ranked[j].AnnoyanceLevel
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
