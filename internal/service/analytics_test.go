package service

import (
	"context"
	"testing"
	"time"

	"friction-log/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type analyticsFixture struct {
	db        *gorm.DB
	items     *ItemService
	settings  *SettingsService
	analytics *AnalyticsService
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()
	db := newTestDB(t)
	settings := NewSettingsService(db)
	return &analyticsFixture{
		db:        db,
		items:     NewItemService(db),
		settings:  settings,
		analytics: NewAnalyticsService(db, settings),
	}
}

func (f *analyticsFixture) fix(t *testing.T, id int) {
	t.Helper()
	_, err := f.items.Update(context.Background(), id, model.UpdateItemRequest{Status: strPtr(model.StatusFixed)})
	require.NoError(t, err)
}

func TestCurrentScoreActiveItems(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	createItem(t, f.items, "A", 3, "home")
	b := createItem(t, f.items, "B", 5, "work")
	createItem(t, f.items, "C", 2, "digital")
	f.fix(t, b.ID)

	score, err := f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, score.CurrentScore)
	assert.Equal(t, 2, score.ActiveCount)
	assert.Zero(t, score.TotalEncountersToday)
	assert.Zero(t, score.WeightedEncountersToday)
	assert.Zero(t, score.ItemsOverLimit)
	assert.Nil(t, score.GlobalLimitPercentage)
}

func TestCurrentScoreEncounterStats(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	a, err := f.items.Create(ctx, model.CreateItemRequest{
		Title: "a", AnnoyanceLevel: 3, Category: "work", EncounterLimit: intPtr(2),
	})
	require.NoError(t, err)
	b := createItem(t, f.items, "b", 2, "home")

	for i := 0; i < 2; i++ {
		_, _, err := f.items.RecordEncounter(ctx, a.ID)
		require.NoError(t, err)
	}
	_, _, err = f.items.RecordEncounter(ctx, b.ID)
	require.NoError(t, err)

	score, err := f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, score.TotalEncountersToday)
	assert.Equal(t, 2*3+1*2, score.WeightedEncountersToday)
	assert.Equal(t, 1, score.ItemsOverLimit)
	assert.Nil(t, score.GlobalLimitPercentage)

	// floor of weighted / global * 100
	require.NoError(t, f.settings.SetGlobalDailyLimit(ctx, intPtr(3)))
	score, err = f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	require.NotNil(t, score.GlobalLimitPercentage)
	assert.Equal(t, 266, *score.GlobalLimitPercentage)
}

func TestCurrentScoreIgnoresStaleEncounters(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	a := createItem(t, f.items, "a", 4, "digital")
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	require.NoError(t, f.db.Model(a).Updates(map[string]interface{}{
		"encounter_count":     7,
		"last_encounter_date": yesterday,
	}).Error)

	score, err := f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, score.CurrentScore)
	assert.Zero(t, score.TotalEncountersToday)
	assert.Zero(t, score.WeightedEncountersToday)
}

func TestCategoryBreakdown(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	createItem(t, f.items, "A", 3, "home")
	b := createItem(t, f.items, "B", 5, "work")
	createItem(t, f.items, "C", 2, "digital")
	f.fix(t, b.ID)

	breakdown, err := f.analytics.CategoryBreakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, &model.CategoryBreakdown{Home: 3, Digital: 2}, breakdown)

	score, err := f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	total := breakdown.Home + breakdown.Work + breakdown.Digital + breakdown.Health + breakdown.Other
	assert.Equal(t, score.CurrentScore, total)
}

func TestTrendEmpty(t *testing.T) {
	f := newAnalyticsFixture(t)

	points, err := f.analytics.Trend(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	today := time.Now()
	for i, p := range points {
		want := today.AddDate(0, 0, i-6).Format(dateLayout)
		assert.Equal(t, want, p.Date)
		assert.Zero(t, p.Score)
	}
}

func TestTrendLifetimeInterval(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	// created three days ago, fixed yesterday: counts on day -3 and -2 only
	created := time.Now().AddDate(0, 0, -3)
	fixed := time.Now().AddDate(0, 0, -1)
	item := model.FrictionItem{
		Title: "old gripe", AnnoyanceLevel: 3, Category: "home",
		Status: model.StatusFixed, CreatedAt: created, FixedAt: &fixed,
	}
	require.NoError(t, f.db.Create(&item).Error)

	points, err := f.analytics.Trend(ctx, 5)
	require.NoError(t, err)
	require.Len(t, points, 5)

	scores := make([]int, len(points))
	for i, p := range points {
		scores[i] = p.Score
	}
	assert.Equal(t, []int{0, 3, 3, 0, 0}, scores)
}

func TestTrendSingleDayMatchesCurrentScore(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	createItem(t, f.items, "a", 2, "home")
	createItem(t, f.items, "b", 4, "work")

	points, err := f.analytics.Trend(ctx, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, time.Now().Format(dateLayout), points[0].Date)

	score, err := f.analytics.CurrentScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, score.CurrentScore, points[0].Score)
}

func TestMostAnnoying(t *testing.T) {
	f := newAnalyticsFixture(t)
	ctx := context.Background()

	quiet := createItem(t, f.items, "quiet", 5, "home")
	busy := createItem(t, f.items, "busy", 2, "work")
	stale := createItem(t, f.items, "stale", 3, "digital")
	nag := createItem(t, f.items, "nag", 1, "other")
	gone := createItem(t, f.items, "gone", 5, "health")
	f.fix(t, gone.ID)

	for i := 0; i < 4; i++ {
		_, _, err := f.items.RecordEncounter(ctx, busy.ID)
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		_, _, err := f.items.RecordEncounter(ctx, nag.ID)
		require.NoError(t, err)
	}
	// yesterday's count must not leak into today's impact
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	require.NoError(t, f.db.Model(stale).Updates(map[string]interface{}{
		"encounter_count":     9,
		"last_encounter_date": yesterday,
	}).Error)

	ranked, err := f.analytics.MostAnnoying(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	// busy 4*2=8; quiet and nag tie at impact 5, annoyance level breaks it
	assert.Equal(t, busy.ID, ranked[0].ID)
	assert.Equal(t, 8, ranked[0].Impact)
	assert.Equal(t, 4, ranked[0].EncounterCount)

	assert.Equal(t, quiet.ID, ranked[1].ID)
	assert.Equal(t, 5, ranked[1].Impact)
	assert.Zero(t, ranked[1].EncounterCount)

	assert.Equal(t, nag.ID, ranked[2].ID)
	assert.Equal(t, 5, ranked[2].Impact)
	assert.Equal(t, 5, ranked[2].EncounterCount)

	assert.Equal(t, stale.ID, ranked[3].ID)
	assert.Equal(t, 3, ranked[3].Impact)
	assert.Zero(t, ranked[3].EncounterCount)

	top2, err := f.analytics.MostAnnoying(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, busy.ID, top2[0].ID)
	assert.Equal(t, quiet.ID, top2[1].ID)
}
