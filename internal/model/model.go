package model

type CreateItemRequest struct {
	Title          string  `json:"title" binding:"required,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	AnnoyanceLevel int     `json:"annoyance_level" binding:"required,min=1,max=5"`
	Category       string  `json:"category" binding:"required,oneof=home work digital health other"`
	EncounterLimit *int    `json:"encounter_limit" binding:"omitempty,min=1"`
}

// UpdateItemRequest carries a partial update: only non-nil fields are applied.
type UpdateItemRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=1000"`
	AnnoyanceLevel *int    `json:"annoyance_level" binding:"omitempty,min=1,max=5"`
	Category       *string `json:"category" binding:"omitempty,oneof=home work digital health other"`
	Status         *string `json:"status" binding:"omitempty,oneof=not_fixed in_progress fixed"`
	EncounterLimit *int    `json:"encounter_limit" binding:"omitempty,min=1"`
}

type EncounterResponse struct {
	FrictionItem
	IsLimitExceeded bool `json:"is_limit_exceeded"`
}

type CurrentScore struct {
	CurrentScore            int  `json:"current_score"`
	ActiveCount             int  `json:"active_count"`
	TotalEncountersToday    int  `json:"total_encounters_today"`
	WeightedEncountersToday int  `json:"weighted_encounters_today"`
	ItemsOverLimit          int  `json:"items_over_limit"`
	GlobalLimitPercentage   *int `json:"global_limit_percentage"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type CategoryBreakdown struct {
	Home    int `json:"home"`
	Work    int `json:"work"`
	Digital int `json:"digital"`
	Health  int `json:"health"`
	Other   int `json:"other"`
}

// AnnoyingItem is one entry of the most-annoying ranking. EncounterCount is
// today's count and is reported as 0 when the item has no encounter today.
type AnnoyingItem struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Category       string `json:"category"`
	AnnoyanceLevel int    `json:"annoyance_level"`
	EncounterCount int    `json:"encounter_count"`
	Impact         int    `json:"impact"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	Name string `json:"name"`
}
