package model

import "time"

const (
	StatusNotFixed   = "not_fixed"
	StatusInProgress = "in_progress"
	StatusFixed      = "fixed"
)

// Categories lists the valid friction categories, in display order.
var Categories = []string{"home", "work", "digital", "health", "other"}

type FrictionItem struct {
	ID             int     `gorm:"primaryKey" json:"id"`
	Title          string  `gorm:"size:200" json:"title"`
	Description    *string `gorm:"size:1000" json:"description"`
	AnnoyanceLevel int     `json:"annoyance_level"`
	Category       string  `gorm:"size:50;index" json:"category"`
	Status         string  `gorm:"size:50;default:not_fixed;index" json:"status"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	FixedAt   *time.Time `json:"fixed_at"`

	EncounterCount    int     `json:"encounter_count"`
	EncounterLimit    *int    `json:"encounter_limit"`
	LastEncounterDate *string `gorm:"type:date" json:"last_encounter_date"`
}

// Setting is a single durable key/value pair. Absence of a row means the
// setting is unset, which is distinct from any numeric value.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `json:"value"`
}

func (FrictionItem) TableName() string { return "friction_items" }
func (Setting) TableName() string      { return "settings" }
