package model

import (
	"time"

	"gorm.io/datatypes"
)

// GameModel maps the games table. Genre and platform lists are stored as
// jsonb arrays; filtering uses the jsonb containment operator.
type GameModel struct {
	ID              string  `gorm:"type:varchar(64);primaryKey"`
	Name            string  `gorm:"type:varchar(255);not null"`
	Released        *string `gorm:"type:varchar(10)"`
	BackgroundImage string  `gorm:"type:text"`
	Rating          float64
	RatingsCount    int
	Platforms       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Genres          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name.
func (GameModel) TableName() string {
	return "games"
}
