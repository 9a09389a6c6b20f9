package db

import (
	"time"

	"gorm.io/datatypes"
)

// Event is an append-only journal row recorded for every broadcast.
type Event struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	GameID    string         `gorm:"size:36;index;not null" json:"gameId"`
	Type      string         `gorm:"size:64;not null" json:"type"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
}
