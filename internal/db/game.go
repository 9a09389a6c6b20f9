package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusLobby       = "LOBBY"
	StatusInProgress  = "IN_PROGRESS"
	StatusFreeRound   = "FREE_ROUND"
	StatusShowResults = "SHOW_RESULTS"
	StatusCompleted   = "COMPLETED"
)

type Game struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	RoomCode       string    `gorm:"size:6;uniqueIndex;not null" json:"roomCode"`
	Status         string    `gorm:"size:16;not null;default:LOBBY" json:"status"`
	HostID         string    `gorm:"size:36;not null" json:"hostId"`
	Theme          *string   `gorm:"size:64" json:"theme"`
	CurrentRoundID *string   `gorm:"size:36;uniqueIndex" json:"currentRoundId"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	Players        []Player  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Prompts        []Prompt  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Rounds         []Round   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
