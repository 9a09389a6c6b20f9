package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Round struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	GameID      string      `gorm:"size:36;index;not null;uniqueIndex:idx_rounds_game_number" json:"gameId"`
	PromptID    string      `gorm:"size:36;not null" json:"promptId"`
	RoundNumber int         `gorm:"not null;uniqueIndex:idx_rounds_game_number" json:"roundNumber"`
	IsFreeRound bool        `gorm:"not null;default:false" json:"isFreeRound"`
	Completed   bool        `gorm:"not null;default:false" json:"completed"`
	Situations  []Situation `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Round) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
