package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Player struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	GameID string `gorm:"size:36;index;not null" json:"gameId"`
	Name   string `gorm:"size:50;not null" json:"name"`
	Color  string `gorm:"size:7;not null" json:"color"`
	IsHost bool   `gorm:"not null;default:false" json:"isHost"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
