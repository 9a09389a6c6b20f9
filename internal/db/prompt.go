package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Prompt struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	GameID string `gorm:"size:36;index;not null" json:"gameId"`
	Text   string `gorm:"not null" json:"text"`
	Used   bool   `gorm:"not null;default:false" json:"used"`
}

func (p *Prompt) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
