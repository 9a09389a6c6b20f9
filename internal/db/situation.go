package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Number is the hidden ground-truth value assigned at creation; Position is
// where a player currently places the situation on the 0-100 scale.
type Situation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RoundID   string    `gorm:"size:36;index;not null" json:"roundId"`
	PlayerID  string    `gorm:"size:36;index;not null" json:"playerId"`
	Content   string    `gorm:"size:200;not null" json:"content"`
	Number    int       `gorm:"not null" json:"number"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	Player    *Player   `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}

func (s *Situation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
