package models

import "time"

// Round represents one round of a game, an opaque data blob owned by the
// game it belongs to.
type Round struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	GameID    uint      `gorm:"not null;index" json:"game_id"`
	Data      string    `gorm:"not null" json:"data"`
	CreatedAt time.Time `json:"created_at"`

	Game Game `gorm:"foreignKey:GameID" json:"-"`
}
