package models

import "time"

// PlayerList is an ordered roster of player ids. It is persisted as a
// JSON-encoded text column so the postgres and sqlite drivers migrate the
// same model.
type PlayerList []int64

// Contains reports whether id is already on the roster.
func (p PlayerList) Contains(id int64) bool {
	for _, existing := range p {
		if existing == id {
			return true
		}
	}
	return false
}

// HasDuplicates reports whether the roster lists any player more than once.
func (p PlayerList) HasDuplicates() bool {
	seen := make(map[int64]bool, len(p))
	for _, id := range p {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

// Game represents a game session and its player roster.
//
// Version guards the read-modify-write on PlayerIDs: every roster update is
// conditional on the version it was computed from.
type Game struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	PlayerIDs PlayerList `gorm:"column:ids_players;serializer:json;type:text" json:"ids_players"`
	Version   uint       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}
