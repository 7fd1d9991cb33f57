package game

import (
	"errors"

	"equarior/backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrGameNotFound is returned when the requested game does not exist.
	ErrGameNotFound = errors.New("game not found")
	// ErrAlreadyJoined is returned when the player is already on the roster.
	ErrAlreadyJoined = errors.New("Player already in game")
	// ErrContention is returned when a roster update keeps losing the
	// version race and runs out of attempts.
	ErrContention = errors.New("game roster is being updated concurrently")
	// ErrDuplicatePlayers is returned when a requested roster lists a
	// player more than once.
	ErrDuplicatePlayers = errors.New("player list contains duplicates")
)

// joinAttempts bounds the retry loop in Join. Contention on a single game
// row resolves within a couple of rounds; hitting the bound means something
// is persistently rewriting the row.
const joinAttempts = 16

// Create inserts a game with the given roster.
func Create(db *gorm.DB, playerIDs models.PlayerList) (*models.Game, error) {
	if playerIDs.HasDuplicates() {
		return nil, ErrDuplicatePlayers
	}
	if playerIDs == nil {
		playerIDs = models.PlayerList{}
	}

	g := models.Game{PlayerIDs: playerIDs}
	if err := db.Create(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateWithPlayer inserts a game whose roster is exactly the given player.
func CreateWithPlayer(db *gorm.DB, playerID int64) (*models.Game, error) {
	return Create(db, models.PlayerList{playerID})
}

// Join appends playerID to the game's roster, preserving order, and rejects
// duplicate joins.
//
// The check-then-append must be linearized per game row: two concurrent
// joins reading the same roster would otherwise both pass the duplicate
// check and one write would overwrite the other. The update is therefore
// conditional on the version the roster was read at; losing the race leaves
// the row untouched and the loop re-reads and re-checks.
func Join(db *gorm.DB, gameID uint, playerID int64) (*models.Game, error) {
	for attempt := 0; attempt < joinAttempts; attempt++ {
		var g models.Game
		if err := db.First(&g, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGameNotFound
			}
			return nil, err
		}

		if g.PlayerIDs.Contains(playerID) {
			return nil, ErrAlreadyJoined
		}

		updated := make(models.PlayerList, 0, len(g.PlayerIDs)+1)
		updated = append(updated, g.PlayerIDs...)
		updated = append(updated, playerID)

		res := db.Model(&models.Game{}).
			Where("id = ? AND version = ?", g.ID, g.Version).
			Select("ids_players", "version").
			Updates(&models.Game{PlayerIDs: updated, Version: g.Version + 1})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			g.PlayerIDs = updated
			g.Version++
			return &g, nil
		}
		// Lost the version race; another join landed first.
	}
	return nil, ErrContention
}
