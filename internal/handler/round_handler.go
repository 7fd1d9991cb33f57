package handler

import (
	"net/http"
	"strconv"

	"equarior/backend/internal/database"
	"equarior/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RoundInput defines the structure for creating a round.
type RoundInput struct {
	GameID uint   `json:"game_id" binding:"required"`
	Data   string `json:"data" binding:"required"`
}

// UpdateRoundInput defines the full-data replacement accepted by PATCH.
type UpdateRoundInput struct {
	Data string `json:"data" binding:"required"`
}

// ListRounds godoc
// @Summary      List rounds
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Round
// @Router       /round [get]
func ListRounds(c *gin.Context) {
	var rounds []models.Round
	if err := database.DB.Scopes(PageScope(c)).Find(&rounds).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to retrieve rounds"})
		return
	}

	c.JSON(http.StatusOK, rounds)
}

// GetRoundByID godoc
// @Summary      Get a round by ID
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Round ID"
// @Success      200 {object} models.Round
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Round not found"
// @Router       /round/{id} [get]
func GetRoundByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid round ID"})
		return
	}

	var round models.Round
	if err := database.DB.First(&round, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"details": "Round not found"})
		return
	}

	c.JSON(http.StatusOK, round)
}

// ListRoundsByGame godoc
// @Summary      List the rounds of a game
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        game_id path int true "Game ID"
// @Success      200 {array} models.Round
// @Failure      400 {object} ErrorResponse
// @Router       /round/game/{game_id} [get]
func ListRoundsByGame(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid game ID"})
		return
	}

	var rounds []models.Round
	if err := database.DB.Where("game_id = ?", uint(gameID)).Find(&rounds).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to retrieve rounds"})
		return
	}

	c.JSON(http.StatusOK, rounds)
}

// CreateRound godoc
// @Summary      Create a round
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RoundInput true "Round Info"
// @Success      200 {object} models.Round
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /round [post]
func CreateRound(c *gin.Context) {
	var input RoundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": err.Error()})
		return
	}

	var g models.Game
	if err := database.DB.First(&g, input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"details": "Game not found"})
		return
	}

	round := models.Round{
		GameID: input.GameID,
		Data:   input.Data,
	}
	if err := database.DB.Create(&round).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to create round"})
		return
	}

	c.JSON(http.StatusOK, round)
}

// UpdateRound godoc
// @Summary      Replace a round's data
// @Description  Rounds are immutable except for full replacement of the data blob.
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true "Round ID"
// @Param        input body      UpdateRoundInput true "Replacement data"
// @Success      200   {object}  models.Round
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Round not found"
// @Router       /round/{id} [patch]
func UpdateRound(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid round ID"})
		return
	}

	var round models.Round
	if err := database.DB.First(&round, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"details": "Round not found"})
		return
	}

	var input UpdateRoundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": err.Error()})
		return
	}

	if err := database.DB.Model(&round).Update("data", input.Data).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to update round"})
		return
	}

	c.JSON(http.StatusOK, round)
}

// DeleteRound godoc
// @Summary      Delete a round
// @Tags         rounds
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Round ID"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Round not found"
// @Router       /round/{id} [delete]
func DeleteRound(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid round ID"})
		return
	}

	result := database.DB.Delete(&models.Round{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to delete round"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"details": "Round not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
