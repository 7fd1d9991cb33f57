package handler

import (
	"errors"
	"net/http"
	"strconv"

	"equarior/backend/internal/database"
	"equarior/backend/internal/game"
	"equarior/backend/internal/models"
	"equarior/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// GameInput defines the structure for creating a game with an initial roster.
type GameInput struct {
	PlayerIDs models.PlayerList `json:"ids_players"`
}

// Hello godoc
// @Summary      Test route
// @Tags         games
// @Produce      plain
// @Security     BearerAuth
// @Success      200 {string} string "Hello, world!"
// @Router       /game/hello [get]
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello, world!")
}

// CreateGame godoc
// @Summary      Create a game
// @Description  Creates a game with the given initial player roster.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Initial roster"
// @Success      200  {object}  models.Game
// @Failure      400  {object}  ErrorResponse "Duplicate players in roster"
// @Router       /game [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": err.Error()})
		return
	}

	g, err := game.Create(database.DB, input.PlayerIDs)
	if err != nil {
		if errors.Is(err, game.ErrDuplicatePlayers) {
			c.JSON(http.StatusBadRequest, gin.H{"details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to create game"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// GetGameByID godoc
// @Summary      Get a game by ID
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /game/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid game ID"})
		return
	}

	var g models.Game
	if err := database.DB.First(&g, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"details": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// ListGames godoc
// @Summary      List games
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Game
// @Router       /game [get]
func ListGames(c *gin.Context) {
	var games []models.Game
	if err := database.DB.Scopes(PageScope(c)).Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to retrieve games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

// CreateGameFromToken godoc
// @Summary      Create a game for a token's player
// @Description  Creates a game whose sole player is the subject of the token carried in the path.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        token path string true "Signed token naming the player"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse "Malformed subject"
// @Failure      401 {object} ErrorResponse "Invalid token"
// @Router       /game/{token} [post]
func CreateGameFromToken(c *gin.Context) {
	playerID, ok := playerFromPathToken(c)
	if !ok {
		return
	}

	g, err := game.CreateWithPlayer(database.DB, playerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to create game"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// JoinGame godoc
// @Summary      Join a game
// @Description  Adds the token's subject to the game roster; duplicate joins are rejected.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        token path string true "Signed token naming the joining player"
// @Param        id    path int    true "Game ID"
// @Success      200 {object} models.Game
// @Failure      400 {object} ErrorResponse "Malformed subject or game ID"
// @Failure      401 {object} ErrorResponse "Invalid token"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      409 {object} ErrorResponse "Player already in game"
// @Router       /game/{token}/{id} [post]
func JoinGame(c *gin.Context) {
	playerID, ok := playerFromPathToken(c)
	if !ok {
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Invalid game ID"})
		return
	}

	g, err := game.Join(database.DB, uint(gameID), playerID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, g)
	case errors.Is(err, game.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"details": "Game not found"})
	case errors.Is(err, game.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"details": "Player already in game"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"details": "Failed to join game"})
	}
}

// playerFromPathToken resolves the player id named by the token path
// segment. The group's AuthMiddleware has already authenticated the caller;
// this token names the player being acted on and is verified through the
// same jwt entry point. On failure a response has been written and ok is
// false.
func playerFromPathToken(c *gin.Context) (int64, bool) {
	subject, err := jwt.ParseSubject(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"details": err.Error()})
		return 0, false
	}

	playerID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"details": "Token subject is not a player id"})
		return 0, false
	}

	return playerID, true
}
