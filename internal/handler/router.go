package handler

import (
	"equarior/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API surface on the given engine. Everything
// except registration and login sits behind the auth middleware.
func RegisterRoutes(router *gin.Engine) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", RegisterUser)
		authRoutes.POST("/login", LoginUser)
		authRoutes.POST("/logout", auth.AuthMiddleware(), LogoutUser)
	}

	userRoutes := router.Group("/user")
	userRoutes.Use(auth.AuthMiddleware())
	{
		userRoutes.GET("", ListUsers)
		userRoutes.GET("/:id", GetUserByID)
		userRoutes.POST("", CreateUser)
		userRoutes.PATCH("/:id", UpdateUser)
		userRoutes.DELETE("/:id", DeleteUser)
	}

	gameRoutes := router.Group("/game")
	gameRoutes.Use(auth.AuthMiddleware())
	{
		gameRoutes.GET("/hello", Hello)
		gameRoutes.GET("", ListGames)
		gameRoutes.GET("/:id", GetGameByID)
		gameRoutes.POST("", CreateGame)
		gameRoutes.POST("/:token", CreateGameFromToken)
		gameRoutes.POST("/:token/:id", JoinGame)
	}

	roundRoutes := router.Group("/round")
	roundRoutes.Use(auth.AuthMiddleware())
	{
		roundRoutes.GET("", ListRounds)
		roundRoutes.GET("/:id", GetRoundByID)
		roundRoutes.GET("/game/:game_id", ListRoundsByGame)
		roundRoutes.POST("", CreateRound)
		roundRoutes.PATCH("/:id", UpdateRound)
		roundRoutes.DELETE("/:id", DeleteRound)
	}
}
