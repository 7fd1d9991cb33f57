package main

import (
	"fmt"
	"log"

	"equarior/backend/internal/config"
	"equarior/backend/internal/database"
	"equarior/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "equarior/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Equarior API
// @version         1.0
// @description     Multiplayer game backend: accounts, games and rounds.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(router)

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
