package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lkaiyu/richman-backend/app/controllers"
	"github.com/lkaiyu/richman-backend/pkg/routes"
	"github.com/lkaiyu/richman-backend/platform/database"
	"github.com/lkaiyu/richman-backend/platform/logging"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatal(err)
	}
	db.Close()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JWTSecret(),
	}))

	app.Get("/user/cur", controllers.Cur)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4101"
	}
	log.Fatal(app.Listen(":" + port))
}
