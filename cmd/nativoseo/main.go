package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jacobisaldana/nativoseo-app/app/repository"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/cache"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/database"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/env"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/middleware"
	"github.com/Jacobisaldana/nativoseo-app/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "8000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	// init fiber app
	app := fiber.New(fiber.Config{
		AppName:   "NativoSEO",
		BodyLimit: 26214400, // 25 MiB, photo uploads
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// frontend origin
	app.Use(cors.New(cors.Config{
		AllowOrigins: env.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// resolve the app user from the bearer token on every request
	app.Use(middleware.UserContextMiddleware)

	// ROUTER
	router.InstallRouter(app)

	return app
}
