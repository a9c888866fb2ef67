package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Rafi570/Scholarship-Management-System-server-2/app/gateway"
	"github.com/Rafi570/Scholarship-Management-System-server-2/config"
	"github.com/Rafi570/Scholarship-Management-System-server-2/db"
	"github.com/Rafi570/Scholarship-Management-System-server-2/helper"
	"github.com/Rafi570/Scholarship-Management-System-server-2/middleware"
	"github.com/Rafi570/Scholarship-Management-System-server-2/route"
)

func main() {
	config.Logger()
	config.LoadEnv()

	database := db.Connect()

	var verifier middleware.TokenVerifier
	if config.Env.FBServiceKey != "" {
		fb, err := middleware.NewFirebaseVerifier(context.Background(), config.Env.FBServiceKey)
		if err != nil {
			log.Fatal("Failed to init Firebase verifier:", err)
		}
		verifier = fb
	} else {
		log.Println("Warning: FB_SERVICE_KEY not set, falling back to HS256 dev tokens")
		verifier = helper.DevVerifier{Secret: config.Env.JWTSecret}
	}

	payments := gateway.NewStripeGateway(config.Env.StripeSecret)

	app := config.NewApp()

	route.SetupRoutes(app, database, verifier, payments, config.Env.SiteDomain)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})

	port := config.Env.AppPort
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
