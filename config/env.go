package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort      string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	StripeSecret string
	FBServiceKey string
	SiteDomain   string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = os.Getenv("APP_PORT")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = os.Getenv("MONGO_DB_NAME")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.StripeSecret = os.Getenv("STRIPE_SECRET")
	Env.FBServiceKey = os.Getenv("FB_SERVICE_KEY")
	Env.SiteDomain = os.Getenv("SITE_DOMAIN")
}
