package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries everything the service needs at startup. Nothing reads the
// environment after Load returns.
type Config struct {
	Port      string
	JWTSecret string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Command line for the external recommendation generator,
	// e.g. "python ./scripts/recommendation.py".
	RecommenderCmd string

	FoodSearchURL string

	SESRegion string
	SESSender string
}

var (
	DB  *gorm.DB
	App Config
)

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         getenv("DB_PORT", "5432"),
		RecommenderCmd: os.Getenv("RECOMMENDER_CMD"),
		FoodSearchURL:  getenv("FOOD_SEARCH_URL", "https://world.openfoodfacts.org/cgi/search.pl"),
		SESRegion:      getenv("SES_REGION", "us-east-1"),
		SESSender:      os.Getenv("SES_SENDER"),
	}

	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set")
	}

	App = cfg
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(cfg Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate is split out so tests can run the same schema against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.SleepRecord{},
		&models.Meal{},
		&models.Workout{},
		&models.Settings{},
		&models.CurrentProgress{},
	)
}
