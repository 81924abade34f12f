package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ajit0013/SugarHealthTracker/models"
)

type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"sugartracker"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	USDAAPIKey  string `env:"USDA_API_KEY" envDefault:"DEMO_KEY"`
	USDABaseURL string `env:"USDA_BASE_URL"`
	OFFBaseURL  string `env:"OFF_BASE_URL"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

var (
	App Config
	DB  *gorm.DB
)

// Load reads .env (when present) and the environment into App, and sets up
// the global JSON logger.
func Load() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := env.Parse(&App); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// InitDB connects to postgres, migrates the schema and seeds the single
// implicit user every store operation is scoped to.
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		App.DBHost, App.DBUser, App.DBPassword, App.DBName, App.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.TrackerEntry{},
		&models.FavoriteFood{},
		&models.SugarInsight{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}

	seedDefaultUser()
}

func seedDefaultUser() {
	var user models.User
	if err := DB.First(&user, models.DefaultUserID).Error; err == nil {
		return
	}
	user = models.User{
		Model:            gorm.Model{ID: models.DefaultUserID},
		Username:         "default",
		DailySugarLimitG: 25.0,
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Fatal().Err(err).Msg("seeding default user failed")
	}
}
