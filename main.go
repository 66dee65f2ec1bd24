package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asadullah-dev/portfolio-site-backend/api"
	"github.com/asadullah-dev/portfolio-site-backend/config"
	"github.com/asadullah-dev/portfolio-site-backend/content"
	"github.com/asadullah-dev/portfolio-site-backend/database"
	"github.com/asadullah-dev/portfolio-site-backend/services"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	c := config.New()

	var db database.Database
	var source content.Source

	// DATABASE_URL presence is the single mode switch: set means store mode
	// (seeded Postgres catalog plus the content API), absent means static
	// mode (compiled-in catalog, no API routes).
	if config.Has(c, "DATABASE_URL") {
		gormDB, err := openDatabase(config.GetString(c, "DATABASE_URL", ""))
		if err != nil {
			log.Error().Err(err).Msg("Error connecting to database")
			os.Exit(1)
		}

		db = database.New(gormDB)

		if err := db.Migrate(); err != nil {
			log.Error().Err(err).Msg("Error migrating database schema")
			os.Exit(1)
		}

		if err := services.SeedCatalog(db); err != nil {
			log.Error().Err(err).Msg("Error seeding content catalog")
			os.Exit(1)
		}

		source = content.NewBackedSource(db)
		log.Info().Msg("Running in store mode")
	} else {
		log.Warn().Msg("DATABASE_URL not set. Running in static mode without database.")
		db = database.New(nil)
		source = content.NewStaticSource()
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(source, db)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func openDatabase(connStr string) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// Test database connection
	var result int
	if err := gormDB.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, err
	}

	return gormDB, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
