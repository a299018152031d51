package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/leoatienza/portfolio-backend/api"
	"github.com/leoatienza/portfolio-backend/config"
	"github.com/leoatienza/portfolio-backend/database"
	"github.com/leoatienza/portfolio-backend/models"
	"github.com/leoatienza/portfolio-backend/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()
	if config.GetBool(c, "DEBUG", false) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := resolvePassword(c); err != nil {
		log.Fatal().Err(err).Msg("Error resolving database password")
	}

	dsn, err := config.DatabaseDSN(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error building database connection string")
	}

	db, err := database.Open(database.Options{
		DSN:          dsn,
		ReplicaDSNs:  config.GetList(c, "DATABASE_REPLICA_URLS"),
		MaxOpenConns: config.GetInt(c, "DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: config.GetInt(c, "DB_MAX_IDLE_CONNS", 5),
		SlowQuery:    time.Duration(config.GetInt(c, "DB_SLOW_QUERY_MS", 10000)) * time.Millisecond,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		models.GenerateModels(db)
		return
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		models.GenerateColumnMismatchReportStandalone(db)
		return
	}

	portfolio := services.NewPortfolioService(currentDB.ProjectRepo(), currentDB.CategoryRepo())

	if config.GetBool(c, "SEED", false) {
		if err := seed(c, currentDB, portfolio); err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		return
	}

	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := currentDB.Migrate(false); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
		log.Info().Msg("Schema migrated")
	}

	// both the listener and the signal watcher may report
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, portfolio, currentDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	closeDB(db)
}

// resolvePassword replaces PGPASSWORD with the SSM parameter named by
// PGPASSWORD_SSM_PARAM, when one is configured.
func resolvePassword(c map[string]string) error {
	if config.GetString(c, config.SSMParamKey("PGPASSWORD"), "") == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := config.NewSSMClient(ctx)
	if err != nil {
		return err
	}
	password, err := config.ResolveSecret(ctx, c, "PGPASSWORD", client)
	if err != nil {
		return err
	}
	c["PGPASSWORD"] = password
	return nil
}

// seed creates the schema and loads either SEED_FILE or the built-in data.
func seed(c map[string]string, db database.Database, portfolio *services.PortfolioService) error {
	reset := config.GetBool(c, "SEED_RESET", false)
	if err := db.Migrate(reset); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	data := services.DefaultSeed()
	if path := config.GetString(c, "SEED_FILE", ""); path != "" {
		loaded, err := services.LoadSeedFile(path)
		if err != nil {
			return err
		}
		data = loaded
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := portfolio.Seed(ctx, data)
	if err != nil {
		return err
	}
	log.Info().
		Bool("reset", reset).
		Int("categories", result.Categories).
		Int("projects", result.Projects).
		Msg("Seed complete")
	return nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database pool")
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-ch)
}
