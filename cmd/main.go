package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"babytrack/internal/handlers"
	"babytrack/internal/logger"
	"babytrack/internal/repository"
	"babytrack/internal/server"
	"babytrack/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultSchedulerTick = 30 * time.Second

// @title           babytrack API
// @version         1.0
// @description     Baby-care tracking backend: feedings, stool, growth, analysis, reminders, providers.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, serviceConfig(log))
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start reminder scheduler (via composed service)
	go services.Scheduler.Run(ctx, schedulerTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("babytrack")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

// serviceConfig assembles service-level settings from config/env.
func serviceConfig(log *logger.Logger) service.Config {
	key := viper.GetString("jwt.signing_key")
	if key == "" {
		key = os.Getenv("JWT_SIGNING_KEY")
	}
	if key == "" {
		log.Fatalw("jwt.signing_key not set in config or JWT_SIGNING_KEY env")
	}
	return service.Config{
		JWTSigningKey: key,
		TokenTTL:      viper.GetDuration("jwt.ttl"),
	}
}

func schedulerTick() time.Duration {
	if d := viper.GetDuration("scheduler.tick"); d > 0 {
		return d
	}
	return defaultSchedulerTick
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "babytrack.db")
		dbPath = "babytrack.db"
	}
	return repository.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
