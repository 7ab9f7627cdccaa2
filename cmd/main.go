package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "movie-manager/docs"
	"movie-manager/internal/handlers"
	"movie-manager/internal/logger"
	"movie-manager/internal/repository"
	"movie-manager/internal/repository/db"
	"movie-manager/internal/server"
	"movie-manager/internal/service"

	"github.com/spf13/viper"
)

const defaultDBPath = "movies.db"

// @title           Movie Manager API
// @version         1.0
// @description     Per-user movie catalog behind JWT bearer auth.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger with the configured level
	log := logger.Get(viper.GetString("log.level"))
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, authConfig(log))
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

// authConfig builds the token settings from config. A missing signing key is fatal.
func authConfig(log *logger.Logger) service.AuthConfig {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Fatalw("auth.signing_key is not set in config")
	}
	ttl := time.Duration(viper.GetInt("auth.token_ttl_minutes")) * time.Minute
	return service.AuthConfig{SigningKey: []byte(key), TokenTTL: ttl}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8000"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
