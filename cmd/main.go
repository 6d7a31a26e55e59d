// @title           Blog API
// @version         1.0
// @description     Users, articles and comments with JWT authentication and admin/user roles.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "blogapi/docs"
	"blogapi/internal/config"
	"blogapi/internal/handlers"
	"blogapi/internal/logger"
	"blogapi/internal/repository"
	"blogapi/internal/repository/db"
	"blogapi/internal/server"
	"blogapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	log.Infow("config loaded", "config", cfg.String())

	// open DB
	conn, err := openDB(cfg, log)
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
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	if err := seedAdmin(services, cfg.Admin, log); err != nil {
		log.Fatalw("failed to seed admin", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// seedAdmin creates the configured admin account when it does not exist yet.
func seedAdmin(auth service.Authorization, admin config.AdminConfig, log *logger.Logger) error {
	if admin.Email == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := auth.EnsureAdmin(ctx, service.RegisterInput{
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
	})
	if err != nil {
		return err
	}
	if created {
		log.Infow("admin account created", "email", admin.Email)
	}
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
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
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
