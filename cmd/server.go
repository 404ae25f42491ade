package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"zoomguess/internal/config"
	"zoomguess/internal/core"
	"zoomguess/internal/db"
	"zoomguess/internal/http/handler"
	"zoomguess/internal/http/handler/middleware"
	"zoomguess/internal/http/payload"
	"zoomguess/internal/http/server"
	"zoomguess/internal/repository"
	"zoomguess/pkg/jwt"
	"zoomguess/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("zoomguess", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewGameRepository(dbConn)

	err = repo.MigrateTables(
		&repository.User{},
		&repository.Guess{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	err = repo.SeedUserTable(context.Background())
	if err != nil {
		logger.Errorw("failed to seed user table", "error", err)
		return err
	}

	err = repo.SeedGuessTable(context.Background())
	if err != nil {
		logger.Errorw("failed to seed guess table", "error", err)
		return err
	}

	// game service
	game := core.NewGame(
		logger,
		repo,
		jwtService)

	// handler
	gameHlr := handler.NewGameHandler(
		logger,
		payload.Decoder{},
		game)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterUser, gameHlr.HandleRegisterUser)
	mux.HandleFunc(handler.Authenticate, gameHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetUser, gameHlr.HandleGetUser)
	mux.HandleFunc(handler.DeleteUser, gameHlr.HandleDeleteUser)
	mux.HandleFunc(handler.GetLeaderboard, gameHlr.HandleGetLeaderboard)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
