package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	intconfig "cabbooking/internal/config"
	"cabbooking/internal/logger"
	"cabbooking/internal/session"

	"github.com/sirupsen/logrus"
)

func main() {
	env := intconfig.LoadEnv()
	if os.Getenv("LOG_LEVEL") == "" {
		// Keep info lines off the interactive terminal unless asked for.
		env.LogLevel = "warn"
	}
	logger.Setup(env)

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		logrus.Fatalf("Error connecting to the database: %v", err)
	}
	defer intconfig.CloseDB()

	// The session blocks on stdin, so an interrupt releases the DB here and exits.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		intconfig.CloseDB()
		os.Exit(130)
	}()

	ctx := context.Background()
	if err := intconfig.EnsureSchema(ctx, db); err != nil {
		logrus.Errorf("Error preparing schema: %v", err)
		return
	}

	s := session.Session{In: os.Stdin, Out: os.Stdout, Close: intconfig.CloseDB}
	if err := s.Run(ctx); err != nil {
		logrus.Errorf("session ended: %v", err)
	}
}
