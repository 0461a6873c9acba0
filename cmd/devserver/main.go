package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/devserver"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("logilink-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	srv := devserver.NewServer(cfg, log)

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("dev server run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
