package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cover-letter/internal/letter"
	"github.com/spigell/cover-letter/internal/logger"
	"github.com/spigell/cover-letter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cover letter HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 5000, "port to listen on")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cover letter service", zap.String("version", version))

	store, err := newProfileStore(config.Profile)
	if err != nil {
		logger.Fatal("loading candidate profile",
			zap.Error(err),
			zap.String("hint", "fill the 'profile' section of the configuration file or set profile.resume-file"),
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	researcher := newResearcher(config.Company)

	var remote letter.Remote
	writer, err := newAIWriter(ctx, config.AI, store, researcher, logger)
	switch {
	case errors.Is(err, errAIDisabled):
		logger.Warn("ai writer is disabled, every letter will use the built-in template")
	case err != nil:
		logger.Fatal("building ai writer", zap.Error(err))
	default:
		remote = writer
		logger.Info("ai writer is ready", zap.String("ai_model", writer.Model()))
	}

	orchestrator := letter.New(store, researcher, remote, config.Timeout, logger)

	srv := server.New(server.Config{
		Listen:         listenAddr(config.Server),
		AllowedOrigins: config.Server.AllowedOrigins,
	}, orchestrator, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("serving", zap.Error(err))
	}

	logger.Info("stopped")
}

func listenAddr(cfg *ServerConfig) string {
	if listen := strings.TrimSpace(cfg.Listen); listen != "" {
		return listen
	}
	if cfg.Port > 0 {
		return fmt.Sprintf(":%d", cfg.Port)
	}
	return server.DefaultListen
}
