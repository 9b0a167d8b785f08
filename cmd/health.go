package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/logger"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the cover letter backend is reachable",
	Run: func(cmd *cobra.Command, _ []string) {
		health(cmd)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func health(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	client := newBackendClient(config.Backend, logger)

	status, err := client.Health(cmd.Context())
	if err != nil {
		logger.Fatal("backend is not healthy",
			zap.String("url", client.BaseURL),
			zap.Error(err),
		)
	}

	logger.Info("backend is healthy",
		zap.String("url", client.BaseURL),
		zap.String("status", status.Status),
		zap.String("message", status.Message),
	)
}
