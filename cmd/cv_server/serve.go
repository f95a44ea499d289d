package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Naiitikk/cv-creator/internal/config"
	"github.com/Naiitikk/cv-creator/internal/llm"
	"github.com/Naiitikk/cv-creator/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating CV content, cover letters, and paginated PDF exports.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file (environment variables win)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	return server.New(cfg, client).Start()
}

func loadConfig() (*config.Config, error) {
	if serveConfigPath != "" {
		cfg, err := config.LoadFile(serveConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		return cfg, nil
	}
	return config.FromEnv(), nil
}
