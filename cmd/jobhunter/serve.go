package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmorales/jobhunter/internal/config"
	"github.com/jmorales/jobhunter/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume generation, artifact download, and application tracking endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	a, err := buildApp(cfg, nil)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer a.Close()

	srv := server.New(server.Config{Port: cfg.Port}, a.cache, a.artifacts, a.jobs)
	return srv.Start()
}
