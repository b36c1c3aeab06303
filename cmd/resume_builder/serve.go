package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
	serveTemplate   string
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes editing sessions, LaTeX downloads and live previews.`,
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	cmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON or YAML config file")
	cmd.Flags().StringVarP(&serveTemplate, "template", "t", "", "Path to a custom LaTeX template for downloads")
	cmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log every request")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := newServer(cmd)
	if err != nil {
		return err
	}
	return srv.Start()
}

// resolveServeConfig layers flags over environment over file over defaults
func resolveServeConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(serveConfigFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = serveTemplate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newServer(cmd *cobra.Command) (*server.Server, error) {
	cfg, err := resolveServeConfig(cmd)
	if err != nil {
		return nil, err
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		TemplatePath:    cfg.Template,
		SessionTTL:      cfg.SessionTTL.Std(),
		CleanupInterval: cfg.CleanupInterval.Std(),
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimit:       ratelimit.LoadConfig(cfg.RateLimit),
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	return srv, nil
}
