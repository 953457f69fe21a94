package main

import (
	"fmt"
	"os"

	"github.com/gauravsoni97/preservespecialmoments/internal/config"
	"github.com/gauravsoni97/preservespecialmoments/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Preserve Special Moments storefront",
	Long: `Serves the handcrafted resin storefront: catalog, cart, custom order
requests and QR checkout with a messaging hand-off.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (env vars override it)")
	rootCmd.AddCommand(serveCmd, catalogCmd)
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(log)
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
