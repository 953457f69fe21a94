package main

import (
	"fmt"

	"github.com/gauravsoni97/preservespecialmoments/internal/catalog"
	"github.com/gauravsoni97/preservespecialmoments/internal/pricing"
	"github.com/gauravsoni97/preservespecialmoments/internal/repository"
	"github.com/spf13/cobra"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Migrate the catalog database and list its products",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", catalog.All, "Only list products in this category")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	repo, err := repository.NewRepository(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := repo.RunMigrations(); err != nil {
		return err
	}
	cat, err := repository.LoadCatalog(cmd.Context(), repo)
	if err != nil {
		return err
	}
	display, err := pricing.NewDisplay(cfg.Display.Multiplier, cfg.Display.Symbol)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-4s %-28s %-10s %8s %10s %s\n", "ID", "NAME", "CATEGORY", "PRICE", "DISPLAY", "IMAGES")
	for _, p := range cat.Filter(catalogCategory) {
		fmt.Fprintf(out, "%-4d %-28s %-10s %8s %10s %d\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), display.Format(p.Price), len(p.Gallery()))
	}
	return nil
}
