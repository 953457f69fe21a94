package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog", "--category", "Bowls"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		catalogCategory = "All"
	})

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Geode Serving Bowl")
	assert.Contains(t, got, "Floral Trinket Bowl")
	assert.NotContains(t, got, "Memorial Rose Coaster Set")
	assert.Contains(t, got, "₹5395")
}

func TestRootCommand_BadConfig(t *testing.T) {
	rootCmd.SetArgs([]string{"catalog", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	assert.Error(t, rootCmd.Execute())
}
