package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/entrysight/entrysight/pkg/catalog"
	"github.com/entrysight/entrysight/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		output  string
		wantErr bool
	}{
		{"defaults", "info", "console", "stdout", false},
		{"json to stderr", "debug", "json", "stderr", false},
		{"dash means stdout", "warn", "console", "-", false},
		{"invalid level", "verbose", "console", "stdout", true},
		{"invalid format", "info", "xml", "stdout", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewLoggerForTest(tt.level, tt.format, tt.output)
			closer, err := cfg.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err).Required()
			closer()
		})
	}
}

func TestLoggerConfigureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entrysight.log")

	cfg := config.NewLoggerForTest("info", "json", path)
	closer, err := cfg.Configure()
	gt.NoError(t, err).Required()
	defer closer()

	_, statErr := os.Stat(path)
	gt.NoError(t, statErr)
}

func TestLoggerFlags(t *testing.T) {
	cfg := config.NewLoggerForTest("info", "console", "stdout")
	gt.Array(t, cfg.Flags()).Length(3)
}

func TestCatalogConfigure(t *testing.T) {
	t.Run("empty path returns built-in catalog", func(t *testing.T) {
		cfg := config.NewCatalogForTest("")
		c := gt.R1(cfg.Configure()).NoError(t)
		gt.Value(t, c.TotalQuestions()).Equal(catalog.Default().TotalQuestions())
	})

	t.Run("valid file path", func(t *testing.T) {
		doc := `
[[category]]
id = "financial"
name = "Financial Risk"
description = "d"

[[category.subcategory]]
id = "funding"
name = "Funding"
description = "d"

[[category.subcategory.question]]
id = "fund-1"
text = "Rate your financial reporting maturity"
type = "rating"
weight = 1.0
required = true
`
		path := filepath.Join(t.TempDir(), "catalog.toml")
		gt.NoError(t, os.WriteFile(path, []byte(doc), 0600)).Required()

		cfg := config.NewCatalogForTest(path)
		c := gt.R1(cfg.Configure()).NoError(t)
		gt.Value(t, c.TotalQuestions()).Equal(1)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewCatalogForTest(filepath.Join(t.TempDir(), "absent.toml"))
		_, err := cfg.Configure()
		gt.Error(t, err).Is(catalog.ErrCatalogNotFound)
	})
}
