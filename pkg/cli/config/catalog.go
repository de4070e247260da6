package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/entrysight/entrysight/pkg/catalog"
	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/utils/logging"
)

// Catalog holds CLI flags for question catalog selection
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog file (default: built-in catalog)",
			Sources:     cli.EnvVars("ENTRYSIGHT_CATALOG"),
			Destination: &x.path,
		},
	}
}

// Configure returns the selected catalog: the TOML file when a path is set,
// otherwise the built-in one
func (x *Catalog) Configure() (*model.Catalog, error) {
	if x.path == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog", goerr.V("path", x.path))
	}

	logging.Default().Info("Loaded external catalog",
		"path", x.path,
		"categories", len(c.Categories),
		"questions", c.TotalQuestions(),
	)
	return c, nil
}
