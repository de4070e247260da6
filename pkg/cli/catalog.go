package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/entrysight/entrysight/pkg/catalog"
	"github.com/entrysight/entrysight/pkg/cli/config"
)

func cmdCatalog() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect and validate question catalogs",
		Commands: []*cli.Command{
			cmdCatalogShow(),
			cmdCatalogValidate(),
		},
	}
}

func cmdCatalogShow() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "show",
		Usage: "Print a summary of the active catalog",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure catalog")
			}

			bold := color.New(color.Bold)

			bold.Fprintf(os.Stdout, "%-40s %-12s %s\n", "Category", "Subcats", "Questions")
			for i := range cat.Categories {
				category := &cat.Categories[i]
				var questions int
				for j := range category.Subcategories {
					questions += len(category.Subcategories[j].Questions)
				}
				fmt.Fprintf(os.Stdout, "%-40s %-12d %d\n", category.Name, len(category.Subcategories), questions)
			}

			fmt.Fprintf(os.Stdout, "\nTotal: %d categories, %d questions, %.1f max points\n",
				len(cat.Categories), cat.TotalQuestions(), cat.MaxPoints())
			return nil
		},
	}
}

func cmdCatalogValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a TOML catalog file",
		ArgsUsage: "<catalog.toml>",
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.New("catalog file path is required")
			}

			cat, err := catalog.LoadFile(path)
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed", goerr.V("path", path))
			}

			color.New(color.FgGreen).Fprintf(os.Stdout, "OK: ")
			fmt.Fprintf(os.Stdout, "%d categories, %d questions\n", len(cat.Categories), cat.TotalQuestions())
			return nil
		},
	}
}
