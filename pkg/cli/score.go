package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/entrysight/entrysight/pkg/cli/config"
	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/report"
	"github.com/entrysight/entrysight/pkg/usecase"
	"github.com/entrysight/entrysight/pkg/utils/logging"
)

// scoreInput is the file shape accepted by the score command, matching the
// HTTP assessment request body
type scoreInput struct {
	CompanyInfo model.CompanyInfo `json:"companyInfo"`
	Responses   map[string]any    `json:"responses"`
}

func cmdScore() *cli.Command {
	var format string
	var outputDir string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format (text, json, csv, html)",
			Value:       "text",
			Sources:     cli.EnvVars("ENTRYSIGHT_FORMAT"),
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Write one report file per input into this directory (default: stdout)",
			Sources:     cli.EnvVars("ENTRYSIGHT_OUTPUT_DIR"),
			Destination: &outputDir,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:      "score",
		Usage:     "Score one or more response files and render reports",
		ArgsUsage: "<responses.json> [...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return goerr.New("no input files given")
			}

			f := report.Format(format)
			if err := f.Validate(); err != nil {
				return err
			}

			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure catalog")
			}
			uc := usecase.New(cat)

			// Serializes stdout writes when no output directory is set
			var stdoutMu sync.Mutex

			g, ctx := errgroup.WithContext(ctx)
			for _, path := range files {
				g.Go(func() error {
					rendered, submission, err := scoreFile(ctx, uc, path, f)
					if err != nil {
						return goerr.Wrap(err, "failed to score file", goerr.V("path", path))
					}

					if outputDir == "" {
						stdoutMu.Lock()
						defer stdoutMu.Unlock()
						_, err := os.Stdout.Write(rendered)
						return err
					}

					outPath := filepath.Join(outputDir, reportFileName(path, submission, f))
					if err := os.WriteFile(outPath, rendered, 0644); err != nil {
						return goerr.Wrap(err, "failed to write report", goerr.V("path", outPath))
					}
					logging.From(ctx).Info("report written",
						"input", path,
						"output", outPath,
						"overall_score", submission.Result.OverallScore,
					)
					return nil
				})
			}

			return g.Wait()
		},
	}
}

func scoreFile(ctx context.Context, uc *usecase.Assessment, path string, f report.Format) ([]byte, *model.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read input file")
	}

	var input scoreInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse input JSON")
	}

	submission, err := uc.Assess(ctx, input.CompanyInfo, input.Responses)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := uc.Export(&buf, f, submission); err != nil {
		return nil, nil, err
	}

	return buf.Bytes(), submission, nil
}

func reportFileName(inputPath string, submission *model.Submission, f report.Format) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	ext := f.String()
	if f == report.FormatText {
		ext = "txt"
	}
	return base + "-report." + ext
}
