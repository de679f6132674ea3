package cli

import (
	"context"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/usecase/notes"
	"github.com/m-mizutani/minuta/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// batchPlan is the YAML plan consumed by the batch command. Each entry
// names a meeting and the languages to (re)generate notes in.
type batchPlan struct {
	Meetings []batchEntry `yaml:"meetings"`
}

type batchEntry struct {
	ID        string   `yaml:"id"`
	Languages []string `yaml:"languages"`
}

func loadBatchPlan(path string) (*batchPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read batch plan", goerr.V("path", path))
	}

	var plan batchPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, goerr.Wrap(err, "failed to parse batch plan", goerr.V("path", path))
	}
	if len(plan.Meetings) == 0 {
		return nil, goerr.New("batch plan names no meetings", goerr.V("path", path))
	}
	for _, entry := range plan.Meetings {
		if entry.ID == "" {
			return nil, goerr.New("batch plan entry without meeting id")
		}
		if len(entry.Languages) == 0 {
			return nil, goerr.New("batch plan entry without languages",
				goerr.V("meeting", entry.ID))
		}
	}
	return &plan, nil
}

func batchCommand() *cli.Command {
	var (
		cfg      config
		planPath string
		workers  int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "plan",
			Aliases:     []string{"p"},
			Usage:       "Path to YAML batch plan",
			Required:    true,
			Destination: &planPath,
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Concurrent regenerations",
			Value:       4,
			Destination: &workers,
		},
	}
	flags = append(flags, geminiFlags(&cfg)...)
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "batch",
		Usage: "Regenerate notes for many meetings from a YAML plan",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			plan, err := loadBatchPlan(planPath)
			if err != nil {
				return err
			}
			if workers < 1 {
				workers = 1
			}

			fc, err := cfg.loadFile()
			if err != nil {
				return err
			}
			gemini, err := cfg.newGemini(ctx, fc)
			if err != nil {
				return err
			}
			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.logLevel, cfg.logFormat, os.Stderr)
			ctx = logging.With(ctx, logger)
			uc := notes.New(repo, gemini, notes.WithLanguages(cfg.languages(fc)))

			type job struct {
				meeting model.MeetingID
				lang    model.Language
			}
			var jobs []job
			for _, entry := range plan.Meetings {
				for _, lang := range entry.Languages {
					jobs = append(jobs, job{
						meeting: model.MeetingID(entry.ID),
						lang:    model.Language(lang),
					})
				}
			}

			var (
				wg     sync.WaitGroup
				sem    = make(chan struct{}, int(workers))
				mu     sync.Mutex
				failed []error
			)
			for _, j := range jobs {
				wg.Add(1)
				sem <- struct{}{}
				go func(j job) {
					defer wg.Done()
					defer func() { <-sem }()

					if _, err := uc.Regenerate(ctx, j.meeting, j.lang); err != nil {
						logger.Error("regeneration failed",
							"meeting", j.meeting, "language", j.lang, "error", err)
						mu.Lock()
						failed = append(failed, goerr.Wrap(err, "regeneration failed",
							goerr.V("meeting", j.meeting), goerr.V("language", j.lang)))
						mu.Unlock()
						return
					}
					logger.Info("regenerated notes",
						"meeting", j.meeting, "language", j.lang)
				}(j)
			}
			wg.Wait()

			if len(failed) > 0 {
				return goerr.New("batch finished with failures",
					goerr.V("failed", len(failed)), goerr.V("total", len(jobs)))
			}
			logger.Info("batch finished", "jobs", len(jobs))
			return nil
		},
	}
}
