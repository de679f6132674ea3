package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/usecase/notes"
	"github.com/urfave/cli/v3"
)

func regenerateCommand() *cli.Command {
	var (
		cfg       config
		meetingID string
		language  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "meeting",
			Aliases:     []string{"m"},
			Usage:       "Meeting id",
			Destination: &meetingID,
		},
		&cli.StringFlag{
			Name:        "language",
			Aliases:     []string{"l"},
			Usage:       "Target language code",
			Value:       string(model.DefaultLanguage),
			Destination: &language,
		},
	}
	flags = append(flags, geminiFlags(&cfg)...)
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "regenerate",
		Usage: "Regenerate meeting notes in a given language",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if meetingID == "" {
				return goerr.New("meeting id is required")
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

			uc := notes.New(repo, gemini, notes.WithLanguages(cfg.languages(fc)))
			result, err := uc.Regenerate(ctx, model.MeetingID(meetingID), model.Language(language))
			if err != nil {
				return goerr.Wrap(err, "failed to regenerate notes")
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode notes")
			}
			fmt.Fprintln(c.Root().Writer, string(out))
			return nil
		},
	}
}
