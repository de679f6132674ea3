package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "minuta",
		Usage: "Meeting notes service with Gemini-backed project Q&A",
		Commands: []*cli.Command{
			serveCommand(),
			projectsCommand(),
			regenerateCommand(),
			batchCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
