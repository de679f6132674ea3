package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/usecase/project"
	"github.com/urfave/cli/v3"
)

func projectsCommand() *cli.Command {
	return &cli.Command{
		Name:  "projects",
		Usage: "Manage projects and their RAG stores",
		Commands: []*cli.Command{
			projectsListCommand(),
			projectsCreateCommand(),
			projectsDeleteCommand(),
		},
	}
}

func projectsListCommand() *cli.Command {
	var cfg config

	flags := geminiFlags(&cfg)
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List all projects",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fc, err := cfg.loadFile()
			if err != nil {
				return err
			}
			gemini, err := cfg.newGemini(ctx, fc)
			if err != nil {
				return err
			}

			projects, err := project.New(gemini).List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list projects")
			}

			for _, p := range projects {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.RagStoreName, p.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func projectsCreateCommand() *cli.Command {
	var (
		cfg   config
		input project.CreateInput
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Project name",
			Destination: &input.Name,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Project description",
			Destination: &input.Description,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "Display color",
			Destination: &input.Color,
		},
		&cli.StringFlag{
			Name:        "goals",
			Usage:       "Project goals",
			Destination: &input.Goals,
		},
	}
	flags = append(flags, geminiFlags(&cfg)...)
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "create",
		Usage: "Create a project and its RAG store",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			fc, err := cfg.loadFile()
			if err != nil {
				return err
			}
			gemini, err := cfg.newGemini(ctx, fc)
			if err != nil {
				return err
			}

			created, err := project.New(gemini).Create(ctx, input)
			if err != nil {
				return goerr.Wrap(err, "failed to create project")
			}

			fmt.Fprintf(c.Root().Writer, "Project created: %s (%s)\n", created.ID, created.RagStoreName)
			return nil
		},
	}
}

func projectsDeleteCommand() *cli.Command {
	var (
		cfg     config
		byStore bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "by-store",
			Usage:       "Treat the argument as a RAG store name instead of a project id",
			Destination: &byStore,
		},
	}
	flags = append(flags, geminiFlags(&cfg)...)
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a project and its RAG store",
		ArgsUsage: "<project-id|store-name>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			arg := c.Args().First()
			if arg == "" {
				return goerr.New("project id or store name is required")
			}

			fc, err := cfg.loadFile()
			if err != nil {
				return err
			}
			gemini, err := cfg.newGemini(ctx, fc)
			if err != nil {
				return err
			}

			ref := model.ByProjectID(model.ProjectID(arg))
			if byStore {
				ref = model.ByStoreName(arg)
			}

			if err := project.New(gemini).Delete(ctx, ref); err != nil {
				return goerr.Wrap(err, "failed to delete project")
			}

			fmt.Fprintf(c.Root().Writer, "Project deleted: %s\n", arg)
			return nil
		},
	}
}
