package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/gitjournal/internal/config"
	"github.com/hpungsan/gitjournal/internal/errors"
	"github.com/hpungsan/gitjournal/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(g ops.GitClient, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "gitjournal",
		Usage:   "Per-branch git journal",
		Version: Version,
		Commands: []*cli.Command{
			ensureCmd(g, cfg),
			updateCmd(g, cfg),
			statusCmd(g, cfg),
			showCmd(g, cfg),
			listCmd(g, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// ensureCmd creates the ensure command.
func ensureCmd(g ops.GitClient, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "ensure",
		Usage: "Create the journal for the current branch if it does not exist",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Emit the result as JSON"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Ensure(g, cfg)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Printf("Branch: %s (normalized: %s)\n", output.Branch, output.NormalizedBranch)
			if output.Created {
				fmt.Printf("Created journal: %s\n", output.RelPath)
			} else {
				fmt.Printf("Journal already exists: %s\n", output.RelPath)
			}
			return nil
		},
	}
}

// updateCmd creates the update command.
func updateCmd(g ops.GitClient, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Refresh journal metadata and append today's log entry",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "diff", Usage: "Also print the current diff stat"},
			&cli.BoolFlag{Name: "json", Usage: "Emit the result as JSON"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Update(g, cfg)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Printf("Updating: %s\n", output.RelPath)
			fmt.Printf("Updated Who: %s\n", output.UserName)
			fmt.Printf("Updated HEAD: %s\n", output.HeadSHA)
			fmt.Printf("Status: %s\n", output.StatusSummary)
			if c.Bool("diff") {
				fmt.Println(output.DiffStat)
			}
			if output.EntryAdded {
				fmt.Println("Added log entry for today")
			}
			fmt.Println()
			fmt.Println("Remember to fill in the 'Why' section!")
			return nil
		},
	}
}

// statusCmd creates the status command.
func statusCmd(g ops.GitClient, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Report repository state and whether a journal exists (read-only)",
		Action: func(c *cli.Context) error {
			output, err := ops.Status(g, cfg)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// showCmd creates the show command.
func showCmd(g ops.GitClient, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the current branch's journal",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "Render the markdown to HTML"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Show(g, cfg, ops.ShowInput{HTML: c.Bool("html")})
			if err != nil {
				return outputError(err)
			}
			fmt.Print(output.Content)
			return nil
		},
	}
}

// listCmd creates the list command.
func listCmd(g ops.GitClient, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all journal folders in the repository",
		Action: func(c *cli.Context) error {
			output, err := ops.List(g, cfg)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if jErr, ok := err.(*errors.JournalError); ok {
		msg := fmt.Sprintf("[%s] %s", jErr.Code, jErr.Message)
		if jErr.Code == errors.ErrJournalNotFound {
			msg += "\nRun 'gitjournal ensure' first to create one."
		}
		return cli.Exit(msg, 1)
	}
	return cli.Exit(err.Error(), 1)
}
