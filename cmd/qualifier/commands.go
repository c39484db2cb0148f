package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	qcli "github.com/database-playground/webhook-qualifier/cli"
	"github.com/database-playground/webhook-qualifier/internal/deps"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

func runAction(ctx context.Context, c *cli.Command) error {
	var clictx *qcli.Context

	app := fx.New(
		deps.FxCommonModule,
		fx.NopLogger,
		fx.Provide(qcli.NewContext),
		fx.Populate(&clictx),
	)
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start dependencies: %w", err)
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	result, err := clictx.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println("✅ Solution submitted to", result.Issuance.Webhook)
	fmt.Println("Status:", result.Submission.StatusCode)
	fmt.Println(result.Submission.Body)

	return nil
}

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Request a webhook and submit the SQL answer to it",
		Action: runAction,
	}
}

func newAnswerCommand() *cli.Command {
	return &cli.Command{
		Name:  "answer",
		Usage: "Print the SQL answer that gets submitted",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println(qcli.Answer())
			return nil
		},
	}
}

func newVerifyCommand() *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Usage:       "Run the SQL answer against sample data",
		Description: "Run the SQL answer against an in-memory SQLite database with sample EMPLOYEE and DEPARTMENT tables, and print the resulting rows.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the result as JSON.",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := qcli.Verify(ctx)
			if err != nil {
				return err
			}

			if c.Bool("json") {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			fmt.Println(result.Columns)
			for _, row := range result.Rows {
				fmt.Println(row)
			}

			return nil
		},
	}
}

func newRootCommand(subcommands ...*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "qualifier",
		Usage:    "Request a hiring webhook and submit the SQL answer to it.",
		Action:   runAction,
		Commands: subcommands,
	}
}
