package cli

import (
	"context"
	"os"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the chainmetrics CLI application.
//
// It registers all available commands, including:
//
//   - `ingest`: Runs one ingestion pass over a block range.
//   - `watermark`: Prints the current watermark of a stream.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The ingestion service implementation used by all commands.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc ingest.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainmetrics",
		Description:           "Command-line interface for ingesting Ethereum blocks and building daily metrics.",
		Usage:                 "chainmetrics [command] [flags]",
		Commands: []*cli.Command{
			ingestCommand(svc),
			watermarkCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}
