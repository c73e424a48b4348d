package cli

import (
	"context"
	"fmt"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"

	"github.com/urfave/cli/v3"
)

// watermarkCommand returns a CLI command that prints the current watermark
// of an ingestion stream.
//
// Usage example:
//
//	chainmetrics watermark --stream ethereum:mainnet
func watermarkCommand(svc ingest.Service) *cli.Command {
	return &cli.Command{
		Name:        "watermark",
		Description: "Prints the highest contiguously committed block number of a stream.",
		Usage:       "Shows the ingestion cursor. A stream without history prints 'none'.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "stream",
				Usage:    "Ingestion stream to inspect (e.g., ethereum:mainnet)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			stream := c.String("stream")

			current, found, err := svc.Watermark(ctx, stream)
			if err != nil {
				return err
			}

			if !found {
				fmt.Fprintf(c.Root().Writer, "stream %s: none\n", stream)
				return nil
			}

			fmt.Fprintf(c.Root().Writer, "stream %s: %d\n", stream, current)
			return nil
		},
	}
}
