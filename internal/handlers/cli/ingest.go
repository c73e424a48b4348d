package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"

	"github.com/urfave/cli/v3"
)

// ingestCommand returns a CLI command that runs one ingestion pass over a
// block range and prints the resulting report.
//
// Usage example:
//
//	chainmetrics ingest --stream ethereum:mainnet --start-block 19000000 --end-block 19000100
//
// The pass is canceled cooperatively on SIGINT or SIGTERM: in-flight fetches
// stop and the watermark stays on the last fully committed block.
func ingestCommand(svc ingest.Service) *cli.Command {
	return &cli.Command{
		Name:        "ingest",
		Description: "Fetches, normalizes and persists a range of blocks and updates the daily metrics derived from them.",
		Usage:       "Runs one ingestion pass and prints the report. Omit --end-block to ingest up to the current head.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "stream",
				Usage:    "Ingestion stream whose watermark governs the pass (e.g., ethereum:mainnet)",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     "start-block",
				Usage:    "First block number of the range, inclusive",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "end-block",
				Usage: "Last block number of the range, inclusive. 0 means the current head",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Fetch worker pool size. 0 uses the service default",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Refetch blocks already covered by the watermark and rebuild the metrics of every touched day",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := svc.Ingest(ctx, ingest.Request{
				Stream:         c.String("stream"),
				StartBlock:     c.Uint64("start-block"),
				EndBlock:       c.Uint64("end-block"),
				Concurrency:    int(c.Int("concurrency")),
				ForceReprocess: c.Bool("force"),
			})

			printReport(c, report)
			return err
		},
	}
}

// printReport writes a human-readable summary of an ingestion pass. It is
// printed even for a pass that ended with an error, since everything up to
// the failure is durably committed.
func printReport(c *cli.Command, report ingest.Report) {
	w := c.Root().Writer

	fmt.Fprintf(w, "stream:           %s\n", report.Stream)
	if report.HasWatermark {
		fmt.Fprintf(w, "watermark:        %d\n", report.LastCommittedBlock)
	} else {
		fmt.Fprintln(w, "watermark:        none")
	}
	fmt.Fprintf(w, "blocks committed: %d\n", report.BlocksCommitted)

	if len(report.FailedBlocks) > 0 {
		fmt.Fprintf(w, "failed blocks:    %v\n", report.FailedBlocks)
	}
	if len(report.DaysFinalized) > 0 {
		fmt.Fprintf(w, "days finalized:   %v\n", report.DaysFinalized)
	}
}
