package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"

	"github.com/chainmetrics-io/chainmetrics/internal/ingest"
)

func TestIngestCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		mockService := ingest.NewServiceMock(t)

		cmd := ingestCommand(mockService)

		assert.Equal(t, "ingest", cmd.Name)
		assert.Len(t, cmd.Flags, 5)

		streamFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "stream", streamFlag.Name)
		assert.True(t, streamFlag.Required)

		startFlag := cmd.Flags[1].(*cli.Uint64Flag)
		assert.Equal(t, "start-block", startFlag.Name)
		assert.True(t, startFlag.Required)
	})

	t.Run("should run an ingestion pass and print the report", func(t *testing.T) {
		mockService := ingest.NewServiceMock(t)
		mockService.EXPECT().
			Ingest(mock.Anything, ingest.Request{
				Stream:     "ethereum:mainnet",
				StartBlock: 100,
				EndBlock:   104,
			}).
			Return(ingest.Report{
				Stream:             "ethereum:mainnet",
				LastCommittedBlock: 104,
				HasWatermark:       true,
				BlocksCommitted:    5,
				DaysFinalized:      []string{"2024-03-01"},
			}, nil).
			Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "ingest",
			"--stream", "ethereum:mainnet",
			"--start-block", "100",
			"--end-block", "104",
		})
		assert.NoError(t, err)

		assert.Contains(t, out.String(), "watermark:        104")
		assert.Contains(t, out.String(), "blocks committed: 5")
		assert.Contains(t, out.String(), "days finalized:   [2024-03-01]")
	})

	t.Run("should forward force and concurrency flags", func(t *testing.T) {
		mockService := ingest.NewServiceMock(t)
		mockService.EXPECT().
			Ingest(mock.Anything, ingest.Request{
				Stream:         "ethereum:mainnet",
				StartBlock:     100,
				Concurrency:    8,
				ForceReprocess: true,
			}).
			Return(ingest.Report{Stream: "ethereum:mainnet"}, nil).
			Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "ingest",
			"--stream", "ethereum:mainnet",
			"--start-block", "100",
			"--concurrency", "8",
			"--force",
		})
		assert.NoError(t, err)
	})

	t.Run("should print the partial report when the pass fails", func(t *testing.T) {
		expectedErr := errors.New("provider unreachable")

		mockService := ingest.NewServiceMock(t)
		mockService.EXPECT().
			Ingest(mock.Anything, mock.AnythingOfType("ingest.Request")).
			Return(ingest.Report{
				Stream:             "ethereum:mainnet",
				LastCommittedBlock: 101,
				HasWatermark:       true,
				BlocksCommitted:    2,
				FailedBlocks:       []uint64{102},
			}, expectedErr).
			Once()

		var out bytes.Buffer
		app := &cli.Command{
			Writer:   &out,
			Commands: []*cli.Command{ingestCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "ingest",
			"--stream", "ethereum:mainnet",
			"--start-block", "100",
		})
		assert.ErrorIs(t, err, expectedErr)

		assert.Contains(t, out.String(), "watermark:        101")
		assert.Contains(t, out.String(), "failed blocks:    [102]")
	})

	t.Run("should fail when the stream flag is missing", func(t *testing.T) {
		mockService := ingest.NewServiceMock(t)

		app := &cli.Command{
			Writer:   new(bytes.Buffer),
			Commands: []*cli.Command{ingestCommand(mockService)},
		}

		err := app.Run(t.Context(), []string{"test", "ingest", "--start-block", "100"})
		assert.Error(t, err)
	})
}
