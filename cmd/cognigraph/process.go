package cognigraph

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/config"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/ingest"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the document extraction worker",
	Long: `Run the document extraction worker over an uploads directory.

The worker watches the directory for new files and processes them one at a
time: txt, md, pdf and docx documents are loaded, entities and relationships
are extracted by the model, and the results are merged into the graph.
Processed files move to a processed/ subdirectory; files that fail
permanently move to failed/.`,
	RunE: runProcess,
}

var processOnce bool

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().String("uploads-dir", "", "Directory to watch for documents")
	processCmd.Flags().Duration("scan-interval", 0, "Rescan interval for catch-up sweeps")
	processCmd.Flags().BoolVar(&processOnce, "once", false, "Process pending documents once and exit")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dir, _ := cmd.Flags().GetString("uploads-dir"); dir != "" {
		cfg.Ingest.UploadsDir = dir
	}
	if interval, _ := cmd.Flags().GetDuration("scan-interval"); interval > 0 {
		cfg.Ingest.ScanInterval = interval
	}

	logger := newLogger(cfg)

	client, err := initializeClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize CogniGraph: %w", err)
	}

	workerConfig := ingest.DefaultConfig(cfg.Ingest.UploadsDir)
	if cfg.Ingest.ProcessedDir != "" {
		workerConfig.ProcessedDir = cfg.Ingest.ProcessedDir
	}
	if cfg.Ingest.FailedDir != "" {
		workerConfig.FailedDir = cfg.Ingest.FailedDir
	}
	if cfg.Ingest.ScanInterval > 0 {
		workerConfig.ScanInterval = cfg.Ingest.ScanInterval
	}
	if cfg.Ingest.MaxBackoff > 0 {
		workerConfig.MaxBackoff = cfg.Ingest.MaxBackoff
	}

	worker, err := ingest.NewWorker(workerConfig, client, logger)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("error closing client", "error", err)
		}
	}()

	if processOnce {
		worker.Sweep(ctx)
		return nil
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("worker error: %w", err)
	}

	fmt.Println("Worker stopped gracefully")
	return nil
}
