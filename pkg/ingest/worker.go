// Package ingest runs the document worker: it watches an uploads directory
// for new files, loads each supported document, runs it through the
// extraction pipeline strictly one at a time, and relocates successfully
// processed files.
//
// Failed documents stay in place so a later scan cycle reprocesses them.
// That gives at-least-once delivery, which is safe because every graph
// merge is idempotent. Delivery is event-driven through fsnotify with a
// fixed interval rescan as catch-up; the rescan interval backs off
// exponentially while downstream services are failing.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/extract"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/loader"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/nlp"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/pipeline"
	"github.com/Sanathkumarkunjithaya/CogniGraph/pkg/types"
)

// Processor runs one document through the extraction pipeline.
type Processor interface {
	ProcessDocument(ctx context.Context, doc types.Document) (*pipeline.Result, error)
}

// Config holds worker settings.
type Config struct {
	// UploadsDir is scanned for new document files.
	UploadsDir string
	// ProcessedDir receives files after successful processing.
	ProcessedDir string
	// FailedDir receives files whose failure retrying cannot fix, such as
	// unparsable model output or documents with no extractable text.
	FailedDir string
	// ScanInterval is the base catch-up rescan interval.
	ScanInterval time.Duration
	// MaxBackoff caps the rescan interval while downstream calls fail.
	MaxBackoff time.Duration
}

// DefaultConfig returns the default worker settings for an uploads root.
func DefaultConfig(uploadsDir string) Config {
	return Config{
		UploadsDir:   uploadsDir,
		ProcessedDir: filepath.Join(uploadsDir, "processed"),
		FailedDir:    filepath.Join(uploadsDir, "failed"),
		ScanInterval: 30 * time.Second,
		MaxBackoff:   10 * time.Minute,
	}
}

// Worker is the single sequential document worker.
type Worker struct {
	config    Config
	processor Processor
	logger    *slog.Logger

	// delay is the current rescan interval, grown while sweeps fail.
	delay time.Duration
}

// NewWorker creates a document worker.
func NewWorker(config Config, processor Processor, logger *slog.Logger) (*Worker, error) {
	if config.UploadsDir == "" {
		return nil, errors.New("uploads directory is required")
	}
	if config.ProcessedDir == "" {
		config.ProcessedDir = filepath.Join(config.UploadsDir, "processed")
	}
	if config.FailedDir == "" {
		config.FailedDir = filepath.Join(config.UploadsDir, "failed")
	}
	if config.ScanInterval <= 0 {
		config.ScanInterval = 30 * time.Second
	}
	if config.MaxBackoff < config.ScanInterval {
		config.MaxBackoff = 10 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Worker{
		config:    config,
		processor: processor,
		logger:    logger.With("component", "ingest"),
		delay:     config.ScanInterval,
	}, nil
}

// Run blocks until ctx is cancelled, sweeping the uploads directory on
// file-change events and on the rescan interval. Documents are processed
// strictly one at a time.
func (w *Worker) Run(ctx context.Context) error {
	for _, dir := range []string{w.config.ProcessedDir, w.config.FailedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.UploadsDir); err != nil {
		return fmt.Errorf("watching %s: %w", w.config.UploadsDir, err)
	}

	w.logger.Info("document worker started",
		"uploads", w.config.UploadsDir,
		"interval", w.config.ScanInterval.String())

	// Pick up anything that arrived before the worker did.
	w.Sweep(ctx)

	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("document worker stopping")
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("file watcher closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !loader.Supported(event.Name) {
				continue
			}
			w.Sweep(ctx)
			resetTimer(timer, w.delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("file watcher closed")
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			w.Sweep(ctx)
			timer.Reset(w.delay)
		}
	}
}

// Sweep processes every pending supported file in the uploads directory,
// oldest first. Failures are logged and the file is left in place for the
// next cycle; the rescan delay backs off when a sweep makes no progress.
func (w *Worker) Sweep(ctx context.Context) {
	files, err := w.pendingFiles()
	if err != nil {
		w.logger.Error("scan failed", "error", err)
		w.backoff()
		return
	}

	if len(files) == 0 {
		return
	}

	var processed, failed int
	for _, path := range files {
		if ctx.Err() != nil {
			return
		}
		err := w.processFile(ctx, path)
		switch {
		case err == nil:
			processed++
		case permanent(err):
			w.logger.Error("document failed permanently",
				"file", filepath.Base(path), "error", err)
			if moveErr := moveTo(path, w.config.FailedDir); moveErr != nil {
				w.logger.Error("moving failed document", "error", moveErr)
			}
		default:
			w.logger.Error("document processing failed, leaving for retry",
				"file", filepath.Base(path), "error", err)
			failed++
		}
	}

	if processed == 0 && failed > 0 {
		w.backoff()
	} else {
		w.delay = w.config.ScanInterval
	}

	w.logger.Info("sweep complete", "processed", processed, "failed", failed)
}

// pendingFiles lists supported files directly under the uploads directory.
func (w *Worker) pendingFiles() ([]string, error) {
	entries, err := os.ReadDir(w.config.UploadsDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(w.config.UploadsDir, entry.Name())
		if !loader.Supported(path) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func (w *Worker) processFile(ctx context.Context, path string) error {
	doc, err := loader.Load(path)
	if err != nil {
		return err
	}

	result, err := w.processor.ProcessDocument(ctx, *doc)
	if err != nil {
		return err
	}

	w.logger.Info("document stored",
		"file", doc.Source,
		"state", string(result.State),
		"entities", result.EntitiesMerged,
		"relationships", result.RelationshipsMerged)

	if err := moveTo(path, w.config.ProcessedDir); err != nil {
		return fmt.Errorf("moving to processed: %w", err)
	}
	return nil
}

// permanent reports whether retrying the document cannot change the
// outcome: the model produced unparsable or refused output for this exact
// content, or the file has no text to extract.
func permanent(err error) bool {
	var parseErr *extract.ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	return nlp.IsRefusal(err) ||
		errors.Is(err, loader.ErrEmptyDocument) ||
		errors.Is(err, loader.ErrUnsupportedFormat)
}

func moveTo(path, dir string) error {
	return os.Rename(path, filepath.Join(dir, filepath.Base(path)))
}

// backoff doubles the rescan delay up to the configured cap.
func (w *Worker) backoff() {
	w.delay *= 2
	if w.delay > w.config.MaxBackoff {
		w.delay = w.config.MaxBackoff
	}
	w.logger.Warn("backing off rescan interval", "delay", w.delay.String())
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
