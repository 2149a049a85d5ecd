package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/describer"
	"github.com/brosephtech/descgen/internal/logger"
	"github.com/brosephtech/descgen/internal/output"
	"github.com/brosephtech/descgen/internal/pipeline"
	"github.com/brosephtech/descgen/internal/transcriber"
	"github.com/brosephtech/descgen/internal/watcher"
	"github.com/brosephtech/descgen/pkg/executor"
)

// defaultVideoPath is the edit-and-run placeholder used when no argument is
// given; scripted use passes the path explicitly.
const defaultVideoPath = "your_video.mp4"

func main() {
	configPath := flag.String("config", "config.yaml", "path to optional YAML config")
	watch := flag.Bool("watch", false, "watch the input directory instead of processing a single file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Both keys must be present before any file or network activity.
	secrets, err := config.LoadSecrets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "  BrosephTech Description Generator")
	log.Info(ctx, "========================================")

	trans := transcriber.New(secrets.ElevenLabsKey, cfg.Transcriber, log)
	desc, err := describer.New(secrets.GeminiKey, cfg.Describer, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create describer: %v\n", err)
		os.Exit(1)
	}
	writer := output.New(cfg.Output, log)
	pipe := pipeline.New(cfg, trans, desc, writer, executor.New(), log)

	if *watch {
		runWatch(ctx, cfg, pipe, log)
		return
	}

	videoPath := defaultVideoPath
	if flag.NArg() > 0 {
		videoPath = flag.Arg(0)
	}

	outputPath, err := pipe.Run(ctx, videoPath)
	if err != nil {
		if errors.Is(err, pipeline.ErrInputNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Error(ctx, "Pipeline failed: %v", err)
		os.Exit(1)
	}

	printResult(outputPath)
}

// runWatch processes videos dropped into the input directory, one at a time,
// until SIGINT/SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) {
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, videoPath string) error {
		outputPath, err := pipe.Run(ctx, videoPath)
		if err != nil {
			return err
		}
		printResult(outputPath)
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}
	cancel()
}

func printResult(outputPath string) {
	description, err := os.ReadFile(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read saved description: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n========================================")
	fmt.Println("  FINAL DESCRIPTION:")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println(string(description))
	fmt.Printf("\nSaved to: %s\n", outputPath)
}
