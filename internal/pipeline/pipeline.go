package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brosephtech/descgen/internal/transcript"
)

// ErrInputNotFound reports a video path that does not exist. It is checked
// before anything touches the network.
var ErrInputNotFound = errors.New("input video not found")

// Run orchestrates the whole flow for one video:
// validate -> (extract audio) -> transcribe -> trim -> generate -> save.
// Every step is fatal on error; nothing is caught and recovered, and a failed
// generation discards the transcript.
func (p *implPipeline) Run(ctx context.Context, videoPath string) (string, error) {
	startTime := time.Now()

	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, videoPath)
	}

	uploadPath := videoPath
	if p.cfg.Transcriber.ExtractAudio {
		audioPath, err := p.extractAudio(ctx, videoPath)
		if err != nil {
			return "", fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, audioPath)
		uploadPath = audioPath
	}

	p.logger.Info(ctx, "[1/3] Transcribing video: %s", videoPath)
	srt, err := p.transcriber.Transcribe(ctx, uploadPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Info(ctx, "[1/3] Transcription complete (%d chars)", len(srt))

	trimmed, truncated := transcript.Trim(srt, p.cfg.Transcript.MaxChars)
	if truncated {
		p.logger.Warn(ctx, "Transcript truncated to %d chars (was %d)", p.cfg.Transcript.MaxChars, len([]rune(srt)))
	}

	p.logger.Info(ctx, "[2/3] Generating description...")
	description, err := p.describer.Describe(ctx, trimmed)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	p.logger.Info(ctx, "[2/3] Description generated")

	outputPath, err := p.writer.Write(ctx, description, videoPath)
	if err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	p.logger.Info(ctx, "[3/3] Description saved to: %s", outputPath)
	p.logger.Info(ctx, "Done in %s", time.Since(startTime).Round(time.Second))

	return outputPath, nil
}

// cleanupTempFile removes a temporary file, logs a warning if that fails.
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
