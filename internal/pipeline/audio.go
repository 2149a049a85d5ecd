package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractAudio pulls the audio track out of the video as 16kHz mono WAV so the
// upload is a fraction of the video's size. Optional; the speech-to-text
// service accepts the raw video too.
func (p *implPipeline) extractAudio(ctx context.Context, videoPath string) (string, error) {
	audioPath := strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + "_temp.wav"

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // audio only
		"-ar", "16000",
		"-ac", "1", // mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
