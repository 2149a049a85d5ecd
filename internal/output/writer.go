package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const descriptionSuffix = "_description.txt"

// Derive returns the output path for a video: same directory, extension
// stripped, suffix appended. "/a/b/clip.mp4" -> "/a/b/clip_description.txt".
func Derive(videoPath string) string {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	return base + descriptionSuffix
}

// Write stores the description as UTF-8 text with no additional framing and
// returns the path written. Filesystem errors propagate unwrapped in meaning;
// nothing retries them.
func (w *implWriter) Write(ctx context.Context, description, videoPath string) (string, error) {
	outputPath := Derive(videoPath)

	if err := os.WriteFile(outputPath, []byte(description), 0644); err != nil {
		return "", fmt.Errorf("write description: %w", err)
	}

	if w.docx {
		docxPath := strings.TrimSuffix(outputPath, ".txt") + ".docx"
		title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		if err := writeDocx(title, description, docxPath); err != nil {
			// The .txt is the canonical output; a docx failure is not fatal.
			w.logger.Warn(ctx, "Failed to write docx copy %s: %v", docxPath, err)
		} else {
			w.logger.Info(ctx, "Docx copy written: %s", docxPath)
		}
	}

	return outputPath, nil
}
