package pipeline

import "context"

// Pipeline runs the full video-to-description flow for a single file.
type Pipeline interface {
	// Run processes one video and returns the path of the written description.
	Run(ctx context.Context, videoPath string) (string, error)
}
