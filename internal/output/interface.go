package output

import "context"

// Writer persists a generated description next to its source video.
type Writer interface {
	// Write stores the description and returns the path it was written to.
	Write(ctx context.Context, description, videoPath string) (string, error)
}
