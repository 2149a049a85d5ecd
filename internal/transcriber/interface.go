package transcriber

import "context"

// Transcriber converts a media file into an SRT-formatted transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) (string, error)
}
