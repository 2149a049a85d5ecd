package transcriber

import (
	"net/http"
	"time"

	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/logger"
)

type implTranscriber struct {
	apiKey  string
	baseURL string
	modelID string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Transcriber backed by the ElevenLabs speech-to-text API.
// The key is passed in explicitly; nothing here reads the environment.
func New(apiKey string, cfg config.TranscriberConfig, log logger.Logger) Transcriber {
	return &implTranscriber{
		apiKey:  apiKey,
		baseURL: cfg.BaseURL,
		modelID: cfg.ModelID,
		// Uploads of long videos take a while; the transcript comes back in
		// the same response, so the timeout covers the whole round trip.
		client: &http.Client{Timeout: 30 * time.Minute},
		logger: log,
	}
}
