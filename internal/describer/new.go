package describer

import (
	"fmt"
	"os"

	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/logger"
)

type implDescriber struct {
	apiKey          string
	model           string
	maxOutputTokens int32
	styleGuide      string
	logger          logger.Logger
}

// New creates a Describer backed by the Gemini API. The style guide is the
// embedded asset unless cfg.PromptPath points at an override file.
func New(apiKey string, cfg config.DescriberConfig, log logger.Logger) (Describer, error) {
	guide := StyleGuide
	if cfg.PromptPath != "" {
		data, err := os.ReadFile(cfg.PromptPath)
		if err != nil {
			return nil, fmt.Errorf("read prompt override: %w", err)
		}
		guide = string(data)
	}

	return &implDescriber{
		apiKey:          apiKey,
		model:           cfg.Model,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
		styleGuide:      guide,
		logger:          log,
	}, nil
}
