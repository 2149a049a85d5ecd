package pipeline

import (
	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/describer"
	"github.com/brosephtech/descgen/internal/logger"
	"github.com/brosephtech/descgen/internal/output"
	"github.com/brosephtech/descgen/internal/transcriber"
	"github.com/brosephtech/descgen/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	describer   describer.Describer
	writer      output.Writer
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a Pipeline. All collaborators are injected so tests can
// substitute fakes for the external services.
func New(cfg *config.Config, t transcriber.Transcriber, d describer.Describer, w output.Writer, exec executor.Executor, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: t,
		describer:   d,
		writer:      w,
		executor:    exec,
		logger:      log,
	}
}
