package output

import (
	"github.com/brosephtech/descgen/internal/config"
	"github.com/brosephtech/descgen/internal/logger"
)

type implWriter struct {
	docx   bool
	logger logger.Logger
}

// New creates a Writer. When cfg.Docx is set, a .docx copy is written beside
// the .txt file.
func New(cfg config.OutputConfig, log logger.Logger) Writer {
	return &implWriter{
		docx:   cfg.Docx,
		logger: log,
	}
}
