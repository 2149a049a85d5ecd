package describer

import "context"

// Describer turns an SRT transcript into a publication-ready video description.
type Describer interface {
	Describe(ctx context.Context, transcript string) (string, error)
}
