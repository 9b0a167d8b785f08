// Package ai holds the contracts shared by language model backed writers.
package ai

import (
	"context"

	"github.com/spigell/cover-letter/internal/letter"
)

// Writer composes a cover letter with a language model. Implementations
// satisfy letter.Remote so they can be handed to the orchestrator directly.
type Writer interface {
	Generate(ctx context.Context, in letter.FormInput) (string, error)
	Model() string
}

var _ letter.Remote = (Writer)(nil)
