// Package ai provides the external NER and embedding client. The rest of
// the pipeline must tolerate this signal being absent; callers log a warning
// and proceed with empty entities when calls fail.
package ai

import (
	"context"
	"fmt"

	"github.com/jfelix/resume-matcher/internal/types"
)

// Client is an abstraction over entity-recognition and embedding providers.
type Client interface {
	// Entities extracts named entities from free text.
	Entities(ctx context.Context, text string) (*types.ExtractedEntities, error)
	// Embedding returns a dense vector for the text.
	Embedding(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the client.
	Close() error
}

// ErrExternalSignal indicates an external NER or embedding call failed.
// It is never fatal to the pipeline; callers degrade to empty entity data.
type ErrExternalSignal struct {
	Op  string
	Err error
}

func (e *ErrExternalSignal) Error() string {
	return fmt.Sprintf("external %s signal unavailable: %v", e.Op, e.Err)
}

func (e *ErrExternalSignal) Unwrap() error {
	return e.Err
}
