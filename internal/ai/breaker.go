package ai

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jfelix/resume-matcher/internal/types"
)

// BreakerConfig tunes the circuit breakers guarding external calls.
type BreakerConfig struct {
	MaxRequests      uint32        `json:"max_requests"`
	Interval         time.Duration `json:"interval"`
	Timeout          time.Duration `json:"timeout"`
	MinRequests      uint32        `json:"min_requests"`
	FailureThreshold float64       `json:"failure_threshold"`
}

// DefaultBreakerConfig returns conservative breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      2,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

// Breaker wraps a Client with per-operation circuit breakers so a failing
// provider sheds load fast instead of stalling every document.
type Breaker struct {
	client     Client
	entities   *gobreaker.CircuitBreaker[*types.ExtractedEntities]
	embeddings *gobreaker.CircuitBreaker[[]float32]
}

// NewBreaker wraps client with circuit breakers built from cfg.
func NewBreaker(client Client, cfg BreakerConfig) *Breaker {
	readyToTrip := func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= cfg.MinRequests && failureRatio >= cfg.FailureThreshold
	}

	return &Breaker{
		client: client,
		entities: gobreaker.NewCircuitBreaker[*types.ExtractedEntities](gobreaker.Settings{
			Name:        "ai-entities",
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: readyToTrip,
		}),
		embeddings: gobreaker.NewCircuitBreaker[[]float32](gobreaker.Settings{
			Name:        "ai-embeddings",
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: readyToTrip,
		}),
	}
}

func (b *Breaker) Entities(ctx context.Context, text string) (*types.ExtractedEntities, error) {
	result, err := b.entities.Execute(func() (*types.ExtractedEntities, error) {
		return b.client.Entities(ctx, text)
	})
	if err != nil {
		return nil, wrapSignal("entity", err)
	}
	return result, nil
}

func (b *Breaker) Embedding(ctx context.Context, text string) ([]float32, error) {
	result, err := b.embeddings.Execute(func() ([]float32, error) {
		return b.client.Embedding(ctx, text)
	})
	if err != nil {
		return nil, wrapSignal("embedding", err)
	}
	return result, nil
}

// wrapSignal tags breaker-originated failures; provider errors arrive
// already tagged.
func wrapSignal(op string, err error) error {
	var tagged *ErrExternalSignal
	if errors.As(err, &tagged) {
		return err
	}
	return &ErrExternalSignal{Op: op, Err: err}
}

func (b *Breaker) Close() error {
	return b.client.Close()
}
