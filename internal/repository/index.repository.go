package repository

import (
	"context"
	"time"

	"capindex/pkg/moexiss"

	"github.com/cenkalti/backoff/v4"
)

const indexRetryAttempts = 90

type IndexRepository interface {
	GetIndices(ctx context.Context) ([]string, error)
}

// indexRepositoryHandler lists the securities of the MOEX index market.
// Failures are retried on a fixed interval for up to three minutes.
type indexRepositoryHandler struct {
	Client    moexiss.Client
	RetryWait time.Duration
}

func NewIndexRepository(client moexiss.Client) IndexRepository {
	return indexRepositoryHandler{Client: client, RetryWait: priceRetryWait}
}

func (h indexRepositoryHandler) GetIndices(ctx context.Context) ([]string, error) {
	var indices []string
	operation := func() error {
		var err error
		indices, err = h.Client.GetIndices(ctx)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(h.RetryWait), indexRetryAttempts), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return indices, nil
}
