package repository

import (
	"context"
	"fmt"
	"sync"

	"capindex/internal/domain"
	"capindex/internal/logger"
	"capindex/pkg/moexiss"
)

type CapitalizationRepository interface {
	// GetTable returns current market capitalizations keyed by ticker.
	// Securities the exchange publishes no capitalization for are absent.
	GetTable(ctx context.Context) (domain.CapitalizationTable, error)
	Invalidate()
}

type capitalizationRepositoryHandler struct {
	Client moexiss.Client

	mu    sync.Mutex
	table domain.CapitalizationTable
}

func NewCapitalizationRepository(client moexiss.Client) CapitalizationRepository {
	return &capitalizationRepositoryHandler{Client: client}
}

func (h *capitalizationRepositoryHandler) GetTable(ctx context.Context) (domain.CapitalizationTable, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.table != nil {
		return h.table, nil
	}

	securities, err := h.Client.GetBoardSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load capitalization data: %w", err)
	}

	table := domain.CapitalizationTable{}
	for _, security := range securities {
		if security.Capitalization == nil {
			continue
		}
		table[security.Ticker] = *security.Capitalization
	}
	logger.FromContext(ctx).Infof("loaded capitalization for %d securities", len(table))

	h.table = table
	return table, nil
}

func (h *capitalizationRepositoryHandler) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table = nil
}
