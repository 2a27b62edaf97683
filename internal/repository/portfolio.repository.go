package repository

import (
	"fmt"
	"time"

	"capindex/internal/config"
	"capindex/internal/domain"
)

type PortfolioRepository interface {
	List() []domain.Portfolio
	Get(name string) (*domain.Portfolio, error)
	StartDate() time.Time
}

type portfolioRepositoryHandler struct {
	startDate  time.Time
	portfolios []domain.Portfolio
}

func NewPortfolioRepository(cfg *config.Config) PortfolioRepository {
	return portfolioRepositoryHandler{
		startDate:  cfg.StartDate,
		portfolios: cfg.Portfolios,
	}
}

func (h portfolioRepositoryHandler) List() []domain.Portfolio {
	out := make([]domain.Portfolio, 0, len(h.portfolios))
	for _, portfolio := range h.portfolios {
		out = append(out, portfolio.DeepCopy())
	}
	return out
}

func (h portfolioRepositoryHandler) Get(name string) (*domain.Portfolio, error) {
	for _, portfolio := range h.portfolios {
		if portfolio.Name == name {
			copied := portfolio.DeepCopy()
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("portfolio %s is not defined in configuration", name)
}

func (h portfolioRepositoryHandler) StartDate() time.Time {
	return h.startDate
}
