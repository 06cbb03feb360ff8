// Package scheduler runs the periodic watchlist refresh that keeps popular
// symbols warm in the cache between user requests.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/samimoudarres/SimVest-Market-Data-Backend/internal/service"
)

// Scheduler manages the background cron tasks.
type Scheduler struct {
	cron   *cron.Cron
	stocks *service.StockService
	ctx    context.Context
}

// New creates a Scheduler around the stock service.
func New(ctx context.Context, stocks *service.StockService) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		stocks: stocks,
		ctx:    ctx,
	}
}

// Register adds the watchlist refresh on the given cron spec. An empty spec
// disables the refresh without error.
func (s *Scheduler) Register(refreshSpec string) error {
	if refreshSpec == "" {
		log.Println("watchlist refresh disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(refreshSpec, s.refreshWatchlist); err != nil {
		return fmt.Errorf("register watchlist refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("scheduler stopped")
}

// RunNow executes the watchlist refresh immediately, used at startup so the
// first page load is served from a warm cache.
func (s *Scheduler) RunNow() {
	s.refreshWatchlist()
}

func (s *Scheduler) refreshWatchlist() {
	log.Println("refreshing watchlist")
	s.stocks.WarmCache(s.ctx)
}
