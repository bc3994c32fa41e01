package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/webcraftstudio/webcraft/internal/logging"
	"github.com/webcraftstudio/webcraft/internal/repository"
)

// DefaultRetentionInterval is how often old leads are pruned
const DefaultRetentionInterval = 12 * time.Hour

// LeadRetention handles periodic deletion of leads older than a maximum age
type LeadRetention struct {
	repo     repository.LeadRepository
	maxAge   time.Duration
	interval time.Duration
	now      func() time.Time
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewLeadRetention creates a new lead retention task
func NewLeadRetention(repo repository.LeadRepository, maxAge, interval time.Duration) *LeadRetention {
	if interval <= 0 {
		interval = DefaultRetentionInterval
	}
	return &LeadRetention{
		repo:     repo,
		maxAge:   maxAge,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins the retention task in the background
func (lr *LeadRetention) Start() {
	lr.wg.Add(1)
	go lr.runPeriodically()
}

// Stop gracefully stops the retention task
func (lr *LeadRetention) Stop() {
	close(lr.done)
	lr.wg.Wait()
}

// runPeriodically runs the prune at regular intervals
func (lr *LeadRetention) runPeriodically() {
	defer lr.wg.Done()
	logger := logging.GetLogger()

	logger.Info("Starting lead retention task (max age %s)", lr.maxAge)

	// Run immediately on startup
	lr.prune()

	ticker := time.NewTicker(lr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			lr.prune()
		case <-lr.done:
			logger.Info("Lead retention task stopped")
			return
		}
	}
}

// prune performs the actual deletion
func (lr *LeadRetention) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := lr.repo.DeleteOlderThan(ctx, lr.now().Add(-lr.maxAge))
	if err != nil {
		logging.GetLogger().Error("Lead retention failed: %v", err)
		return
	}
	if deleted > 0 {
		logging.GetLogger().Info("Deleted %d leads older than %s", deleted, lr.maxAge)
	}
}
